// Package iooptimize implements the optimizer composition engine: the
// single-tool optimizer, the chain and type-dispatch combinators, the
// output-validation and error-suppression decorators, and the factory
// that wires them into a registry from configuration. This is an impure
// I/O package; all pixel-level work is delegated to external tools.
package iooptimize

import (
	"context"

	"github.com/optimg/optimg/pkg/command"
	"github.com/optimg/optimg/pkg/optimizer"
)

// singleTool runs one external tool against a file. It owns an
// immutable invocation spec and interprets the runner's result.
type singleTool struct {
	spec   command.Spec
	runner command.Runner
}

// NewSingleTool creates an optimizer that invokes one external tool.
func NewSingleTool(spec command.Spec, runner command.Runner) optimizer.Optimizer {
	return &singleTool{spec: spec, runner: runner}
}

// Optimize merges path into the tool's argument vector and runs the
// tool. The file is overwritten by the external process itself, not by
// this component. Runner failures are wrapped in ExecutionError.
func (s *singleTool) Optimize(ctx context.Context, path string) error {
	args := s.spec.BuildArgs(path)
	_, err := s.runner.Run(ctx, s.spec, args)
	if err != nil {
		return NewExecutionError(s.spec.Name, path, err)
	}
	return nil
}
