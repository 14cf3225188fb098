// Package iocommand implements the subprocess side of the system: it
// spawns external optimization tools with a timeout and resolves their
// executables on the host. This is an impure I/O package.
package iocommand

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"time"

	"github.com/optimg/optimg/pkg/command"
)

// defaultTimeout guards against specs constructed without a timeout.
const defaultTimeout = 60 * time.Second

// execRunner implements command.Runner on top of os/exec.
type execRunner struct{}

// NewRunner creates a Runner that executes tools directly on the host.
func NewRunner() command.Runner {
	return &execRunner{}
}

// Run spawns the tool described by spec with the given argument vector
// and waits for it to finish. The process is killed when spec.Timeout
// elapses. There are no retries at this layer; retry policy belongs to
// callers.
func (r *execRunner) Run(
	ctx context.Context,
	spec command.Spec,
	args []string,
) (command.RunResult, error) {
	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, spec.Command, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	slog.Debug("Running external tool",
		"tool", spec.Name, "command", spec.Command, "args", args)

	start := time.Now()
	err := cmd.Run()
	res := command.RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}

	if err != nil {
		if runCtx.Err() == context.DeadlineExceeded {
			res.ExitCode = -1
			return res, NewTimeoutError(spec.Name, timeout)
		}

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, NewProcessError(spec.Name, res.ExitCode, res.Stderr)
		}

		// The process could not be started at all, most likely the
		// executable is missing from the host.
		res.ExitCode = -1
		return res, NewStartError(spec.Name, spec.Command, err)
	}

	res.ExitCode = 0
	slog.Debug("External tool finished",
		"tool", spec.Name, "duration", res.Duration)
	return res, nil
}
