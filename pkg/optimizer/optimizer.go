// Package optimizer defines the core capability of the system: a
// polymorphic Optimize operation over a file path, plus the collaborator
// interfaces the composition engine depends on. Implementations live in
// internal/iooptimize and friends; this package stays free of I/O.
package optimizer

import "context"

// Optimizer is the single capability every variant implements. The side
// effect of a successful call is that the file at path may be replaced
// by a smaller, behaviorally equivalent file.
//
// Variants: single-tool, chain, type-dispatch, output-validation
// decorator, error-suppression decorator. Decorators own exactly one
// inner Optimizer (a chain owns an ordered list); the ownership graph is
// acyclic and fixed at construction time.
type Optimizer interface {
	Optimize(ctx context.Context, path string) error
}

// Registry maps names (tool names, format names, the sentinel "smart")
// to wired optimizers. It is built once at startup and read-only
// afterwards, so concurrent lookups and concurrent Optimize calls on
// different files are safe.
type Registry interface {
	// Get returns the optimizer registered under name, or a
	// NotFoundError when the name is unregistered.
	Get(name string) (Optimizer, error)

	// CheckOptimizers reports, per configured tool, whether its
	// executable resolves on the host. The report is independent of the
	// decorator wrapping and of any optimize outcome.
	CheckOptimizers() map[string]bool
}

// Smart is the registry name of the type-dispatch optimizer and the
// default entry callers are expected to use.
const Smart = "smart"
