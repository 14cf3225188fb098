package iooptimize

import (
	"context"
	"log/slog"

	"github.com/optimg/optimg/pkg/optimizer"
)

// suppressed is the error-suppression decorator: it logs failures of
// the inner optimizer instead of propagating them, so a missing or
// broken tool for one format never aborts a larger batch. This is the
// only point in the system where failures are converted to successes.
type suppressed struct {
	inner optimizer.Optimizer
}

// NewSuppressed wraps inner with the swallow-and-continue policy.
func NewSuppressed(inner optimizer.Optimizer) optimizer.Optimizer {
	return &suppressed{inner: inner}
}

// Optimize invokes the inner optimizer; on failure it emits exactly one
// error-level log entry with the full error detail and returns nil.
func (s *suppressed) Optimize(ctx context.Context, path string) error {
	if err := s.inner.Optimize(ctx, path); err != nil {
		slog.Error("Optimization failed, continuing",
			"path", path, "error", err)
	}
	return nil
}
