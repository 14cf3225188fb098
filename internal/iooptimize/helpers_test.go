package iooptimize

import (
	"context"

	"github.com/optimg/optimg/pkg/optimizer"
)

// optimizeFunc adapts a function to the Optimizer interface for tests.
type optimizeFunc func(ctx context.Context, path string) error

func (f optimizeFunc) Optimize(ctx context.Context, path string) error {
	return f(ctx, path)
}

// countingOptimizer records its calls and returns a fixed error.
type countingOptimizer struct {
	calls int
	err   error
}

func (c *countingOptimizer) Optimize(ctx context.Context, path string) error {
	c.calls++
	return c.err
}

// fakeGuesser returns a fixed type tag or error.
type fakeGuesser struct {
	typ   optimizer.Type
	err   error
	calls int
}

func (g *fakeGuesser) Guess(path string) (optimizer.Type, error) {
	g.calls++
	if g.err != nil {
		return "", g.err
	}
	return g.typ, nil
}
