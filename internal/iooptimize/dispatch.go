package iooptimize

import (
	"context"

	"github.com/optimg/optimg/pkg/optimizer"
)

// typeDispatch routes a file to the optimizer registered for its
// detected image type.
type typeDispatch struct {
	guesser optimizer.TypeGuesser
	byType  map[optimizer.Type]optimizer.Optimizer
}

// NewTypeDispatch creates an optimizer that classifies the file via the
// guesser and delegates to the optimizer registered for the resulting
// type tag. The mapping is fixed at construction time.
func NewTypeDispatch(
	guesser optimizer.TypeGuesser,
	byType map[optimizer.Type]optimizer.Optimizer,
) optimizer.Optimizer {
	return &typeDispatch{guesser: guesser, byType: byType}
}

// Optimize calls the guesser exactly once per invocation. Guesser
// failures propagate unchanged; a detected type with no registered
// optimizer fails with UnsupportedTypeError.
func (d *typeDispatch) Optimize(ctx context.Context, path string) error {
	typ, err := d.guesser.Guess(path)
	if err != nil {
		return err
	}

	opt, ok := d.byType[typ]
	if !ok {
		return NewUnsupportedTypeError(path, typ)
	}
	return opt.Optimize(ctx, path)
}
