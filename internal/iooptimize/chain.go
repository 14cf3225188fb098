package iooptimize

import (
	"context"
	"log/slog"

	"github.com/optimg/optimg/pkg/optimizer"
)

// chain runs an ordered list of optimizers against the same file,
// strictly sequentially. In first-only mode it stops after the first
// success; in run-all mode it attempts every member. Either way the
// chain fails only when every member failed.
type chain struct {
	members   []optimizer.Optimizer
	firstOnly bool
}

// NewChain creates a chain optimizer. Order is significant and
// caller-specified; in first-only mode the first listed member wins.
// The member list must not be empty.
func NewChain(members []optimizer.Optimizer, firstOnly bool) optimizer.Optimizer {
	return &chain{members: members, firstOnly: firstOnly}
}

// Optimize attempts the members in order. Each sub-failure is logged as
// it occurs, even when the chain as a whole later succeeds. When all
// members fail, the result is a ChainExhaustedError aggregating every
// sub-error in member order.
func (c *chain) Optimize(ctx context.Context, path string) error {
	var succeeded bool
	var subErrs []error

	for _, member := range c.members {
		err := member.Optimize(ctx, path)
		if err == nil {
			if c.firstOnly {
				return nil
			}
			succeeded = true
			continue
		}

		slog.Error("Chain member failed", "path", path, "error", err)
		subErrs = append(subErrs, err)
	}

	if succeeded || len(subErrs) == 0 {
		return nil
	}

	// Reaching this point means every attempted member failed: in
	// first-only mode a success returns early, in run-all mode it sets
	// succeeded.
	return NewChainExhaustedError(path, subErrs)
}
