package main

import (
	"github.com/optimg/optimg/internal/iocommand"
	"github.com/optimg/optimg/internal/iofiletype"
	"github.com/optimg/optimg/internal/iooptimize"
	"github.com/optimg/optimg/pkg/config"
	"github.com/optimg/optimg/pkg/optimizer"
)

// buildRegistry assembles the optimizer registry with the real
// collaborators: the exec-based runner, the $PATH finder and the
// content-based type guesser.
func buildRegistry(cfg *config.Config) optimizer.Registry {
	return iooptimize.NewRegistry(
		cfg,
		iocommand.NewRunner(),
		iocommand.NewFinder(),
		iofiletype.NewGuesser(),
	)
}
