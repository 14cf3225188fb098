package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"

	"github.com/optimg/optimg/internal/iowatch"
	"github.com/optimg/optimg/pkg/optimizer"
)

func getWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch dir",
		Short: "Optimizes images in a directory as they change",
		Long: `Watches the given directory tree and optimizes PNG, JPEG, GIF and
SVG files as they are created or modified. Each file is routed to the
tools for its detected type, the same as 'optimize' in smart mode.

Stop watching with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			reg := buildRegistry(cfg)

			opt, err := reg.Get(optimizer.Smart)
			if err != nil {
				gnlib.PrintUserMessage(err)
				return err
			}

			ctx, stop := signal.NotifyContext(
				context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Printf("Watching %s; press Ctrl-C to stop.\n", args[0])

			watcher := iowatch.New(args[0], opt)
			if err := watcher.Run(ctx); err != nil {
				gnlib.PrintUserMessage(err)
				return err
			}
			return nil
		},
	}

	return cmd
}
