package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"

	"github.com/optimg/optimg/internal/iooptimize"
	"github.com/optimg/optimg/pkg/optimizer"
)

func getOptimizeCmd() *cobra.Command {
	var (
		tool    string
		jobs    int
		timeout int
	)

	cmd := &cobra.Command{
		Use:   "optimize [flags] path ...",
		Short: "Shrinks the given image files or directories",
		Long: `Optimizes the given files in place. Directories are walked
recursively and all PNG, JPEG, GIF and SVG files inside are processed.

By default each file is routed to the tools for its detected type
("smart" mode). Use --tool to force a specific registry entry: a tool
name (pngquant, optipng, jpegtran, ...), a format chain (png, jpeg,
gif, svg), or the name of a custom tool from optimg.yaml.

A result is accepted only when the file actually got smaller; tools
that fail or make files bigger leave the original untouched.

Examples:
  # Optimize a directory of photos with all CPU cores
  optimg optimize ./photos

  # Only run the PNG chain
  optimg optimize --tool png header.png

  # Serial processing with a longer per-tool timeout
  optimg optimize --jobs 1 --timeout 300 huge.png`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := getConfig()
			ctx := context.Background()

			// Override config with CLI flags if provided
			if cmd.Flags().Changed("jobs") {
				cfg.JobsNumber = jobs
			}
			if cmd.Flags().Changed("timeout") {
				cfg.Optimize.TimeoutSeconds = timeout
			}

			reg := buildRegistry(cfg)
			opt, err := reg.Get(tool)
			if err != nil {
				gnlib.PrintUserMessage(err)
				return err
			}

			files, err := iooptimize.CollectFiles(args)
			if err != nil {
				gnlib.PrintUserMessage(err)
				return err
			}
			if len(files) == 0 {
				fmt.Println("No image files found.")
				return nil
			}

			report, err := iooptimize.OptimizeBatch(ctx, opt, files, cfg.JobsNumber)
			printReport(report)
			if err != nil {
				gnlib.PrintUserMessage(err)
				return err
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&tool, "tool", "t", optimizer.Smart,
		"registry entry to use: a tool, a format chain, or 'smart'")
	cmd.Flags().IntVar(&jobs, "jobs", 0,
		"number of files optimized concurrently (default: number of CPU cores)")
	cmd.Flags().IntVar(&timeout, "timeout", 0,
		"per-tool timeout in seconds (default: 60)")

	return cmd
}

func printReport(report iooptimize.BatchReport) {
	saved := report.BytesBefore - report.BytesAfter
	var pct float64
	if report.BytesBefore > 0 {
		pct = float64(saved) / float64(report.BytesBefore) * 100
	}

	fmt.Printf("Processed %s files: %d optimized, %d unchanged, %d failed\n",
		humanize.Comma(int64(report.Processed)),
		report.Optimized, report.Unchanged, report.Failed,
	)
	fmt.Printf("Total size: %s -> %s (saved %s, %.1f%%)\n",
		humanize.Bytes(uint64(report.BytesBefore)),
		humanize.Bytes(uint64(report.BytesAfter)),
		humanize.Bytes(uint64(max(saved, 0))),
		pct,
	)
}
