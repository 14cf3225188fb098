package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gnlib"
	"github.com/spf13/cobra"

	"github.com/optimg/optimg/internal/ioconfig"
	"github.com/optimg/optimg/internal/iofs"
	"github.com/optimg/optimg/internal/iologger"
	"github.com/optimg/optimg/pkg/config"
)

var (
	cfgFile string
	cfg     *config.Config
)

func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "optimg",
		Short: "optimg shrinks image files with external optimization tools",
		Long: `optimg optimizes PNG, JPEG, GIF and SVG files by running external
command-line tools (pngquant, optipng, jpegtran, gifsicle, svgo, ...)
and accepting a result only when the file actually got smaller.

Tools are selected by the detected file type; several tools per format
are tried in a fixed priority order. A missing or broken tool is logged
and skipped by default, so bulk jobs never abort halfway.

Commands:
  optimize: shrink the given files or directories
  check:    show which tools are installed on this host
  watch:    optimize images in a directory as they change

Configuration precedence (highest to lowest):
  1. CLI flags (--tool, --jobs, ...)
  2. Environment variables (OPTIMG_*)
  3. Config file (optimg.yaml)
  4. Built-in defaults`,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: bootstrap,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./optimg.yaml or ~/.config/optimg/optimg.yaml)")

	// Override version flag to use -V
	rootCmd.Flags().BoolP("version", "V", false, "version for optimg")

	rootCmd.AddCommand(getOptimizeCmd())
	rootCmd.AddCommand(getCheckCmd())
	rootCmd.AddCommand(getWatchCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		gnlib.PrintUserMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gnlib.PrintUserMessage(err)
		return err
	}

	// Auto-generate config file on first run if it doesn't exist
	if cfgFile == "" {
		exists, err := ioconfig.ConfigFileExists()
		if err == nil && !exists {
			generatedPath, err := ioconfig.GenerateDefaultConfig()
			if err != nil {
				// Only warn, don't fail - defaults still work
				fmt.Printf("Warning: could not generate config file: %v\n", err)
			} else {
				fmt.Printf("Generated default config at: %s\n", generatedPath)
			}
		}
	}

	result, err := ioconfig.Load(cfgFile)
	if err != nil {
		gnlib.PrintUserMessage(err)
		return err
	}

	// Re-apply through options so invalid file values are rejected with
	// warnings instead of corrupting the config.
	cfg = config.New()
	cfg.Update(result.Config.ToOptions())
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if err = iologger.Init(config.LogDir(homeDir), cfg.Log); err != nil {
		gnlib.PrintUserMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"source", result.Source, "path", result.SourcePath)

	return nil
}

// getConfig returns the loaded configuration (for use in subcommands)
func getConfig() *config.Config {
	return cfg
}
