// Package config provides configuration management for optimg.
//
// This package has no I/O dependencies (no file operations, no network
// calls). Validation functions may write user-facing warnings via
// gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > optimg.yaml >
// defaults
//
// # Design Principles
//
//   - Default config (from New()) is always valid - no validation needed
//   - All mutations go through Option functions - the only way to modify
//     Config
//   - Invalid options are rejected with gn.Warn() - config remains in a
//     valid state
//
// # Environment Variables
//
// Use the OPTIMG_ prefix with underscores for nesting:
//
//	OPTIMG_OPTIMIZE_IGNORE_ERRORS=false
//	OPTIMG_OPTIMIZE_TIMEOUT_SECONDS=120
//	OPTIMG_LOG_LEVEL=debug
//	OPTIMG_JOBS_NUMBER=8
package config

import (
	"runtime"
	"time"
)

// Config represents the complete optimg configuration.
type Config struct {
	// Tools holds the per-tool argument lists and custom tool
	// definitions.
	Tools ToolsConfig `mapstructure:"tools" yaml:"tools"`

	// Optimize holds the settings of the optimizer composition engine.
	Optimize OptimizeConfig `mapstructure:"optimize" yaml:"optimize"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// JobsNumber is the number of concurrent workers used when a batch
	// of files is optimized. Each worker handles distinct files; a
	// single file is never touched by two tools at once.
	JobsNumber int `mapstructure:"jobs_number" yaml:"jobs_number"`

	// HomeDir determines where config and log directories reside.
	// It is set by the CLI during init, there is no default value.
	HomeDir string `mapstructure:"-" yaml:"-"`
}

// ToolsConfig contains the argument lists passed to each external tool
// before the per-invocation arguments are merged in.
type ToolsConfig struct {
	PngquantArgs  []string `mapstructure:"pngquant_args" yaml:"pngquant_args"`
	OptipngArgs   []string `mapstructure:"optipng_args" yaml:"optipng_args"`
	PngcrushArgs  []string `mapstructure:"pngcrush_args" yaml:"pngcrush_args"`
	PngoutArgs    []string `mapstructure:"pngout_args" yaml:"pngout_args"`
	AdvpngArgs    []string `mapstructure:"advpng_args" yaml:"advpng_args"`
	GifsicleArgs  []string `mapstructure:"gifsicle_args" yaml:"gifsicle_args"`
	JpegtranArgs  []string `mapstructure:"jpegtran_args" yaml:"jpegtran_args"`
	JpegoptimArgs []string `mapstructure:"jpegoptim_args" yaml:"jpegoptim_args"`
	SvgoArgs      []string `mapstructure:"svgo_args" yaml:"svgo_args"`

	// Custom registers additional tools by name at configuration time.
	// Each gets the same validation/suppression wrapping as the
	// built-in tools.
	Custom []CustomTool `mapstructure:"custom" yaml:"custom"`
}

// CustomTool defines a user-supplied optimizer: the registry name, the
// executable to run and its base arguments. The target file path is
// appended as the last argument.
type CustomTool struct {
	Name    string   `mapstructure:"name" yaml:"name"`
	Command string   `mapstructure:"command" yaml:"command"`
	Args    []string `mapstructure:"args" yaml:"args"`
}

// OptimizeConfig contains settings of the optimizer engine itself.
type OptimizeConfig struct {
	// IgnoreErrors wraps every optimizer in the error-suppression
	// decorator so a broken tool never aborts a batch. Failures are
	// still logged.
	IgnoreErrors bool `mapstructure:"ignore_errors" yaml:"ignore_errors"`

	// OnlyFirstPNG stops the PNG chain after the first tool that
	// succeeds instead of running every PNG tool.
	OnlyFirstPNG bool `mapstructure:"only_first_png" yaml:"only_first_png"`

	// OnlyFirstJPEG stops the JPEG chain after the first tool that
	// succeeds instead of running every JPEG tool.
	OnlyFirstJPEG bool `mapstructure:"only_first_jpeg" yaml:"only_first_jpeg"`

	// TimeoutSeconds bounds a single tool invocation. The subprocess is
	// killed when the timeout elapses.
	TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`

	// OutputPattern derives the candidate output path from the input
	// path. Placeholders: %basename% (directory), %filename% (name
	// without extension), %ext% (extension with dot). When the pattern
	// resolves to the input path itself, tools optimize in place.
	OutputPattern string `mapstructure:"output_pattern" yaml:"output_pattern"`
}

// Timeout returns TimeoutSeconds as a duration.
func (oc OptimizeConfig) Timeout() time.Duration {
	return time.Duration(oc.TimeoutSeconds) * time.Second
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json' or 'text'.
	Format string `mapstructure:"format" yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level" yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values. The returned
// config is always valid and ready to use. Default values can be
// overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Tools: ToolsConfig{
			PngquantArgs:  []string{"--force"},
			OptipngArgs:   []string{"-i0", "-o2", "-quiet"},
			PngcrushArgs:  []string{"-reduce", "-q", "-ow"},
			PngoutArgs:    []string{"-s3", "-q", "-y"},
			AdvpngArgs:    []string{"-z", "-4", "-q"},
			GifsicleArgs:  []string{"-b", "-O5"},
			JpegtranArgs:  []string{"-optimize", "-progressive"},
			JpegoptimArgs: []string{"-m85", "--strip-all", "--all-progressive"},
			SvgoArgs:      []string{"--disable=cleanupIDs"},
		},
		Optimize: OptimizeConfig{
			IgnoreErrors:   true,
			OnlyFirstPNG:   true,
			OnlyFirstJPEG:  true,
			TimeoutSeconds: 60,
			OutputPattern:  "%basename%/%filename%%ext%",
		},
		Log: LogConfig{
			Format:      "json",
			Level:       "info",
			Destination: "file",
		},
		JobsNumber: runtime.NumCPU(),
	}

	return res
}
