// Package ioconfig provides I/O operations for loading and generating
// configuration files. This is an impure package that handles file
// system and environment operations.
package ioconfig

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/optimg/optimg/pkg/config"
)

// LoadResult carries the loaded config and where it came from.
type LoadResult struct {
	Config *config.Config
	// Source is "file", "defaults+env" or "defaults".
	Source     string
	SourcePath string
}

// Load reads configuration from a YAML file and returns a validated
// Config. If configPath is empty, it searches default locations:
//   - ./optimg.yaml
//   - ~/.config/optimg/optimg.yaml
//
// Environment variables with the OPTIMG_ prefix override file values;
// CLI flags are applied later by the cmd layer through config options.
func Load(configPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v, config.New())

	v.SetEnvPrefix("OPTIMG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(config.AppName)
		v.AddConfigPath(".")
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", config.AppName))
		}
	}

	source := "file"
	if err := v.ReadInConfig(); err != nil {
		// An explicit config path must exist and parse; a missing file
		// on the default search path is not an error.
		if configPath != "" {
			return nil, NewLoadError(configPath, err)
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, NewLoadError(v.ConfigFileUsed(), err)
		}
		source = "defaults+env"
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, NewLoadError(v.ConfigFileUsed(), err)
	}

	res := &LoadResult{
		Config:     &cfg,
		Source:     source,
		SourcePath: v.ConfigFileUsed(),
	}
	return res, nil
}

// setDefaults registers every persistent key with its default value so
// viper yields a complete config even for partial files.
func setDefaults(v *viper.Viper, def *config.Config) {
	v.SetDefault("tools.pngquant_args", def.Tools.PngquantArgs)
	v.SetDefault("tools.optipng_args", def.Tools.OptipngArgs)
	v.SetDefault("tools.pngcrush_args", def.Tools.PngcrushArgs)
	v.SetDefault("tools.pngout_args", def.Tools.PngoutArgs)
	v.SetDefault("tools.advpng_args", def.Tools.AdvpngArgs)
	v.SetDefault("tools.gifsicle_args", def.Tools.GifsicleArgs)
	v.SetDefault("tools.jpegtran_args", def.Tools.JpegtranArgs)
	v.SetDefault("tools.jpegoptim_args", def.Tools.JpegoptimArgs)
	v.SetDefault("tools.svgo_args", def.Tools.SvgoArgs)

	v.SetDefault("optimize.ignore_errors", def.Optimize.IgnoreErrors)
	v.SetDefault("optimize.only_first_png", def.Optimize.OnlyFirstPNG)
	v.SetDefault("optimize.only_first_jpeg", def.Optimize.OnlyFirstJPEG)
	v.SetDefault("optimize.timeout_seconds", def.Optimize.TimeoutSeconds)
	v.SetDefault("optimize.output_pattern", def.Optimize.OutputPattern)

	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.destination", def.Log.Destination)

	v.SetDefault("jobs_number", def.JobsNumber)
}
