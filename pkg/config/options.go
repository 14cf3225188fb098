package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptPngquantArgs sets the base arguments of the pngquant tool.
func OptPngquantArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.PngquantArgs = ss
		}
	}
}

// OptOptipngArgs sets the base arguments of the optipng tool.
func OptOptipngArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.OptipngArgs = ss
		}
	}
}

// OptPngcrushArgs sets the base arguments of the pngcrush tool.
func OptPngcrushArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.PngcrushArgs = ss
		}
	}
}

// OptPngoutArgs sets the base arguments of the pngout tool.
func OptPngoutArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.PngoutArgs = ss
		}
	}
}

// OptAdvpngArgs sets the base arguments of the advpng tool.
func OptAdvpngArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.AdvpngArgs = ss
		}
	}
}

// OptGifsicleArgs sets the base arguments of the gifsicle tool.
func OptGifsicleArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.GifsicleArgs = ss
		}
	}
}

// OptJpegtranArgs sets the base arguments of the jpegtran tool.
func OptJpegtranArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.JpegtranArgs = ss
		}
	}
}

// OptJpegoptimArgs sets the base arguments of the jpegoptim tool.
func OptJpegoptimArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.JpegoptimArgs = ss
		}
	}
}

// OptSvgoArgs sets the base arguments of the svgo tool.
func OptSvgoArgs(ss []string) Option {
	return func(c *Config) {
		if len(ss) > 0 {
			c.Tools.SvgoArgs = ss
		}
	}
}

// OptCustomTools registers user-defined tools. Entries without a name
// or a command are rejected with a warning.
func OptCustomTools(tools []CustomTool) Option {
	return func(c *Config) {
		for _, tool := range tools {
			if isValidString("Custom Tool Name", tool.Name) &&
				isValidString("Custom Tool Command", tool.Command) {
				c.Tools.Custom = append(c.Tools.Custom, tool)
			}
		}
	}
}

// OptIgnoreErrors sets whether failing tools are logged and skipped
// instead of aborting a batch. Uses a pointer to distinguish between
// unset (nil) and false.
func OptIgnoreErrors(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Optimize.IgnoreErrors = *b
		}
	}
}

// OptOnlyFirstPNG sets whether the PNG chain stops after the first
// successful tool. Uses a pointer to distinguish unset (nil) and false.
func OptOnlyFirstPNG(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Optimize.OnlyFirstPNG = *b
		}
	}
}

// OptOnlyFirstJPEG sets whether the JPEG chain stops after the first
// successful tool. Uses a pointer to distinguish unset (nil) and false.
func OptOnlyFirstJPEG(b *bool) Option {
	return func(c *Config) {
		if b != nil {
			c.Optimize.OnlyFirstJPEG = *b
		}
	}
}

// OptTimeoutSeconds sets the per-tool subprocess timeout in seconds.
func OptTimeoutSeconds(i int) Option {
	return func(c *Config) {
		if isValidInt("Timeout Seconds", i) {
			c.Optimize.TimeoutSeconds = i
		}
	}
}

// OptOutputPattern sets the candidate output path template. Placeholders:
// %basename%, %filename%, %ext%.
func OptOutputPattern(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Output Pattern", s) {
			c.Optimize.OutputPattern = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stdout", "stderr".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers for batch
// optimization.
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the directory under which config and log directories
// reside. Runtime-only field, set once at startup.
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Dir", s) {
			c.HomeDir = s
		}
	}
}
