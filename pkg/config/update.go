package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in a
// valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for optimg.yaml.
// Excludes runtime-only fields (HomeDir).
// Used for round-tripping optimg.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	toolArgs := []struct {
		args []string
		opt  func([]string) Option
	}{
		{c.Tools.PngquantArgs, OptPngquantArgs},
		{c.Tools.OptipngArgs, OptOptipngArgs},
		{c.Tools.PngcrushArgs, OptPngcrushArgs},
		{c.Tools.PngoutArgs, OptPngoutArgs},
		{c.Tools.AdvpngArgs, OptAdvpngArgs},
		{c.Tools.GifsicleArgs, OptGifsicleArgs},
		{c.Tools.JpegtranArgs, OptJpegtranArgs},
		{c.Tools.JpegoptimArgs, OptJpegoptimArgs},
		{c.Tools.SvgoArgs, OptSvgoArgs},
	}
	for _, ta := range toolArgs {
		if len(ta.args) > 0 {
			res = append(res, ta.opt(ta.args))
		}
	}

	if len(c.Tools.Custom) > 0 {
		res = append(res, OptCustomTools(c.Tools.Custom))
	}

	b := c.Optimize.IgnoreErrors
	res = append(res, OptIgnoreErrors(&b))
	b2 := c.Optimize.OnlyFirstPNG
	res = append(res, OptOnlyFirstPNG(&b2))
	b3 := c.Optimize.OnlyFirstJPEG
	res = append(res, OptOnlyFirstJPEG(&b3))

	if c.Optimize.TimeoutSeconds > 0 {
		res = append(res, OptTimeoutSeconds(c.Optimize.TimeoutSeconds))
	}
	if c.Optimize.OutputPattern != "" {
		res = append(res, OptOutputPattern(c.Optimize.OutputPattern))
	}

	if c.Log.Format != "" {
		res = append(res, OptLogFormat(c.Log.Format))
	}
	if c.Log.Level != "" {
		res = append(res, OptLogLevel(c.Log.Level))
	}
	if c.Log.Destination != "" {
		res = append(res, OptLogDestination(c.Log.Destination))
	}

	if c.JobsNumber > 0 {
		res = append(res, OptJobsNumber(c.JobsNumber))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s},
		"Log.Destination": {"file": s, "stdout": s, "stderr": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
