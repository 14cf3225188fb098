package config_test

import (
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/optimg/optimg/pkg/config"
)

func TestNewDefaults(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()

	assert.Equal([]string{"--force"}, cfg.Tools.PngquantArgs)
	assert.Equal([]string{"-i0", "-o2", "-quiet"}, cfg.Tools.OptipngArgs)
	assert.Equal([]string{"-reduce", "-q", "-ow"}, cfg.Tools.PngcrushArgs)
	assert.Equal([]string{"-s3", "-q", "-y"}, cfg.Tools.PngoutArgs)
	assert.Equal([]string{"-z", "-4", "-q"}, cfg.Tools.AdvpngArgs)
	assert.Equal([]string{"-b", "-O5"}, cfg.Tools.GifsicleArgs)
	assert.Equal([]string{"-optimize", "-progressive"}, cfg.Tools.JpegtranArgs)
	assert.Equal(
		[]string{"-m85", "--strip-all", "--all-progressive"},
		cfg.Tools.JpegoptimArgs,
	)
	assert.Equal([]string{"--disable=cleanupIDs"}, cfg.Tools.SvgoArgs)
	assert.Empty(cfg.Tools.Custom)

	assert.True(cfg.Optimize.IgnoreErrors)
	assert.True(cfg.Optimize.OnlyFirstPNG)
	assert.True(cfg.Optimize.OnlyFirstJPEG)
	assert.Equal(60, cfg.Optimize.TimeoutSeconds)
	assert.Equal("%basename%/%filename%%ext%", cfg.Optimize.OutputPattern)
	assert.Equal(60*time.Second, cfg.Optimize.Timeout())

	assert.Equal("json", cfg.Log.Format)
	assert.Equal("info", cfg.Log.Level)
	assert.Equal("file", cfg.Log.Destination)
	assert.Equal(runtime.NumCPU(), cfg.JobsNumber)
	assert.Empty(cfg.HomeDir)
}

func TestUpdate(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()

	off := false
	cfg.Update([]config.Option{
		config.OptPngquantArgs([]string{"--quality=65-80"}),
		config.OptIgnoreErrors(&off),
		config.OptOnlyFirstPNG(&off),
		config.OptTimeoutSeconds(120),
		config.OptOutputPattern("%basename%/%filename%-opt%ext%"),
		config.OptLogLevel("DEBUG"),
		config.OptLogFormat("text"),
		config.OptLogDestination("stderr"),
		config.OptJobsNumber(4),
		config.OptHomeDir("/home/someone"),
	})

	assert.Equal([]string{"--quality=65-80"}, cfg.Tools.PngquantArgs)
	assert.False(cfg.Optimize.IgnoreErrors)
	assert.False(cfg.Optimize.OnlyFirstPNG)
	assert.True(cfg.Optimize.OnlyFirstJPEG, "untouched fields keep defaults")
	assert.Equal(120, cfg.Optimize.TimeoutSeconds)
	assert.Equal("%basename%/%filename%-opt%ext%", cfg.Optimize.OutputPattern)
	assert.Equal("debug", cfg.Log.Level, "levels are normalized to lower case")
	assert.Equal("text", cfg.Log.Format)
	assert.Equal("stderr", cfg.Log.Destination)
	assert.Equal(4, cfg.JobsNumber)
	assert.Equal("/home/someone", cfg.HomeDir)
}

func TestUpdateRejectsInvalid(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()

	var unset *bool
	cfg.Update([]config.Option{
		config.OptPngquantArgs(nil),
		config.OptIgnoreErrors(unset),
		config.OptTimeoutSeconds(0),
		config.OptTimeoutSeconds(-5),
		config.OptOutputPattern("   "),
		config.OptLogLevel("loud"),
		config.OptLogFormat("xml"),
		config.OptLogDestination("syslog"),
		config.OptJobsNumber(-1),
		config.OptHomeDir(""),
	})

	def := config.New()
	assert.Equal(def, cfg, "invalid options leave the config untouched")
}

func TestCustomTools(t *testing.T) {
	assert := assert.New(t)
	cfg := config.New()

	cfg.Update([]config.Option{
		config.OptCustomTools([]config.CustomTool{
			{Name: "webpler", Command: "cwebp", Args: []string{"-q", "80"}},
			{Name: "", Command: "nameless"},
			{Name: "cmdless", Command: ""},
		}),
	})

	assert.Len(cfg.Tools.Custom, 1,
		"entries without a name or a command are rejected")
	assert.Equal("webpler", cfg.Tools.Custom[0].Name)
	assert.Equal("cwebp", cfg.Tools.Custom[0].Command)
}

func TestToOptionsRoundTrip(t *testing.T) {
	assert := assert.New(t)

	src := config.New()
	off := false
	src.Update([]config.Option{
		config.OptSvgoArgs([]string{"--multipass"}),
		config.OptIgnoreErrors(&off),
		config.OptOnlyFirstJPEG(&off),
		config.OptTimeoutSeconds(30),
		config.OptJobsNumber(2),
		config.OptCustomTools([]config.CustomTool{
			{Name: "webpler", Command: "cwebp"},
		}),
	})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Equal(src, dst)
}

func TestToOptionsSkipsHomeDir(t *testing.T) {
	assert := assert.New(t)

	src := config.New()
	src.Update([]config.Option{config.OptHomeDir("/home/someone")})

	dst := config.New()
	dst.Update(src.ToOptions())

	assert.Empty(dst.HomeDir, "HomeDir is runtime-only, never persisted")
}

func TestPathHelpers(t *testing.T) {
	assert := assert.New(t)
	home := "/home/someone"

	assert.Equal(
		filepath.Join(home, ".config", "optimg"),
		config.ConfigDir(home),
	)
	assert.Equal(
		filepath.Join(home, ".local", "share", "optimg", "logs"),
		config.LogDir(home),
	)
	assert.Equal(
		filepath.Join(home, ".config", "optimg", "optimg.yaml"),
		config.ConfigFilePath(home),
	)
}
