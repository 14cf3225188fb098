package ioconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimg/optimg/internal/ioconfig"
	"github.com/optimg/optimg/pkg/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "optimg.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadExplicitFile(t *testing.T) {
	path := writeConfig(t, `
tools:
  pngquant_args: ["--quality=65-80", "--force"]
  custom:
    - name: webpler
      command: cwebp
      args: ["-q", "80"]
optimize:
  ignore_errors: false
  timeout_seconds: 30
log:
  level: debug
jobs_number: 2
`)

	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file", res.Source)
	assert.Equal(t, path, res.SourcePath)

	cfg := res.Config
	assert.Equal(t, []string{"--quality=65-80", "--force"}, cfg.Tools.PngquantArgs)
	assert.Equal(t,
		[]config.CustomTool{{Name: "webpler", Command: "cwebp", Args: []string{"-q", "80"}}},
		cfg.Tools.Custom,
	)
	assert.False(t, cfg.Optimize.IgnoreErrors)
	assert.Equal(t, 30, cfg.Optimize.TimeoutSeconds)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 2, cfg.JobsNumber)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "optimize:\n  timeout_seconds: 90\n")

	res, err := ioconfig.Load(path)
	require.NoError(t, err)

	def := config.New()
	cfg := res.Config
	assert.Equal(t, 90, cfg.Optimize.TimeoutSeconds)
	assert.Equal(t, def.Tools.OptipngArgs, cfg.Tools.OptipngArgs)
	assert.Equal(t, def.Optimize.OutputPattern, cfg.Optimize.OutputPattern)
	assert.Equal(t, def.Log.Format, cfg.Log.Format)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := ioconfig.Load("/no/such/optimg.yaml")
	require.Error(t, err)

	var loadErr ioconfig.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "tools: [not a map\n")

	_, err := ioconfig.Load(path)
	require.Error(t, err)

	var loadErr ioconfig.LoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestLoadWithoutFile(t *testing.T) {
	// an empty working directory has no optimg.yaml on the search path
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	res, err := ioconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, "defaults+env", res.Source)
	assert.Equal(t, config.New().Optimize, res.Config.Optimize)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("OPTIMG_OPTIMIZE_TIMEOUT_SECONDS", "15")
	t.Setenv("OPTIMG_LOG_LEVEL", "debug")

	res, err := ioconfig.Load("")
	require.NoError(t, err)
	assert.Equal(t, 15, res.Config.Optimize.TimeoutSeconds)
	assert.Equal(t, "debug", res.Config.Log.Level)
}

func TestGenerateDefaultConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	exists, err := ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.False(t, exists)

	path, err := ioconfig.GenerateDefaultConfig()
	require.NoError(t, err)
	assert.FileExists(t, path)

	exists, err = ioconfig.ConfigFileExists()
	require.NoError(t, err)
	assert.True(t, exists)

	// the generated file round-trips to the defaults
	res, err := ioconfig.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.New().Tools, res.Config.Tools)
	assert.Equal(t, config.New().Optimize, res.Config.Optimize)

	// a second run must not clobber the existing file
	_, err = ioconfig.GenerateDefaultConfig()
	assert.Error(t, err)
}
