package ioconfig

import (
	"fmt"
	"os"

	"github.com/gnames/gnsys"
	"gopkg.in/yaml.v3"

	"github.com/optimg/optimg/pkg/config"
)

const configHeader = `# optimg configuration.
#
# The argument lists below are passed to each external tool before the
# target file path. Set custom tools under tools.custom, for example:
#
#   custom:
#     - name: webpng
#       command: webpng
#       args: ["-lossless"]
#
# Every value can also be set through OPTIMG_* environment variables,
# e.g. OPTIMG_OPTIMIZE_IGNORE_ERRORS=false.

`

// ConfigFileExists reports whether the default config file is present.
func ConfigFileExists() (bool, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return false, fmt.Errorf("failed to get user home directory: %w", err)
	}

	_, err = os.Stat(config.ConfigFilePath(homeDir))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// GenerateDefaultConfig creates a documented default config file at
// ~/.config/optimg/optimg.yaml. Returns the path where the config was
// created. Does NOT overwrite existing config files.
func GenerateDefaultConfig() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	configPath := config.ConfigFilePath(homeDir)
	if _, err := os.Stat(configPath); err == nil {
		return "", fmt.Errorf("config file already exists at %s", configPath)
	}

	if err := gnsys.MakeDir(config.ConfigDir(homeDir)); err != nil {
		return "", NewGenerateError(configPath, err)
	}

	data, err := yaml.Marshal(config.New())
	if err != nil {
		return "", NewGenerateError(configPath, err)
	}

	content := append([]byte(configHeader), data...)
	if err := os.WriteFile(configPath, content, 0644); err != nil {
		return "", NewGenerateError(configPath, err)
	}

	return configPath, nil
}
