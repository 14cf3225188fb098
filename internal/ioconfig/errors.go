package ioconfig

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// LoadError is returned when a config file cannot be read or parsed.
type LoadError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewLoadError creates an error for an unreadable or malformed config
// file.
func NewLoadError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Load Configuration</title>

<warning>The configuration file <em>%s</em> could not be loaded.</warning>

<em>How to fix:</em>
  1. Check that the file exists and is valid YAML
  2. Remove it to fall back to built-in defaults
`,
		[]any{path},
	)

	return LoadError{
		error:       fmt.Errorf("cannot load config %s: %w", path, cause),
		MessageBase: userBase,
		Path:        path,
	}
}

// GenerateError is returned when the default config file cannot be
// written.
type GenerateError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewGenerateError creates an error for a failed config generation.
func NewGenerateError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Write Configuration</title>

<warning>The default configuration could not be written to <em>%s</em>.</warning>

<em>How to fix:</em>
  1. Check permissions of the configuration directory
`,
		[]any{path},
	)

	return GenerateError{
		error:       fmt.Errorf("cannot write config %s: %w", path, cause),
		MessageBase: userBase,
		Path:        path,
	}
}
