package iofiletype

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// ReadError is returned when a file cannot be opened or read for
// classification.
type ReadError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewReadError creates an error for an unreadable file.
func NewReadError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Read File</title>

<warning>The file <em>%s</em> could not be read.</warning>

<em>How to fix:</em>
  1. Check that the file exists
  2. Check the file permissions
`,
		[]any{path},
	)

	return ReadError{
		error:       fmt.Errorf("cannot read %s: %w", path, cause),
		MessageBase: userBase,
		Path:        path,
	}
}

// UnknownTypeError is returned when a file matches no supported image
// format.
type UnknownTypeError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewUnknownTypeError creates an error for an unclassifiable file.
func NewUnknownTypeError(path string) error {
	userBase := gnlib.NewMessage(
		`<title>Unrecognized File Type</title>

<warning>The file <em>%s</em> is not a recognized image format.</warning>

Supported formats: PNG, JPEG, GIF, SVG.
`,
		[]any{path},
	)

	return UnknownTypeError{
		error:       fmt.Errorf("unrecognized file type: %s", path),
		MessageBase: userBase,
		Path:        path,
	}
}
