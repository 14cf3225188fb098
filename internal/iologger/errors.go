package iologger

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// CreateLogFileError is returned when the log file cannot be created.
type CreateLogFileError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewCreateLogFileError creates an error for an unwritable log file.
func NewCreateLogFileError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Create Log File</title>

<warning>The log file <em>%s</em> could not be created.</warning>

<em>How to fix:</em>
  1. Check permissions of the log directory
  2. Or log to the terminal instead: <em>log.destination: stderr</em>
`,
		[]any{path},
	)

	return CreateLogFileError{
		error:       fmt.Errorf("cannot create log file %s: %w", path, cause),
		MessageBase: userBase,
		Path:        path,
	}
}
