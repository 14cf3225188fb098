package iofs

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// CreateDirError is returned when an application directory cannot be
// created.
type CreateDirError struct {
	error
	gnlib.MessageBase
	Dir string
}

// NewCreateDirError creates an error for a failed directory creation.
func NewCreateDirError(dir string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Create Directory</title>

<warning>The directory <em>%s</em> could not be created.</warning>

<em>How to fix:</em>
  1. Check permissions of the parent directory
`,
		[]any{dir},
	)

	return CreateDirError{
		error:       fmt.Errorf("cannot create dir %s: %w", dir, cause),
		MessageBase: userBase,
		Dir:         dir,
	}
}
