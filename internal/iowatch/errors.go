package iowatch

import (
	"fmt"

	"github.com/gnames/gnlib"
)

// WatchError is returned when the directory watch cannot be
// established.
type WatchError struct {
	error
	gnlib.MessageBase
	Dir string
}

// NewWatchError creates an error for a failed watch setup.
func NewWatchError(dir string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Watch Directory</title>

<warning>Watching <em>%s</em> for changes failed.</warning>

<em>How to fix:</em>
  1. Check that the directory exists and is readable
  2. On Linux, check the inotify watch limit
     (<em>fs.inotify.max_user_watches</em>)
`,
		[]any{dir},
	)

	return WatchError{
		error:       fmt.Errorf("cannot watch %s: %w", dir, cause),
		MessageBase: userBase,
		Dir:         dir,
	}
}
