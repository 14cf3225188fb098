// Package iofs prepares the application's directories on the file
// system.
package iofs

import (
	"github.com/gnames/gnsys"

	"github.com/optimg/optimg/pkg/config"
)

// EnsureDirs creates the config and log directories under homeDir when
// they do not exist yet.
func EnsureDirs(homeDir string) error {
	dirs := []string{
		config.ConfigDir(homeDir),
		config.LogDir(homeDir),
	}
	for _, dir := range dirs {
		if err := gnsys.MakeDir(dir); err != nil {
			return NewCreateDirError(dir, err)
		}
	}
	return nil
}
