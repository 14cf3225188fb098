package iocommand

import (
	"os/exec"

	"github.com/optimg/optimg/pkg/command"
)

// pathFinder implements command.Finder with exec.LookPath.
type pathFinder struct{}

// NewFinder creates a Finder that resolves executables on $PATH.
func NewFinder() command.Finder {
	return &pathFinder{}
}

// Find returns the resolved path of the executable and whether it
// exists on the host.
func (f *pathFinder) Find(name string) (string, bool) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", false
	}
	return path, true
}
