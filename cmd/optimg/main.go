// Package main provides the optimg CLI application.
// optimg shrinks PNG, JPEG, GIF and SVG files by running external
// optimization tools and keeping a result only when it is smaller.
package main

import (
	"os"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
