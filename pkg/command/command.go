// Package command defines the contract between optimizers and the
// subprocess layer: how a tool invocation is described, how the target
// file is merged into the argument vector, and what a finished run
// reports back. It has no I/O of its own.
package command

import (
	"path/filepath"
	"time"
)

// ArgStyle selects how the target file path is merged into a tool's
// argument vector. Only three patterns exist among the supported tools,
// so the style is a closed enum rather than an arbitrary callback.
type ArgStyle int

const (
	// StyleInPlace appends the path as the last argument; the tool
	// overwrites the file itself (optipng, jpegoptim, gifsicle...).
	StyleInPlace ArgStyle = iota

	// StyleOutputFlag injects an explicit output flag pointing back at
	// the input, then the input path (jpegtran -outfile, svgo -o).
	StyleOutputFlag

	// StyleExtFlag injects an extension flag derived from the input
	// path, then the path (pngquant --ext=.png with --force overwrites
	// the original).
	StyleExtFlag
)

// Spec describes one external tool invocation. It is immutable once
// constructed and owned by a single-tool optimizer.
type Spec struct {
	// Name is the registry name of the tool ("optipng", "pngquant"...).
	Name string

	// Command is the executable to run: an absolute path when the
	// finder resolved one, otherwise the bare name.
	Command string

	// Args is the base argument list that precedes the per-invocation
	// arguments produced by Style.
	Args []string

	// Style controls how the file path enters the argument vector.
	Style ArgStyle

	// OutputFlag is the flag used by StyleOutputFlag ("-outfile", "-o").
	OutputFlag string

	// Timeout bounds the subprocess run; the process is killed when it
	// elapses.
	Timeout time.Duration
}

// BuildArgs returns the full argument vector for optimizing path.
func (s Spec) BuildArgs(path string) []string {
	args := make([]string, 0, len(s.Args)+3)
	args = append(args, s.Args...)

	switch s.Style {
	case StyleOutputFlag:
		args = append(args, s.OutputFlag, path, path)
	case StyleExtFlag:
		args = append(args, "--ext="+filepath.Ext(path), path)
	default:
		args = append(args, path)
	}
	return args
}

// RunResult reports a finished subprocess run. It is transient: produced
// and consumed inside one optimize call, never persisted.
type RunResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}
