package iocommand

import (
	"fmt"
	"strings"
	"time"

	"github.com/gnames/gnlib"
)

// ProcessError is returned when a tool exits with a nonzero status.
type ProcessError struct {
	error
	gnlib.MessageBase
	Tool     string
	ExitCode int
	Stderr   string
}

// NewProcessError creates an error for a tool that ran but failed.
func NewProcessError(tool string, exitCode int, stderr string) error {
	userBase := gnlib.NewMessage(
		`<title>Optimization Tool Failed</title>

<warning>The external tool <em>%s</em> exited with status %d.</warning>

<em>Tool output:</em>
%s
`,
		[]any{tool, exitCode, strings.TrimSpace(stderr)},
	)

	return ProcessError{
		error: fmt.Errorf("%s exited with status %d: %s",
			tool, exitCode, strings.TrimSpace(stderr)),
		MessageBase: userBase,
		Tool:        tool,
		ExitCode:    exitCode,
		Stderr:      stderr,
	}
}

// TimeoutError is returned when a tool exceeds its configured timeout
// and is killed.
type TimeoutError struct {
	error
	gnlib.MessageBase
	Tool    string
	Timeout time.Duration
}

// NewTimeoutError creates an error for a killed, overlong tool run.
func NewTimeoutError(tool string, timeout time.Duration) error {
	userBase := gnlib.NewMessage(
		`<title>Optimization Tool Timed Out</title>

<warning>The external tool <em>%s</em> did not finish within %s and was killed.</warning>

<em>How to fix:</em>
  1. Increase the timeout: <em>optimize.timeout_seconds</em> in optimg.yaml
  2. Check whether the input file is unusually large
`,
		[]any{tool, timeout},
	)

	return TimeoutError{
		error:       fmt.Errorf("%s timed out after %s", tool, timeout),
		MessageBase: userBase,
		Tool:        tool,
		Timeout:     timeout,
	}
}

// StartError is returned when a tool's process cannot be started,
// usually because the executable is not installed.
type StartError struct {
	error
	gnlib.MessageBase
	Tool string
}

// NewStartError creates an error for a tool that could not be spawned.
func NewStartError(tool, cmd string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Optimization Tool Not Available</title>

<warning>The external tool <em>%s</em> could not be started.</warning>

<em>How to fix:</em>
  1. Check the installed tools: <em>optimg check</em>
  2. Install <em>%s</em> with your system's package manager
`,
		[]any{tool, tool},
	)

	return StartError{
		error:       fmt.Errorf("cannot start %s (%s): %w", tool, cmd, cause),
		MessageBase: userBase,
		Tool:        tool,
	}
}
