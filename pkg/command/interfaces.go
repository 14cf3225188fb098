package command

import "context"

// Runner spawns an external process and waits for it to finish. A nil
// error means the process exited with status zero. Implementations do
// not retry; retry policy belongs to callers.
type Runner interface {
	// Run executes the program with the given argument vector, waiting
	// up to spec.Timeout. On nonzero exit it returns a ProcessError, on
	// an elapsed timeout a TimeoutError (see internal/iocommand).
	Run(ctx context.Context, spec Spec, args []string) (RunResult, error)
}

// Finder locates an executable on the host. It is consulted once per
// tool at registry build time and again by diagnostics.
type Finder interface {
	// Find returns the resolved path of the executable and whether it
	// exists on the host.
	Find(name string) (string, bool)
}
