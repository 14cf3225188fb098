package iooptimize

import (
	"errors"
	"fmt"

	"github.com/gnames/gnlib"
	"github.com/optimg/optimg/pkg/optimizer"
)

// ExecutionError is returned when a single-tool optimizer's subprocess
// run fails. It wraps the runner's failure unchanged.
type ExecutionError struct {
	error
	gnlib.MessageBase
	Tool string
	Path string
}

// NewExecutionError creates an error for a failed tool run.
func NewExecutionError(tool, path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Optimization Failed</title>

<warning>Tool <em>%s</em> failed to optimize <em>%s</em>.</warning>

<em>How to fix:</em>
  1. Check the installed tools: <em>optimg check</em>
  2. Run with <em>--log-level debug</em> for the tool's output
`,
		[]any{tool, path},
	)

	return ExecutionError{
		error:       fmt.Errorf("%s failed on %s: %w", tool, path, cause),
		MessageBase: userBase,
		Tool:        tool,
		Path:        path,
	}
}

// ChainExhaustedError is returned when every member of a chain failed.
// Errs holds one sub-error per member, in member order.
type ChainExhaustedError struct {
	error
	gnlib.MessageBase
	Path string
	Errs []error
}

// NewChainExhaustedError aggregates the sub-errors of a fully failed
// chain.
func NewChainExhaustedError(path string, subErrs []error) error {
	userBase := gnlib.NewMessage(
		`<title>All Optimizers Failed</title>

<warning>Every tool in the chain failed to optimize <em>%s</em>.</warning>

<em>How to fix:</em>
  1. Check which tools are installed: <em>optimg check</em>
  2. Install at least one tool for this image format
`,
		[]any{path},
	)

	return ChainExhaustedError{
		error: fmt.Errorf("all %d optimizers failed on %s: %w",
			len(subErrs), path, errors.Join(subErrs...)),
		MessageBase: userBase,
		Path:        path,
		Errs:        subErrs,
	}
}

// Unwrap exposes the aggregated sub-errors to errors.Is and errors.As.
func (e ChainExhaustedError) Unwrap() []error {
	return e.Errs
}

// UnsupportedTypeError is returned by the type-dispatch optimizer when
// no optimizer is registered for the detected type tag.
type UnsupportedTypeError struct {
	error
	gnlib.MessageBase
	Path string
	Type optimizer.Type
}

// NewUnsupportedTypeError creates an error for a type without a
// registered optimizer.
func NewUnsupportedTypeError(path string, typ optimizer.Type) error {
	userBase := gnlib.NewMessage(
		`<title>Unsupported Image Type</title>

<warning>No optimizer is registered for <em>%s</em> files (%s).</warning>
`,
		[]any{typ, path},
	)

	return UnsupportedTypeError{
		error:       fmt.Errorf("unsupported type %q for %s", typ, path),
		MessageBase: userBase,
		Path:        path,
		Type:        typ,
	}
}

// NotFoundError is returned by the registry when a name is not
// registered.
type NotFoundError struct {
	error
	gnlib.MessageBase
	Name string
}

// NewNotFoundError creates an error for an unknown registry name.
func NewNotFoundError(name string) error {
	userBase := gnlib.NewMessage(
		`<title>Unknown Optimizer</title>

<warning>No optimizer is registered under the name <em>%s</em>.</warning>

<em>Tip:</em> run <em>optimg check</em> to list the configured tools.
`,
		[]any{name},
	)

	return NotFoundError{
		error:       fmt.Errorf("optimizer %q is not registered", name),
		MessageBase: userBase,
		Name:        name,
	}
}

// ValidationError is returned when the output-validation decorator
// cannot stage, measure, or swap the candidate file.
type ValidationError struct {
	error
	gnlib.MessageBase
	Path string
}

// NewValidationError creates an error for a failed candidate-file
// operation.
func NewValidationError(path string, cause error) error {
	userBase := gnlib.NewMessage(
		`<title>Cannot Stage Optimized File</title>

<warning>File operations around <em>%s</em> failed.</warning>

<em>How to fix:</em>
  1. Check permissions of the file and its directory
  2. Check free disk space
`,
		[]any{path},
	)

	return ValidationError{
		error:       fmt.Errorf("output validation failed for %s: %w", path, cause),
		MessageBase: userBase,
		Path:        path,
	}
}
