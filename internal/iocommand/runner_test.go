package iocommand

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/optimg/optimg/pkg/command"
)

func TestRunSuccess(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns subprocesses")
	}

	r := NewRunner()
	spec := command.Spec{
		Name:    "echo",
		Command: "echo",
		Timeout: 5 * time.Second,
	}

	res, err := r.Run(context.Background(), spec, []string{"hello"})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Empty(t, res.Stderr)
	assert.Greater(t, res.Duration, time.Duration(0))
}

func TestRunNonzeroExit(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns subprocesses")
	}

	r := NewRunner()
	spec := command.Spec{
		Name:    "sh",
		Command: "sh",
		Timeout: 5 * time.Second,
	}

	res, err := r.Run(context.Background(), spec,
		[]string{"-c", "echo oops >&2; exit 3"})
	require.Error(t, err)

	var procErr ProcessError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, "sh", procErr.Tool)
	assert.Equal(t, 3, procErr.ExitCode)
	assert.Contains(t, procErr.Stderr, "oops")
	assert.Equal(t, 3, res.ExitCode)
}

func TestRunTimeout(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns subprocesses")
	}

	r := NewRunner()
	spec := command.Spec{
		Name:    "sleep",
		Command: "sleep",
		Timeout: 100 * time.Millisecond,
	}

	_, err := r.Run(context.Background(), spec, []string{"10"})
	require.Error(t, err)

	var toErr TimeoutError
	require.ErrorAs(t, err, &toErr)
	assert.Equal(t, "sleep", toErr.Tool)
	assert.Equal(t, 100*time.Millisecond, toErr.Timeout)
}

func TestRunMissingExecutable(t *testing.T) {
	if testing.Short() {
		t.Skip("spawns subprocesses")
	}

	r := NewRunner()
	spec := command.Spec{
		Name:    "ghost",
		Command: "definitely-not-installed-anywhere",
		Timeout: 5 * time.Second,
	}

	_, err := r.Run(context.Background(), spec, nil)
	require.Error(t, err)

	var startErr StartError
	require.ErrorAs(t, err, &startErr)
	assert.Equal(t, "ghost", startErr.Tool)
}

func TestFinder(t *testing.T) {
	f := NewFinder()

	path, ok := f.Find("sh")
	assert.True(t, ok)
	assert.NotEmpty(t, path)

	_, ok = f.Find("definitely-not-installed-anywhere")
	assert.False(t, ok)
}
