package iooptimize

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const inPlacePattern = "%basename%/%filename%%ext%"

func writeFile(t *testing.T, dir, name string, size int) string {
	t.Helper()
	path := filepath.Join(dir, name)
	err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0644)
	require.NoError(t, err)
	return path
}

func fileBytes(t *testing.T, path string) int64 {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	return info.Size()
}

func TestResolvePattern(t *testing.T) {
	tests := []struct {
		msg     string
		pattern string
		path    string
		res     string
	}{
		{
			msg:     "identity pattern yields the input path",
			pattern: "%basename%/%filename%%ext%",
			path:    "/img/photo.png",
			res:     "/img/photo.png",
		},
		{
			msg:     "suffix pattern yields a sibling",
			pattern: "%basename%/%filename%_optimized%ext%",
			path:    "/img/photo.png",
			res:     "/img/photo_optimized.png",
		},
		{
			msg:     "pattern may redirect to another directory",
			pattern: "/tmp/candidates/%filename%%ext%",
			path:    "/img/photo.png",
			res:     "/tmp/candidates/photo.png",
		},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, resolvePattern(v.pattern, v.path), v.msg)
	}
}

func TestValidatedInPlaceDelegates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	inner := &countingOptimizer{}
	v := NewValidated(inner, inPlacePattern)

	require.NoError(t, v.Optimize(context.Background(), path))
	assert.Equal(t, 1, inner.calls)
}

func TestValidatedInPlaceFailurePropagates(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	innerErr := errors.New("tool broke")
	v := NewValidated(&countingOptimizer{err: innerErr}, inPlacePattern)

	err := v.Optimize(context.Background(), path)
	assert.Equal(t, innerErr, err)
}

func TestValidatedAcceptsSmallerCandidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	// the inner optimizer sees the candidate copy and shrinks it
	inner := optimizeFunc(func(ctx context.Context, p string) error {
		assert.NotEqual(t, path, p, "inner optimizer must get the candidate path")
		return os.WriteFile(p, []byte(strings.Repeat("y", 400)), 0644)
	})

	v := NewValidated(inner, "%basename%/%filename%_opt%ext%")
	require.NoError(t, v.Optimize(context.Background(), path))

	assert.Equal(t, int64(400), fileBytes(t, path), "original replaced by smaller candidate")
	_, err := os.Stat(filepath.Join(dir, "photo_opt.png"))
	assert.True(t, os.IsNotExist(err), "candidate is cleaned up")
}

func TestValidatedDiscardsLargerCandidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	inner := optimizeFunc(func(ctx context.Context, p string) error {
		return os.WriteFile(p, []byte(strings.Repeat("y", 5000)), 0644)
	})

	v := NewValidated(inner, "%basename%/%filename%_opt%ext%")
	require.NoError(t, v.Optimize(context.Background(), path),
		"a no-improvement result is a silent success, not a failure")

	assert.Equal(t, int64(1000), fileBytes(t, path), "original left untouched")
	_, err := os.Stat(filepath.Join(dir, "photo_opt.png"))
	assert.True(t, os.IsNotExist(err), "candidate is discarded")
}

func TestValidatedDiscardsEqualSizeCandidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	inner := optimizeFunc(func(ctx context.Context, p string) error {
		return nil // candidate copy keeps the original size
	})

	v := NewValidated(inner, "%basename%/%filename%_opt%ext%")
	require.NoError(t, v.Optimize(context.Background(), path))
	assert.Equal(t, int64(1000), fileBytes(t, path),
		"equal size is not an improvement")
}

func TestValidatedNeverGrowsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)
	before := fileBytes(t, path)

	sizes := []int{1, 500, 999, 1000, 1001, 9000}
	for _, size := range sizes {
		size := size
		inner := optimizeFunc(func(ctx context.Context, p string) error {
			return os.WriteFile(p, []byte(strings.Repeat("z", size)), 0644)
		})
		v := NewValidated(inner, "%basename%/%filename%_opt%ext%")
		require.NoError(t, v.Optimize(context.Background(), path))

		after := fileBytes(t, path)
		assert.LessOrEqual(t, after, before,
			"post-call size must never exceed pre-call size")
		before = after
	}
}

func TestValidatedCandidateFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "photo.png", 1000)

	innerErr := errors.New("tool broke")
	v := NewValidated(&countingOptimizer{err: innerErr},
		"%basename%/%filename%_opt%ext%")

	err := v.Optimize(context.Background(), path)
	assert.Equal(t, innerErr, err)

	_, statErr := os.Stat(filepath.Join(dir, "photo_opt.png"))
	assert.True(t, os.IsNotExist(statErr), "failed candidate is removed")
	assert.Equal(t, int64(1000), fileBytes(t, path))
}
