package iooptimize

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/optimg/optimg/pkg/optimizer"
)

// validated is the output-validation decorator. It directs the inner
// optimizer at a pattern-derived candidate path and accepts the result
// only when the candidate is strictly smaller than the original. A
// no-improvement result is discarded silently and reported as success.
type validated struct {
	inner   optimizer.Optimizer
	pattern string
}

// NewValidated wraps inner so that its output never replaces the
// original file with a larger one. The pattern derives the candidate
// output path from the input path; a pattern resolving to the input
// path itself selects in-place optimization.
func NewValidated(inner optimizer.Optimizer, pattern string) optimizer.Optimizer {
	return &validated{inner: inner, pattern: pattern}
}

// Optimize runs the inner optimizer against the candidate path. When
// the candidate equals the input path the inner optimizer mutates the
// file directly; no size comparison is needed beyond "did it fail".
func (v *validated) Optimize(ctx context.Context, path string) error {
	path = filepath.Clean(path)
	candidate := resolvePattern(v.pattern, path)

	if candidate == path {
		return v.inner.Optimize(ctx, path)
	}

	origSize, err := fileSize(path)
	if err != nil {
		return NewValidationError(path, err)
	}

	// The tools mutate the file they are pointed at, so the candidate
	// starts as a copy of the input.
	if err := copyFile(path, candidate); err != nil {
		return NewValidationError(path, err)
	}

	if err := v.inner.Optimize(ctx, candidate); err != nil {
		_ = os.Remove(candidate)
		return err
	}

	candSize, err := fileSize(candidate)
	if err != nil {
		_ = os.Remove(candidate)
		return NewValidationError(candidate, err)
	}

	if candSize == 0 || candSize >= origSize {
		slog.Debug("Discarding candidate without size improvement",
			"path", path, "original", origSize, "candidate", candSize)
		return os.Remove(candidate)
	}

	return replaceFile(path, candidate)
}

// resolvePattern substitutes the input path's components into the
// output pattern. Placeholders: %basename% is the directory part,
// %filename% the name without extension, %ext% the extension with the
// leading dot.
func resolvePattern(pattern, path string) string {
	dir := filepath.Dir(path)
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(filepath.Base(path), ext)

	res := pattern
	res = strings.ReplaceAll(res, "%basename%", dir)
	res = strings.ReplaceAll(res, "%filename%", stem)
	res = strings.ReplaceAll(res, "%ext%", ext)
	return filepath.Clean(res)
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return info.Size(), nil
}

// copyFile copies src to dst preserving the source's permissions.
func copyFile(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return err
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode())
	if err != nil {
		return err
	}

	if _, err = io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// replaceFile swaps the accepted candidate in for the original. The
// candidate may live on another filesystem, so it is first copied to a
// uniquely named sibling of the original and then renamed into place.
func replaceFile(path, candidate string) error {
	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString())

	if err := copyFile(candidate, tmp); err != nil {
		_ = os.Remove(candidate)
		return NewValidationError(path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		_ = os.Remove(candidate)
		return NewValidationError(path, err)
	}
	return os.Remove(candidate)
}
