package iooptimize

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/optimg/optimg/pkg/optimizer"
)

// imageExts are the extensions picked up when a directory is walked.
// Explicitly listed files are optimized regardless of extension.
var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
}

// FileResult reports the outcome of optimizing one file.
type FileResult struct {
	Path       string
	SizeBefore int64
	SizeAfter  int64
	Err        error
}

// Saved returns how many bytes the optimization removed.
func (fr FileResult) Saved() int64 {
	return fr.SizeBefore - fr.SizeAfter
}

// BatchReport summarizes a batch run.
type BatchReport struct {
	Processed   int
	Optimized   int
	Unchanged   int
	Failed      int
	BytesBefore int64
	BytesAfter  int64
}

// CollectFiles expands the given paths into the list of files to
// optimize. Directories are walked recursively and filtered by image
// extension; files are taken as-is.
func CollectFiles(paths []string) ([]string, error) {
	var files []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, NewValidationError(p, err)
		}

		if !info.IsDir() {
			files = append(files, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			ext := strings.ToLower(filepath.Ext(path))
			if _, ok := imageExts[ext]; ok {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, NewValidationError(p, err)
		}
	}
	return files, nil
}

// OptimizeBatch runs opt against every file using a pool of jobs
// concurrent workers. Files are distributed across workers so a single
// file is only ever touched by one optimize call at a time; the
// optimizer graph itself is immutable and safe for concurrent use.
// Per-file failures are recorded in the report, not returned: with a
// suppression-wrapped optimizer they never occur, and without one the
// first failure cancels the batch and is returned.
func OptimizeBatch(
	ctx context.Context,
	opt optimizer.Optimizer,
	files []string,
	jobs int,
) (BatchReport, error) {
	if jobs <= 0 {
		jobs = 1
	}

	chIn := make(chan string)
	chOut := make(chan FileResult)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(chIn)
		for _, f := range files {
			select {
			case chIn <- f:
			case <-gCtx.Done():
				return gCtx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for i := 0; i < jobs; i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return optimizeWorker(gCtx, opt, chIn, chOut)
		})
	}

	// close chOut once all workers are done so the collector stops
	go func() {
		wg.Wait()
		close(chOut)
	}()

	var report BatchReport
	bar := newProgressBar(len(files), "optimizing ")
	defer bar.Finish()

	for fr := range chOut {
		bar.Increment()
		report.Processed++
		switch {
		case fr.Err != nil:
			report.Failed++
		case fr.Saved() > 0:
			report.Optimized++
		default:
			report.Unchanged++
		}
		report.BytesBefore += fr.SizeBefore
		report.BytesAfter += fr.SizeAfter
	}

	if err := g.Wait(); err != nil {
		return report, err
	}
	return report, nil
}

// optimizeWorker optimizes files from chIn until the channel drains or
// the context is canceled.
func optimizeWorker(
	ctx context.Context,
	opt optimizer.Optimizer,
	chIn <-chan string,
	chOut chan<- FileResult,
) error {
	for path := range chIn {
		fr := FileResult{Path: path}
		fr.SizeBefore, _ = fileSize(path)

		err := opt.Optimize(ctx, path)
		fr.SizeAfter, _ = fileSize(path)
		if err != nil {
			fr.Err = err
			slog.Error("File optimization failed", "path", path, "error", err)
		} else {
			slog.Info("File processed",
				"path", path, "before", fr.SizeBefore, "after", fr.SizeAfter)
		}

		select {
		case chOut <- fr:
		case <-ctx.Done():
			return ctx.Err()
		}

		if err != nil {
			return err
		}
	}
	return nil
}
