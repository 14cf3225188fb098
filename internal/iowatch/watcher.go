// Package iowatch watches a directory tree and optimizes image files
// as they appear or change. Events are debounced so a file is only
// optimized once its writer has gone quiet. This is an impure I/O
// package.
package iowatch

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/optimg/optimg/pkg/optimizer"
)

const (
	defaultDebounce = 500 * time.Millisecond

	// cooldown suppresses the change events our own optimization run
	// produces, which would otherwise re-trigger the watcher forever.
	cooldown = 2 * time.Second
)

var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".svg":  {},
}

// Watcher optimizes image files in a directory tree as they change.
type Watcher struct {
	mu sync.Mutex

	dir      string
	opt      optimizer.Optimizer
	debounce time.Duration

	pending   map[string]*time.Timer
	optimized map[string]time.Time
}

// New creates a watcher over dir that routes changed image files to
// opt, normally the "smart" registry entry.
func New(dir string, opt optimizer.Optimizer) *Watcher {
	return &Watcher{
		dir:       dir,
		opt:       opt,
		debounce:  defaultDebounce,
		pending:   make(map[string]*time.Timer),
		optimized: make(map[string]time.Time),
	}
}

// Run watches until the context is canceled.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return NewWatchError(w.dir, err)
	}
	defer watcher.Close()

	// watch the tree, not just the root
	err = filepath.WalkDir(w.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return NewWatchError(w.dir, err)
	}

	slog.Info("Watching for image changes", "dir", w.dir)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Watcher error", "dir", w.dir, "error", err)
		}
	}
}

func (w *Watcher) handleEvent(
	ctx context.Context,
	watcher *fsnotify.Watcher,
	event fsnotify.Event,
) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}

	// new subdirectories join the watch
	if event.Has(fsnotify.Create) && isDir(event.Name) {
		_ = watcher.Add(event.Name)
		return
	}

	ext := strings.ToLower(filepath.Ext(event.Name))
	if _, ok := imageExts[ext]; !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if at, ok := w.optimized[event.Name]; ok && time.Since(at) < cooldown {
		return
	}

	path := event.Name
	if timer, ok := w.pending[path]; ok {
		timer.Reset(w.debounce)
		return
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.optimizeFile(ctx, path)
	})
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (w *Watcher) optimizeFile(ctx context.Context, path string) {
	defer func() {
		w.mu.Lock()
		delete(w.pending, path)
		w.optimized[path] = time.Now()
		w.mu.Unlock()
	}()

	if err := w.opt.Optimize(ctx, path); err != nil {
		slog.Error("Watch optimization failed", "path", path, "error", err)
		return
	}
	slog.Info("Optimized", "path", path)
}
