// Package watch rebuilds the site when files under the source directory change.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const DefaultDebounce = 500 * time.Millisecond

type Options struct {
	// Dirs are the roots to watch recursively. Missing ones are skipped.
	Dirs     []string
	Debounce time.Duration
	// OnChange runs after events settle for Debounce. Calls never overlap.
	OnChange func() error
	Logger   *zap.Logger
}

type Watcher struct {
	opts    Options
	log     *zap.Logger
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	timer   *time.Timer
	running sync.WaitGroup
	rebuild sync.Mutex
}

func New(opts Options) (*Watcher, error) {
	if opts.OnChange == nil {
		return nil, errors.New("watch: OnChange is required")
	}
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{opts: opts, log: opts.Logger, watcher: fw}

	for _, root := range opts.Dirs {
		if _, statErr := os.Stat(root); os.IsNotExist(statErr) {
			w.log.Info("Directory not found, not watching", zap.String("dir", root))
			continue
		}
		w.log.Debug("Setting up watch", zap.String("dir", root))
		if err := w.addTree(root); err != nil {
			fw.Close()
			return nil, err
		}
	}
	return w, nil
}

// addTree adds root and every directory below it; fsnotify is not recursive.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			w.log.Warn("Error walking directory", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			if watchErr := w.watcher.Add(path); watchErr != nil {
				return fmt.Errorf("failed to watch %s: %w", path, watchErr)
			}
		}
		return nil
	})
}

// Run processes events until ctx is done, then waits for an in-flight rebuild.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("Change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				w.log.Debug("New directory created, adding to watcher", zap.String("dir", event.Name))
				if err := w.addTree(event.Name); err != nil {
					w.log.Warn("Error adding new directory to watcher", zap.Error(err))
				}
			}
			w.schedule()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil && w.timer.Stop() {
		// The stopped callback will never run.
		w.running.Done()
	}
	w.running.Add(1)
	w.timer = time.AfterFunc(w.opts.Debounce, w.fire)
}

func (w *Watcher) fire() {
	defer w.running.Done()
	w.rebuild.Lock()
	defer w.rebuild.Unlock()

	w.log.Info("Rebuilding site due to changes")
	if err := w.opts.OnChange(); err != nil {
		w.log.Error("Error during rebuild", zap.Error(err))
		return
	}
	w.log.Info("Site rebuilt successfully")
}

func (w *Watcher) stop() {
	w.mu.Lock()
	if w.timer != nil && w.timer.Stop() {
		w.running.Done()
	}
	w.timer = nil
	w.mu.Unlock()

	w.running.Wait()
	w.watcher.Close()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
