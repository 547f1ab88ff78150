// Package watch re-runs a callback when files below a set of directories
// change. Bursts of events are collapsed with a debounce delay.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period before the callback runs.
const DefaultDebounce = 500 * time.Millisecond

// Watcher watches directory trees and runs OnChange after changes settle.
type Watcher struct {
	fsw      *fsnotify.Watcher
	debounce time.Duration

	// OnChange runs on the Run goroutine, never concurrently with itself.
	OnChange func()
	// OnError receives watcher errors. Nil discards them.
	OnError func(error)
}

// New returns a watcher over every directory below each of roots.
func New(roots []string, debounce time.Duration) (*Watcher, error) {
	if len(roots) == 0 {
		return nil, errors.New("nothing to watch")
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	w := &Watcher{fsw: fsw, debounce: debounce}
	for _, root := range roots {
		if err := w.addRecursive(root); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := w.fsw.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}

// Run delivers debounced change notifications until ctx is done, then closes
// the underlying watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()
	pending := false

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if ev.Has(fsnotify.Chmod) && !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if ev.Has(fsnotify.Create) {
				// New locale or nested template directories need their own watch.
				if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
					if err := w.addRecursive(ev.Name); err != nil {
						w.reportError(err)
					}
				}
			}
			pending = true
			timer.Reset(w.debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.reportError(err)

		case <-timer.C:
			if pending {
				pending = false
				if w.OnChange != nil {
					w.OnChange()
				}
			}
		}
	}
}

func (w *Watcher) reportError(err error) {
	if w.OnError != nil {
		w.OnError(err)
	}
}
