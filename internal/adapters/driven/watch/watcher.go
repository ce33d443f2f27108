// Package watch signals external edits to the record document.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure Watcher implements the interface.
var _ driven.FileWatcher = (*Watcher)(nil)

// DefaultDebounce coalesces the burst of events a single save produces.
const DefaultDebounce = 150 * time.Millisecond

// Watcher is an fsnotify-backed driven.FileWatcher.
// It watches the parent directory so editors that replace the file by
// rename are still observed.
type Watcher struct {
	debounce time.Duration
}

// NewWatcher creates a watcher; a zero debounce selects DefaultDebounce.
func NewWatcher(debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{debounce: debounce}
}

// Watch emits once per settled burst of changes to path.
func (w *Watcher) Watch(ctx context.Context, path string) (<-chan struct{}, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	name := filepath.Base(path)
	out := make(chan struct{}, 1)

	go func() {
		defer close(out)
		defer fw.Close()

		var fire <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case ev, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) ||
					ev.Has(fsnotify.Rename) || ev.Has(fsnotify.Remove) {
					logger.Debug("Watch event: %s", ev)
					fire = time.After(w.debounce)
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				logger.Warn("Watch error on %s: %v", path, err)

			case <-fire:
				fire = nil
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()

	return out, nil
}
