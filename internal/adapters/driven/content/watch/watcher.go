// Package watch reloads site content when the content directory changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ictam/agmsite/internal/logger"
)

// DefaultDebounce is how long the watcher waits for edits to settle.
const DefaultDebounce = 500 * time.Millisecond

// ReloadFunc re-reads content. Errors are logged and the watcher keeps going.
type ReloadFunc func(ctx context.Context) error

// Watcher triggers a reload after JSON files in a directory change.
type Watcher struct {
	dir      string
	reload   ReloadFunc
	debounce time.Duration

	mu      sync.Mutex
	reloads int
}

// New creates a watcher over dir.
func New(dir string, reload ReloadFunc) *Watcher {
	return &Watcher{
		dir:      dir,
		reload:   reload,
		debounce: DefaultDebounce,
	}
}

// SetDebounce overrides the settle delay.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Reloads reports how many reloads have run.
func (w *Watcher) Reloads() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.reloads
}

// Run watches until ctx is cancelled. It returns nil on cancellation.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	logger.Info("Watching %s for content changes", w.dir)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			logger.Debug("Content change: %s (%s)", event.Name, event.Op)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			w.runReload(ctx)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}

func (w *Watcher) runReload(ctx context.Context) {
	w.mu.Lock()
	w.reloads++
	w.mu.Unlock()

	if err := w.reload(ctx); err != nil {
		logger.Error("Content reload failed: %v", err)
		return
	}
	logger.Info("Content reloaded from %s", w.dir)
}

// relevant reports whether event touches a JSON collection.
func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), ".json") {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
