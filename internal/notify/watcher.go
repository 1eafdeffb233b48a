package notify

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Internmain07/I-INTERN-sub000/internal/ports"
)

// Watcher reloads a Registry when its policy file changes on disk.
// Editors often replace files instead of writing in place, so the watch is
// on the containing directory and events are debounced.
type Watcher struct {
	registry *Registry
	path     string
	logger   ports.Logger

	mu       sync.Mutex
	debounce *time.Timer
}

// NewWatcher creates a watcher for the given policy file.
func NewWatcher(registry *Registry, path string, logger ports.Logger) *Watcher {
	return &Watcher{
		registry: registry,
		path:     path,
		logger:   logger,
	}
}

// Run blocks until ctx is canceled, reloading the registry on changes.
// The file is loaded once up front so a watcher start doubles as the
// initial load.
func (w *Watcher) Run(ctx context.Context) {
	w.reload()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		w.logger.Error("template watcher: create failed", ports.Err(err))
		return
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		w.logger.Error("template watcher: watch failed",
			ports.String("dir", filepath.Dir(w.path)),
			ports.Err(err),
		)
		return
	}

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			w.debounceReload(100 * time.Millisecond)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("template watcher: error", ports.Err(err))
		}
	}
}

func (w *Watcher) debounceReload(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounce != nil {
		w.debounce.Stop()
	}
	w.debounce = time.AfterFunc(d, w.reload)
}

func (w *Watcher) reload() {
	if err := w.registry.LoadFile(w.path); err != nil {
		w.logger.Warn("template registry reload failed",
			ports.String("path", w.path),
			ports.Err(err),
		)
		return
	}
	w.logger.Info("template registry reloaded", ports.String("path", w.path))
}
