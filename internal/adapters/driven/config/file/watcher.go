package file

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/stocktalk-cli/internal/logger"
)

// Watcher reloads a config store when its file changes on disk, so a
// long-running REPL session picks up threshold edits without restarting.
type Watcher struct {
	store    *ConfigStore
	watcher  *fsnotify.Watcher
	onReload func()
}

// NewWatcher creates a watcher over the store's config file. onReload is
// called after each successful reload and may be nil.
func NewWatcher(store *ConfigStore, onReload func()) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// Watch the directory rather than the file: editors that write via
	// rename would otherwise drop the watch on first save.
	if err := fsw.Add(filepath.Dir(store.Path())); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching config directory: %w", err)
	}

	return &Watcher{store: store, watcher: fsw, onReload: onReload}, nil
}

// Run processes file events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()
	target := w.store.Path()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Name != target {
				continue
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if err := w.store.Load(); err != nil {
				logger.Warn("Reloading config: %v", err)
				continue
			}
			logger.Debug("Config reloaded from %s", target)
			if w.onReload != nil {
				w.onReload()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Config watcher: %v", err)
		}
	}
}
