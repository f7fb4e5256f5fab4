// Package watch reloads the corpus when the snapshot changes on disk.
//
// The watcher observes the snapshot's directory rather than the file itself,
// because editors and exporters usually replace the file by renaming a
// temporary one over it. Bursts of events are debounced into one reload and
// reloads are rate limited.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/time/rate"

	"github.com/hibiki-labs/kioku/internal/logger"
)

// ReloadFunc rebuilds the corpus. Errors are logged and the watcher keeps going.
type ReloadFunc func(ctx context.Context) error

// Config configures a Watcher.
type Config struct {
	// Path is the snapshot file or SQLite database to watch.
	Path string

	// Debounce is how long the file must stay quiet before reloading.
	Debounce time.Duration

	// MinInterval is the minimum time between two reloads. Zero means no limit.
	MinInterval time.Duration
}

// Watcher triggers reloads on snapshot changes.
type Watcher struct {
	path     string
	debounce time.Duration
	limiter  *rate.Limiter
	reload   ReloadFunc
}

// New creates a watcher. It does not start watching until Run is called.
func New(cfg Config, reload ReloadFunc) *Watcher {
	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}
	return &Watcher{
		path:     filepath.Clean(cfg.Path),
		debounce: cfg.Debounce,
		limiter:  rate.NewLimiter(limit, 1),
		reload:   reload,
	}
}

// Run watches until ctx is done. It returns an error only if watching
// could not start.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create fsnotify watcher: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("Watching %s for changes", w.path)

	var timer *time.Timer
	var fire <-chan time.Time
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
			if !w.relevant(event) {
				continue
			}
			logger.Debug("Snapshot event: %s", event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)

		case <-fire:
			fire = nil
			w.trigger(ctx)
		}
	}
}

// relevant reports whether event concerns the snapshot or its SQLite WAL.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Clean(event.Name)
	return name == w.path || strings.HasPrefix(name, w.path+"-wal")
}

func (w *Watcher) trigger(ctx context.Context) {
	if err := w.limiter.Wait(ctx); err != nil {
		return
	}
	if err := w.reload(ctx); err != nil {
		logger.Warn("Snapshot reload failed, keeping previous corpus: %v", err)
		return
	}
	logger.Info("Snapshot %s reloaded", w.path)
}
