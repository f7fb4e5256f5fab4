package cli

import (
	"context"
	"time"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/watch"
	"github.com/hibiki-labs/kioku/internal/logger"
)

// minReloadInterval bounds how often a watcher can rebuild the corpus.
const minReloadInterval = time.Second

// watchRequested reports whether the snapshot should be watched, either
// because the flag was given or the config enables it.
func watchRequested(flag bool) bool {
	return flag || (appSettings != nil && appSettings.Watch.Enabled)
}

// newSnapshotWatcher returns a watcher that reloads the corpus when the
// resolved snapshot changes. ensureCorpus must have run.
func newSnapshotWatcher() *watch.Watcher {
	return watch.New(watch.Config{
		Path:        snapshotPath,
		Debounce:    appSettings.Watch.Debounce,
		MinInterval: minReloadInterval,
	}, func(ctx context.Context) error {
		stats, err := corpusService.Reload(ctx)
		if err != nil {
			return err
		}
		logger.Info("reloaded %d videos (generation %s)", stats.Records, stats.Generation)
		return nil
	})
}
