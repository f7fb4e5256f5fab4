package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hibiki-labs/kioku/internal/adapters/driven/config/file"
	"github.com/hibiki-labs/kioku/internal/adapters/driven/snapshot"
	"github.com/hibiki-labs/kioku/internal/adapters/driven/storage/sqlite"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
	"github.com/hibiki-labs/kioku/internal/core/services"
	"github.com/hibiki-labs/kioku/internal/logger"
)

// Default snapshot file names inside the config directory.
const (
	defaultJSONSnapshot   = "videos.json"
	defaultSQLiteSnapshot = "videos.db"
)

var (
	settingsService driving.SettingsService
	searchService   driving.SearchService
	corpusService   driving.CorpusService

	// appSettings are the effective settings after env and flag overrides.
	appSettings *domain.AppSettings

	// snapshotPath is the resolved snapshot location.
	snapshotPath string

	// closers release resources opened by ensureCorpus.
	closers []func() error
)

// loadSettings reads the config file and applies env and flag overrides.
func loadSettings() error {
	if settingsService == nil {
		store, err := file.NewConfigStore(configDir())
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}
		settingsService = services.NewSettingsService(store)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("reading settings: %w", err)
	}
	applyOverrides(settings)

	if err := settingsService.Validate(settings); err != nil {
		return err
	}
	appSettings = settings
	return nil
}

// applyOverrides layers the environment and then flags over file settings.
func applyOverrides(settings *domain.AppSettings) {
	if p := os.Getenv(envSnapshot); p != "" {
		settings.Snapshot.Path = p
	}
	if snapshotFlag != "" {
		settings.Snapshot.Path = snapshotFlag
	}

	switch {
	case driverFlag != "":
		settings.Snapshot.Driver = domain.SnapshotDriver(strings.ToLower(driverFlag))
	case settings.Snapshot.Path != "":
		if d, ok := driverForPath(settings.Snapshot.Path); ok {
			settings.Snapshot.Driver = d
		}
	}
}

// driverForPath infers the driver from a snapshot file extension.
func driverForPath(path string) (domain.SnapshotDriver, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return domain.SnapshotDriverJSON, true
	case ".db", ".sqlite", ".sqlite3":
		return domain.SnapshotDriverSQLite, true
	default:
		return "", false
	}
}

// resolveSnapshotPath returns the configured path or the driver's default
// location inside the config directory.
func resolveSnapshotPath(s domain.SnapshotSettings) (string, error) {
	if s.Path != "" {
		return s.Path, nil
	}

	dir := configDir()
	if dir == "" {
		d, err := file.DefaultConfigDir()
		if err != nil {
			return "", fmt.Errorf("resolving config directory: %w", err)
		}
		dir = d
	}

	switch s.Driver {
	case domain.SnapshotDriverJSON:
		return filepath.Join(dir, defaultJSONSnapshot), nil
	case domain.SnapshotDriverSQLite:
		return filepath.Join(dir, defaultSQLiteSnapshot), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedDriver, s.Driver)
	}
}

// openSnapshotSource opens the source for the configured driver.
func openSnapshotSource(s domain.SnapshotSettings) (driven.SnapshotSource, string, error) {
	path, err := resolveSnapshotPath(s)
	if err != nil {
		return nil, "", err
	}

	switch s.Driver {
	case domain.SnapshotDriverJSON:
		return snapshot.NewFileSource(path), path, nil
	case domain.SnapshotDriverSQLite:
		store, err := sqlite.NewStore(path)
		if err != nil {
			return nil, "", fmt.Errorf("opening %s: %w", path, err)
		}
		closers = append(closers, store.Close)
		return store.SnapshotSource(), path, nil
	default:
		return nil, "", fmt.Errorf("%w: %q", domain.ErrUnsupportedDriver, s.Driver)
	}
}

// ensureCorpus builds the corpus and search services on first use.
// A snapshot that cannot be read leaves an empty corpus and a warning.
func ensureCorpus(ctx context.Context) error {
	if searchService != nil && corpusService != nil {
		return nil
	}
	if appSettings == nil {
		return errors.New("settings not loaded")
	}

	source, path, err := openSnapshotSource(appSettings.Snapshot)
	if err != nil {
		return err
	}

	corpus := services.NewCorpusService(source)
	stats := corpus.Bootstrap(ctx)
	logger.Debug("corpus %s: %d videos from %s", stats.Generation, stats.Records, source.Describe())

	corpusService = corpus
	searchService = services.NewSearchService(corpus, appSettings.Search)
	snapshotPath = path
	return nil
}

// closeServices releases stores opened by ensureCorpus.
func closeServices() {
	for _, c := range closers {
		if err := c(); err != nil {
			logger.Warn("closing: %v", err)
		}
	}
	closers = nil
}
