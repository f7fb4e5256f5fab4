package domain

import "time"

const unknownDescription = "Unknown"

// SnapshotDriver identifies where the corpus snapshot is read from.
type SnapshotDriver string

// Available snapshot drivers.
const (
	// SnapshotDriverJSON reads a JSON document with a top-level "videos" object.
	SnapshotDriverJSON SnapshotDriver = "json"

	// SnapshotDriverSQLite reads a "videos" table whose columns hold the same JSON sections.
	SnapshotDriverSQLite SnapshotDriver = "sqlite"
)

// IsValid returns true if the driver is recognised.
func (d SnapshotDriver) IsValid() bool {
	switch d {
	case SnapshotDriverJSON, SnapshotDriverSQLite:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (d SnapshotDriver) String() string {
	return string(d)
}

// Description returns a human-readable description of the driver.
func (d SnapshotDriver) Description() string {
	switch d {
	case SnapshotDriverJSON:
		return "JSON snapshot file"
	case SnapshotDriverSQLite:
		return "SQLite database"
	default:
		return unknownDescription
	}
}

// SnapshotSettings configures where the corpus comes from.
type SnapshotSettings struct {
	Driver SnapshotDriver `validate:"required,oneof=json sqlite"`

	// Path is the snapshot file or database. Empty selects the default
	// location inside the config directory.
	Path string
}

// SearchSettings configures the search service.
type SearchSettings struct {
	// DefaultLimit is used when a search does not specify a limit.
	DefaultLimit int `validate:"min=1,max=100"`

	// CacheSize is the number of recent results kept per corpus generation. Zero disables caching.
	CacheSize int `validate:"min=0,max=100000"`
}

// WatchSettings configures snapshot change detection.
type WatchSettings struct {
	Enabled bool

	// Debounce is how long the snapshot must stay unchanged before a reload.
	Debounce time.Duration `validate:"min=0s,max=1m"`
}

// AppSettings is the complete application configuration.
// Validation tags are checked by the settings service.
type AppSettings struct {
	Snapshot SnapshotSettings
	Search   SearchSettings
	Watch    WatchSettings
}

// DefaultAppSettings returns settings with sensible defaults.
// Snapshot.Path is left empty and resolved relative to the config directory.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Snapshot: SnapshotSettings{
			Driver: SnapshotDriverJSON,
		},
		Search: SearchSettings{
			DefaultLimit: DefaultSearchLimit,
			CacheSize:    256,
		},
		Watch: WatchSettings{
			Enabled:  false,
			Debounce: 500 * time.Millisecond,
		},
	}
}

// AllSnapshotDrivers returns all available snapshot drivers.
func AllSnapshotDrivers() []SnapshotDriver {
	return []SnapshotDriver{
		SnapshotDriverJSON,
		SnapshotDriverSQLite,
	}
}
