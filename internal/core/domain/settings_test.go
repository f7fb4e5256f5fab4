package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotDriver_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		driver   SnapshotDriver
		expected bool
	}{
		{name: "json is valid", driver: SnapshotDriverJSON, expected: true},
		{name: "sqlite is valid", driver: SnapshotDriverSQLite, expected: true},
		{name: "empty string is invalid", driver: SnapshotDriver(""), expected: false},
		{name: "unknown driver is invalid", driver: SnapshotDriver("csv"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.driver.IsValid())
		})
	}
}

func TestSnapshotDriver_Description(t *testing.T) {
	assert.Equal(t, "JSON snapshot file", SnapshotDriverJSON.Description())
	assert.Equal(t, "SQLite database", SnapshotDriverSQLite.Description())
	assert.Equal(t, "Unknown", SnapshotDriver("csv").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, SnapshotDriverJSON, s.Snapshot.Driver)
	assert.Empty(t, s.Snapshot.Path)
	assert.Equal(t, DefaultSearchLimit, s.Search.DefaultLimit)
	assert.Equal(t, 256, s.Search.CacheSize)
	assert.False(t, s.Watch.Enabled)
	assert.Equal(t, 500*time.Millisecond, s.Watch.Debounce)
}

func TestAllSnapshotDrivers(t *testing.T) {
	for _, d := range AllSnapshotDrivers() {
		assert.True(t, d.IsValid(), "driver %s should be valid", d)
	}
}
