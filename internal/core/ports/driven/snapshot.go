package driven

import (
	"context"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// SnapshotSource reads a corpus snapshot from storage.
//
// Load decodes every record it can. Malformed records are reported in the
// snapshot's LoadReport rather than failing the whole load; an error is only
// returned when the snapshot cannot be read or decoded at all.
type SnapshotSource interface {
	// Load reads and decodes the snapshot.
	Load(ctx context.Context) (*domain.Snapshot, error)

	// Describe returns a human-readable location, such as a file path.
	Describe() string
}
