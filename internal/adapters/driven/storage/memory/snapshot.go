package memory

import (
	"context"
	"sync"

	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
)

// Ensure SnapshotSource implements the interface.
var _ driven.SnapshotSource = (*SnapshotSource)(nil)

// SnapshotSource serves a snapshot held in memory.
// It is used by tests and by callers that decode snapshots themselves.
type SnapshotSource struct {
	mu       sync.RWMutex
	snapshot *domain.Snapshot
	err      error
	loads    int
}

// NewSnapshotSource creates a source that serves the given records.
func NewSnapshotSource(records ...domain.VideoRecord) *SnapshotSource {
	s := &SnapshotSource{}
	s.SetRecords(records...)
	return s
}

// SetRecords replaces the served records.
func (s *SnapshotSource) SetRecords(records ...domain.VideoRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &domain.Snapshot{
		Records: records,
		Report: domain.LoadReport{
			Source: "memory",
			Total:  len(records),
			Loaded: len(records),
		},
	}
	s.err = nil
}

// SetError makes subsequent loads fail with err.
func (s *SnapshotSource) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Load returns the held snapshot.
func (s *SnapshotSource) Load(ctx context.Context) (*domain.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	if s.err != nil {
		return nil, s.err
	}
	snap := *s.snapshot
	snap.Records = append([]domain.VideoRecord(nil), s.snapshot.Records...)
	return &snap, nil
}

// Loads returns how many times Load was called.
func (s *SnapshotSource) Loads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loads
}

// Describe returns "memory".
func (s *SnapshotSource) Describe() string {
	return "memory"
}
