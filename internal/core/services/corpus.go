package services

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/hibiki-labs/kioku/internal/core/corpus"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driven"
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
	"github.com/hibiki-labs/kioku/internal/logger"
)

// Ensure CorpusService implements the interfaces.
var (
	_ driving.CorpusService = (*CorpusService)(nil)
	_ CorpusProvider        = (*CorpusService)(nil)
)

// CorpusService owns the current corpus and swaps in new builds.
// Readers never lock; reloads are serialised.
type CorpusService struct {
	source  driven.SnapshotSource
	current atomic.Pointer[corpus.Corpus]
	reload  sync.Mutex
}

// NewCorpusService creates a corpus service that starts with an empty corpus.
// The source may be nil when snapshots are only supplied through Replace.
func NewCorpusService(source driven.SnapshotSource) *CorpusService {
	s := &CorpusService{source: source}
	s.current.Store(corpus.Empty())
	return s
}

// Current returns the corpus searches should use.
func (s *CorpusService) Current() *corpus.Corpus {
	return s.current.Load()
}

// Bootstrap performs the initial load. A missing or unreadable snapshot is
// not fatal: the service keeps its empty corpus and logs a warning.
func (s *CorpusService) Bootstrap(ctx context.Context) domain.CorpusStats {
	stats, err := s.Reload(ctx)
	if err != nil {
		logger.Warn("Starting with an empty corpus: %v", err)
		return s.Stats()
	}
	return stats
}

// Reload rebuilds the corpus from the snapshot source.
// On failure the previous corpus remains current.
func (s *CorpusService) Reload(ctx context.Context) (domain.CorpusStats, error) {
	if s.source == nil {
		return s.Stats(), fmt.Errorf("reload corpus: %w", domain.ErrSnapshotUnavailable)
	}

	s.reload.Lock()
	defer s.reload.Unlock()

	logger.Debug("Loading snapshot from %s", s.source.Describe())
	snapshot, err := s.source.Load(ctx)
	if err != nil {
		return s.Stats(), fmt.Errorf("reload corpus from %s: %w", s.source.Describe(), err)
	}
	return s.swap(snapshot), nil
}

// Replace builds a corpus from snapshot and makes it current.
func (s *CorpusService) Replace(snapshot *domain.Snapshot) domain.CorpusStats {
	s.reload.Lock()
	defer s.reload.Unlock()
	return s.swap(snapshot)
}

func (s *CorpusService) swap(snapshot *domain.Snapshot) domain.CorpusStats {
	next := corpus.New(snapshot)
	prev := s.current.Swap(next)

	stats := next.Stats()
	logger.Info("Corpus %s loaded: %d records (was %d)", stats.Generation, stats.Records, prev.Len())
	if stats.Report.HasProblems() {
		logger.Warn("Snapshot %s: %d skipped, %d degraded",
			stats.Report.Source, stats.Report.Skipped, stats.Report.Degraded)
		for _, p := range stats.Report.Problems {
			logger.Debug("  %s: %s", p.VideoID, p.Reason)
		}
	}
	return stats
}

// Get returns a record and its derived terms.
func (s *CorpusService) Get(ctx context.Context, videoID string) (*domain.VideoDetail, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry, ok := s.Current().Entry(videoID)
	if !ok {
		return nil, fmt.Errorf("video %q: %w", videoID, domain.ErrNotFound)
	}
	return &domain.VideoDetail{Video: entry.Record, Terms: entry.Terms}, nil
}

// Stats describes the current corpus.
func (s *CorpusService) Stats() domain.CorpusStats {
	return s.Current().Stats()
}
