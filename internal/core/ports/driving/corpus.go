package driving

import (
	"context"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// CorpusService owns the corpus that searches run against.
type CorpusService interface {
	// Reload rebuilds the corpus from the configured snapshot source.
	// On failure the previous corpus stays in place and the error is returned.
	Reload(ctx context.Context) (domain.CorpusStats, error)

	// Replace builds a corpus from an already decoded snapshot and swaps it in.
	Replace(snapshot *domain.Snapshot) domain.CorpusStats

	// Get returns a record with its derived search terms.
	// Returns domain.ErrNotFound if the ID is not in the corpus.
	Get(ctx context.Context, videoID string) (*domain.VideoDetail, error)

	// Stats describes the current corpus.
	Stats() domain.CorpusStats
}
