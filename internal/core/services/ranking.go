package services

import (
	"cmp"
	"slices"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// Select drops zero scores, orders by score descending then video ID
// ascending, and keeps the first limit results. A negative limit keeps all.
func Select(scored []domain.SearchResult, limit int) []domain.SearchResult {
	results := make([]domain.SearchResult, 0, len(scored))
	for _, r := range scored {
		if r.Score > 0 {
			results = append(results, r)
		}
	}

	slices.SortFunc(results, func(a, b domain.SearchResult) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.VideoID, b.VideoID)
	})

	if limit >= 0 && len(results) > limit {
		results = results[:limit]
	}
	return results
}
