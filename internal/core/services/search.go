package services

import (
	"context"
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/hibiki-labs/kioku/internal/core/corpus"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
	"github.com/hibiki-labs/kioku/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// CorpusProvider hands out the corpus a search should run against.
type CorpusProvider interface {
	Current() *corpus.Corpus
}

// cacheKey identifies one search against one corpus build.
type cacheKey struct {
	generation string
	query      string
	limit      int
}

// SearchService scores every record in the current corpus against a query.
type SearchService struct {
	corpora      CorpusProvider
	defaultLimit int
	cache        *lru.Cache[cacheKey, []domain.SearchResult]
}

// NewSearchService creates a new search service.
// A non-positive CacheSize disables result caching.
func NewSearchService(corpora CorpusProvider, settings domain.SearchSettings) *SearchService {
	s := &SearchService{
		corpora:      corpora,
		defaultLimit: settings.DefaultLimit,
	}
	if s.defaultLimit <= 0 {
		s.defaultLimit = domain.DefaultSearchLimit
	}
	if settings.CacheSize > 0 {
		cache, err := lru.New[cacheKey, []domain.SearchResult](settings.CacheSize)
		if err != nil {
			logger.Warn("Search cache disabled: %v", err)
		} else {
			s.cache = cache
		}
	}
	return s
}

// Search ranks the current corpus against query.
// It only fails when ctx is already done.
func (s *SearchService) Search(
	ctx context.Context, query string, opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}

	logger.Section("Search Execution")
	logger.Debug("Query: %q", query)

	q := prepareQuery(query)
	if q.text == "" {
		logger.Debug("Empty query, returning no results")
		return []domain.SearchResult{}, nil
	}
	logger.Debug("Folded query: %q, tokens: %v", q.text, q.tokens)

	limit := s.effectiveLimit(opts.Limit)
	c := s.corpora.Current()
	key := cacheKey{generation: c.Generation(), query: q.text, limit: limit}

	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			logger.Debug("Cache hit for generation %s", key.generation)
			return slices.Clone(cached), nil
		}
	}

	logger.Debug("Scoring %d records (limit %d)", c.Len(), limit)
	var scored []domain.SearchResult
	for entry := range c.Entries() {
		score, terms := scoreEntry(q, entry)
		if score == 0 {
			continue
		}
		scored = append(scored, domain.SearchResult{
			VideoID:      entry.Record.ID,
			Score:        score,
			MatchedTerms: terms,
			Video:        entry.Record,
		})
	}
	logger.Debug("Matched records: %d", len(scored))

	results := Select(scored, limit)
	logger.Info("Final results: %d", len(results))

	if s.cache != nil {
		s.cache.Add(key, slices.Clone(results))
	}
	return results, nil
}

// effectiveLimit resolves zero to the default and any negative value to unlimited.
func (s *SearchService) effectiveLimit(limit int) int {
	switch {
	case limit == 0:
		return s.defaultLimit
	case limit < 0:
		return domain.Unlimited
	default:
		return limit
	}
}
