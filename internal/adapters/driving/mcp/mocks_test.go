package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	results   []domain.SearchResult
	err       error
	lastQuery string
	lastOpts  domain.SearchOptions
}

func (m *mockSearchService) Search(
	_ context.Context,
	query string,
	opts domain.SearchOptions,
) ([]domain.SearchResult, error) {
	m.lastQuery = query
	m.lastOpts = opts
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}

// mockCorpusService is a mock implementation of driving.CorpusService.
type mockCorpusService struct {
	details   map[string]*domain.VideoDetail
	stats     domain.CorpusStats
	getErr    error
	reloadErr error
	reloads   int
}

func (m *mockCorpusService) Reload(_ context.Context) (domain.CorpusStats, error) {
	m.reloads++
	if m.reloadErr != nil {
		return domain.CorpusStats{}, m.reloadErr
	}
	return m.stats, nil
}

func (m *mockCorpusService) Replace(_ *domain.Snapshot) domain.CorpusStats {
	return m.stats
}

func (m *mockCorpusService) Get(_ context.Context, videoID string) (*domain.VideoDetail, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	detail, ok := m.details[videoID]
	if !ok {
		return nil, fmt.Errorf("video %q: %w", videoID, domain.ErrNotFound)
	}
	return detail, nil
}

func (m *mockCorpusService) Stats() domain.CorpusStats {
	return m.stats
}

func testDetail() *domain.VideoDetail {
	return &domain.VideoDetail{
		Video: domain.VideoRecord{
			ID:           "abc123",
			Title:        "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】",
			ChannelTitle: "hololive",
			ViewCount:    1200,
			Override: &domain.CustomOverride{
				ManualTitle:  "XOXO",
				ManualArtist: "TRiNITY",
			},
			Insight: &domain.CreativeInsight{Creators: []string{"作詞：someone"}},
		},
		Terms: domain.SearchTerms{
			NormalisedTitle: "TRiNITY XOXO",
			MainTitle:       "XOXO",
			Candidates:      []string{"TRiNITY XOXO", "XOXO"},
		},
	}
}

func testStats() domain.CorpusStats {
	return domain.CorpusStats{
		Generation: "gen-1",
		LoadedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Records:    4,
		Report: domain.LoadReport{
			Source:   "/tmp/videos.json",
			Total:    5,
			Loaded:   4,
			Skipped:  1,
			Degraded: 1,
			Problems: []domain.RecordProblem{{VideoID: "bad", Reason: "video is not an object"}},
		},
	}
}
