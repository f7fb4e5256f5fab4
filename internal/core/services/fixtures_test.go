package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hibiki-labs/kioku/internal/adapters/driven/storage/memory"
	"github.com/hibiki-labs/kioku/internal/core/corpus"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

const trinityTitle = "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】"

func trinityRecord() domain.VideoRecord {
	return domain.VideoRecord{
		ID:           "trinity01",
		Title:        trinityTitle,
		ChannelTitle: "にじさんじ",
		Override: &domain.CustomOverride{
			ManualTitle:            "XOXO",
			ManualArtist:           "TRiNITY",
			JapanesePronunciations: []string{"エックスオーエックスオー", "エクスオクスオ"},
			ArtistPronunciations:   []string{"トリニティ", "トリニティー"},
			SearchKeywords:         []string{"ばちゃうた", "にじさんじ音楽"},
		},
	}
}

func yoruRecord() domain.VideoRecord {
	return domain.VideoRecord{
		ID:           "yoru01",
		Title:        "夜に駆ける／YOASOBI",
		ChannelTitle: "Ayase / YOASOBI",
		Description:  "YOASOBI 1st single",
		Override: &domain.CustomOverride{
			JapanesePronunciations: []string{"ヨルニカケル"},
		},
		Insight: &domain.CreativeInsight{Creators: []string{"Ayase", "ikura"}},
	}
}

func genericRecord() domain.VideoRecord {
	return domain.VideoRecord{
		ID:           "generic01",
		Title:        "XOXO dance practice",
		ChannelTitle: "Dance Studio",
	}
}

func fixtureRecords() []domain.VideoRecord {
	return []domain.VideoRecord{trinityRecord(), yoruRecord(), genericRecord()}
}

// staticCorpus is a CorpusProvider over a fixed corpus.
type staticCorpus struct {
	c *corpus.Corpus
}

func (s staticCorpus) Current() *corpus.Corpus {
	return s.c
}

func newTestSearch(records ...domain.VideoRecord) *SearchService {
	c := corpus.New(&domain.Snapshot{Records: records})
	return NewSearchService(staticCorpus{c: c}, domain.DefaultAppSettings().Search)
}

func newTestCorpusService(t *testing.T, records ...domain.VideoRecord) (*CorpusService, *memory.SnapshotSource) {
	t.Helper()
	src := memory.NewSnapshotSource(records...)
	svc := NewCorpusService(src)
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	return svc, src
}

func entryFor(t *testing.T, rec domain.VideoRecord) *corpus.Entry {
	t.Helper()
	c := corpus.New(&domain.Snapshot{Records: []domain.VideoRecord{rec}})
	e, ok := c.Entry(rec.ID)
	require.True(t, ok)
	return e
}

func resultIDs(results []domain.SearchResult) []string {
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.VideoID
	}
	return ids
}
