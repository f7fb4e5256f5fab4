package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

func TestScore_TrinityFixture(t *testing.T) {
	entry := entryFor(t, trinityRecord())

	tests := []struct {
		name  string
		query string
		want  int
	}{
		// manual_title 50 + term 20 + raw title 10 + token in term 6 + token in title 5
		{"manual title exact", "XOXO", 91},
		{"lower case", "xoxo", 91},
		{"full width", "ＸＯＸＯ", 91},
		{"artist pronunciation exact", "トリニティー", 45},
		{"half width artist pronunciation", "ﾄﾘﾆﾃｨｰ", 45},
		{"japanese pronunciation exact", "エクスオクスオ", 50},
		{"search keyword exact", "ばちゃうた", 35},
		// keyword partial 15 + channel 8 + token in channel 4
		{"signals are summed", "にじさんじ", 27},
		// manual_title partial 30 + artist reading partial 22 + term in query 12 + token 6 + 5
		{"multi word query", "XOXO トリニティ", 75},
		{"no match", "zzzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, _ := Score(tt.query, entry)
			assert.Equal(t, tt.want, score)
		})
	}
}

func TestScore_MatchedTermsInCandidateOrder(t *testing.T) {
	entry := entryFor(t, trinityRecord())

	_, terms := Score("XOXO", entry)
	assert.Equal(t, []string{"TRiNITY XOXO", "XOXO"}, terms)

	_, terms = Score("XOXO トリニティ", entry)
	assert.Equal(t, []string{"TRiNITY XOXO", "XOXO"}, terms)

	_, terms = Score("エクスオクスオ", entry)
	assert.Empty(t, terms)
}

func TestScore_GenericTitleSignals(t *testing.T) {
	entry := entryFor(t, genericRecord())

	// term exact 20 + raw title 10 + token in term 6 + token in title 5
	score, terms := Score("XOXO", entry)

	assert.Equal(t, 41, score)
	assert.Equal(t, []string{"XOXO dance practice", "XOXO"}, terms)
}

func TestScore_CreatorAndDescription(t *testing.T) {
	entry := entryFor(t, yoruRecord())

	// creator 9 + token in creator 4
	score, _ := Score("ikura", entry)
	assert.Equal(t, 13, score)

	// description 3 only
	score, _ = Score("single", entry)
	assert.Equal(t, 3, score)
}

func TestScore_EmptyFieldsNeverMatch(t *testing.T) {
	entry := entryFor(t, domain.VideoRecord{
		ID:       "bare",
		Title:    "abc",
		Override: &domain.CustomOverride{ManualTitle: "", SearchKeywords: []string{""}},
		Insight:  &domain.CreativeInsight{Creators: []string{""}},
	})

	score, _ := Score("zz", entry)
	assert.Zero(t, score)
}

func TestScore_ListSignalCountsOnce(t *testing.T) {
	entry := entryFor(t, domain.VideoRecord{
		ID: "dup",
		Override: &domain.CustomOverride{
			SearchKeywords: []string{"うた", "うた", "うたうた"},
		},
	})

	// exact wins over the partial match on "うたうた"; duplicates add nothing
	score, _ := Score("うた", entry)
	assert.Equal(t, 35, score)
}

func TestScore_ShortTokensIgnored(t *testing.T) {
	entry := entryFor(t, domain.VideoRecord{ID: "x", Title: "a song"})

	// "a" is below the token length; the whole query still matches the title.
	score, _ := Score("a", entry)
	assert.Equal(t, 10+15, score)
}

func TestScore_EmptyQuery(t *testing.T) {
	entry := entryFor(t, trinityRecord())

	score, terms := Score("   ", entry)
	assert.Zero(t, score)
	assert.Nil(t, terms)
}

func TestScore_NilEntry(t *testing.T) {
	score, _ := Score("xoxo", nil)
	assert.Zero(t, score)
}
