package corpus

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/messages"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

type mockCorpusService struct {
	stats     domain.CorpusStats
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

func (m *mockCorpusService) Replace(_ *domain.Snapshot) domain.CorpusStats { return m.stats }

func (m *mockCorpusService) Get(_ context.Context, id string) (*domain.VideoDetail, error) {
	return nil, domain.ErrNotFound
}

func (m *mockCorpusService) Stats() domain.CorpusStats { return m.stats }

func testStats() domain.CorpusStats {
	return domain.CorpusStats{
		Generation: "gen-1",
		LoadedAt:   time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Records:    4,
		Report: domain.LoadReport{
			Source:   "/home/me/.kioku/videos.json",
			Total:    5,
			Loaded:   4,
			Skipped:  1,
			Degraded: 2,
			Problems: []domain.RecordProblem{
				{VideoID: "bad", Reason: "video is not an object"},
				{VideoID: "v2", Reason: "creative_insight: malformed"},
			},
		},
	}
}

func TestView_InitLoadsStats(t *testing.T) {
	svc := &mockCorpusService{stats: testStats()}
	v := NewView(nil, svc)
	assert.Contains(t, v.View(), "Loading...")

	msg := v.Init()()
	v, _ = v.Update(msg)

	view := v.View()
	assert.Contains(t, view, "/home/me/.kioku/videos.json")
	assert.Contains(t, view, "Problems (2)")
	assert.Contains(t, view, "bad: video is not an object")
	assert.Contains(t, view, "2026-01-02 03:04:05")
	assert.Equal(t, 0, svc.reloads)
}

func TestView_InitWithoutService(t *testing.T) {
	v := NewView(nil, nil)

	v, _ = v.Update(v.Init()())

	assert.ErrorIs(t, v.Err(), ErrNoCorpusService)
}

func TestView_Reload(t *testing.T) {
	svc := &mockCorpusService{stats: testStats()}
	v := NewView(nil, svc)

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	require.NotNil(t, cmd)
	assert.True(t, v.Reloading())

	// A second press while reloading is ignored
	_, again := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Nil(t, again)

	v, _ = v.Update(cmd())

	assert.False(t, v.Reloading())
	assert.Equal(t, 1, svc.reloads)
	assert.Equal(t, "gen-1", v.Stats().Generation)
	assert.Contains(t, v.View(), "Reloaded 4 videos")
}

func TestView_ReloadFailureKeepsStats(t *testing.T) {
	svc := &mockCorpusService{stats: testStats()}
	v := NewView(nil, svc)
	v, _ = v.Update(v.Init()())

	svc.reloadErr = errors.New("snapshot unavailable")
	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	v, _ = v.Update(cmd())

	assert.False(t, v.Reloading())
	assert.EqualError(t, v.Err(), "snapshot unavailable")
	assert.Equal(t, 4, v.Stats().Records)
	assert.Contains(t, v.View(), "Error: snapshot unavailable")
}

func TestView_ScrollProblems(t *testing.T) {
	v := NewView(nil, &mockCorpusService{})
	v, _ = v.Update(messages.CorpusLoaded{Stats: testStats()})

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.scrollOffset)

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.scrollOffset)
}

func TestView_EscGoesToMenu(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())
}
