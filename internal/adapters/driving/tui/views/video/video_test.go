package video

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/messages"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

func testDetail() *domain.VideoDetail {
	return &domain.VideoDetail{
		Video: domain.VideoRecord{
			ID:           "abc123",
			Title:        "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】",
			ChannelTitle: "hololive",
			ViewCount:    1200,
			Tags:         []string{"hololive", "TRiNITY"},
			Override: &domain.CustomOverride{
				ManualTitle:            "XOXO",
				ManualArtist:           "TRiNITY",
				JapanesePronunciations: []string{"エクスオクスオ"},
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

func TestNewView(t *testing.T) {
	v := NewView(nil)

	require.NotNil(t, v)
	assert.Nil(t, v.Detail())
	assert.Nil(t, v.Init())
	assert.Contains(t, v.View(), "No video selected")
}

func TestView_VideoLoaded(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(100, 60)

	v, _ = v.Update(messages.VideoLoaded{Detail: testDetail()})

	require.NotNil(t, v.Detail())
	view := v.View()
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "hololive")
	assert.Contains(t, view, "1200")
	assert.Contains(t, view, "artist: TRiNITY")
	assert.Contains(t, view, "readings: エクスオクスオ")
	assert.Contains(t, view, "作詞：someone")
	assert.Contains(t, view, "main title: XOXO")
	assert.Contains(t, view, "- TRiNITY XOXO")
	assert.Contains(t, view, "hololive, TRiNITY")
}

func TestView_VideoLoadedError(t *testing.T) {
	v := NewView(nil)
	v.SetDetail(testDetail())

	v, _ = v.Update(messages.VideoLoaded{Err: errors.New("not found")})

	assert.Nil(t, v.Detail())
	assert.EqualError(t, v.Err(), "not found")
	assert.Contains(t, v.View(), "Error: not found")
}

func TestView_ErrorOccurred(t *testing.T) {
	v := NewView(nil)

	v, _ = v.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	assert.EqualError(t, v.Err(), "boom")
}

func TestView_NoOverrideSection(t *testing.T) {
	detail := testDetail()
	detail.Video.Override = nil
	v := NewView(nil)
	v.SetDimensions(100, 60)
	v.SetDetail(detail)

	assert.NotContains(t, v.View(), "Manual:")
}

func TestView_Scroll(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(80, 10)
	v.SetDetail(testDetail())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, v.ScrollOffset())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, v.ScrollOffset())

	for range 100 {
		v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	}
	assert.Equal(t, v.maxScrollOffset(), v.ScrollOffset())
	assert.Contains(t, v.View(), "[Line")

	v.SetDetail(testDetail())
	assert.Equal(t, 0, v.ScrollOffset())
}

func TestView_EscReturnsToSearch(t *testing.T) {
	v := NewView(nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewSearch}, cmd())
}

func TestView_TinyWindow(t *testing.T) {
	v := NewView(nil)
	v.SetDimensions(2, 2)
	v.SetDetail(testDetail())

	assert.NotPanics(t, func() { _ = v.View() })
}
