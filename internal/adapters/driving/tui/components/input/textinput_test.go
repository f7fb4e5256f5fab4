package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/styles"
)

func TestNewSearchInput(t *testing.T) {
	input := NewSearchInput(styles.DefaultStyles())

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
}

func TestNewSearchInput_NilStyles(t *testing.T) {
	input := NewSearchInput(nil)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestSearchInput_Init(t *testing.T) {
	input := NewSearchInput(nil)

	assert.NotNil(t, input.Init())
}

func TestSearchInput_TypesRunes(t *testing.T) {
	input := NewSearchInput(nil)

	input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("夜に")})
	input, _ = input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("駆ける")})

	assert.Equal(t, "夜に駆ける", input.Value())
}

func TestSearchInput_SetValueAndReset(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetValue("XOXO")
	assert.Equal(t, "XOXO", input.Value())

	input.Reset()
	assert.Equal(t, "", input.Value())
}

func TestSearchInput_FocusBlur(t *testing.T) {
	input := NewSearchInput(nil)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestSearchInput_SetWidth(t *testing.T) {
	input := NewSearchInput(nil)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 86, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}

func TestSearchInput_View(t *testing.T) {
	input := NewSearchInput(nil)
	input.SetValue("YOASOBI")

	view := input.View()

	assert.Contains(t, view, "Search")
	assert.Contains(t, view, "YOASOBI")
}
