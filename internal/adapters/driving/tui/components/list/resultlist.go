// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/styles"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// linesPerResult is the number of lines a rendered result occupies.
const linesPerResult = 2

// ResultList displays search results in a navigable list.
type ResultList struct {
	results  []domain.SearchResult
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewResultList creates a new result list component.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ResultList{
		results:  nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the result list.
func (r *ResultList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the result list.
func (r *ResultList) View() string {
	if len(r.results) == 0 {
		return r.styles.Muted.Render("No results")
	}

	lines := make([]string, 0, len(r.results)*linesPerResult+2)

	// Header
	header := r.styles.Subtitle.Render(fmt.Sprintf("Results (%d)", len(r.results)))
	lines = append(lines, header, "")

	start, end := r.visibleRange()
	for i := start; i < end; i++ {
		lines = append(lines, r.renderResult(i, &r.results[i]))
	}

	return strings.Join(lines, "\n")
}

// visibleRange returns the window of results that fits the height,
// scrolled so the selection stays visible.
func (r *ResultList) visibleRange() (int, int) {
	visibleCount := max((r.height-2)/linesPerResult, 1)

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.results))
	return start, end
}

// renderResult formats one result: display title and score, then channel
// and the terms that matched.
func (r *ResultList) renderResult(index int, result *domain.SearchResult) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	title := result.Video.DisplayTitle()
	if title == "" {
		title = result.VideoID
	}

	maxTitleWidth := max(r.width-12, 10)
	title = runewidth.FillRight(runewidth.Truncate(title, maxTitleWidth, "…"), maxTitleWidth)

	score := r.styles.Score.Render(fmt.Sprintf("%d", result.Score))

	var titleLine string
	if index == r.selected {
		titleLine = r.styles.Selected.Render(indicator+title) + " " + score
	} else {
		titleLine = r.styles.Normal.Render(indicator+title) + " " + score
	}

	detail := result.Video.ChannelTitle
	if len(result.MatchedTerms) > 0 {
		matched := r.styles.Match.Render(strings.Join(result.MatchedTerms, ", "))
		if detail != "" {
			detail = r.styles.Muted.Render(runewidth.Truncate(detail, max(r.width/3, 10), "…")+"  ") + matched
		} else {
			detail = matched
		}
	} else {
		detail = r.styles.Muted.Render(detail)
	}

	return titleLine + "\n    " + detail
}

// SetResults updates the result list.
func (r *ResultList) SetResults(results []domain.SearchResult) {
	r.results = results
	r.selected = 0
}

// Results returns the current results.
func (r *ResultList) Results() []domain.SearchResult {
	return r.results
}

// Selected returns the index of the selected result.
func (r *ResultList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ResultList) SetSelected(index int) {
	if index >= 0 && index < len(r.results) {
		r.selected = index
	}
}

// SelectedResult returns the currently selected result, or nil if none.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if len(r.results) == 0 || r.selected < 0 || r.selected >= len(r.results) {
		return nil
	}
	return &r.results[r.selected]
}

// MoveUp moves selection up.
func (r *ResultList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ResultList) MoveDown() {
	if r.selected < len(r.results)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ResultList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Width returns the current width.
func (r *ResultList) Width() int {
	return r.width
}

// Height returns the current height.
func (r *ResultList) Height() int {
	return r.height
}

// Count returns the number of results.
func (r *ResultList) Count() int {
	return len(r.results)
}

// IsEmpty returns whether the list is empty.
func (r *ResultList) IsEmpty() bool {
	return len(r.results) == 0
}
