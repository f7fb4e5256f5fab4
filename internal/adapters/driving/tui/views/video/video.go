// Package video provides the video details view for the TUI.
package video

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/messages"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/styles"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// View shows one video record and the terms it can be found by.
type View struct {
	styles *styles.Styles

	detail       *domain.VideoDetail
	scrollOffset int
	width        int
	height       int
	err          error
}

// NewView creates a new video details view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles: s,
		width:  80,
		height: 24,
	}
}

// SetDetail sets the video to display.
func (v *View) SetDetail(detail *domain.VideoDetail) {
	v.detail = detail
	v.scrollOffset = 0
	v.err = nil
}

// SetError sets an error to display.
func (v *View) SetError(err error) {
	v.err = err
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the video details view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.VideoLoaded:
		if msg.Err != nil {
			v.detail = nil
			v.err = msg.Err
			return v, nil
		}
		v.SetDetail(msg.Detail)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		return v, nil
	}

	return v, nil
}

// handleKeyMsg handles key presses.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.scrollOffset > 0 {
			v.scrollOffset--
		}
	case "down", "j":
		if v.scrollOffset < v.maxScrollOffset() {
			v.scrollOffset++
		}
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewSearch}
		}
	}

	return v, nil
}

// visibleLines returns the number of lines that can be displayed.
func (v *View) visibleLines() int {
	// Reserve lines for title, separator, help, and padding
	return max(v.height-6, 1)
}

// maxScrollOffset returns the maximum scroll offset.
func (v *View) maxScrollOffset() int {
	return max(len(v.buildContent())-v.visibleLines(), 0)
}

// buildContent builds the content lines for display.
func (v *View) buildContent() []string {
	if v.detail == nil {
		return nil
	}

	rec := &v.detail.Video
	terms := &v.detail.Terms

	lines := []string{
		v.formatField("ID", rec.ID),
		v.formatField("Title", rec.Title),
		v.formatField("Channel", rec.ChannelTitle),
		v.formatField("Views", fmt.Sprintf("%d", rec.ViewCount)),
		v.formatField("Likes", fmt.Sprintf("%d", rec.LikeCount)),
	}

	if !rec.Override.IsEmpty() {
		lines = append(lines, "", "Manual:")
		lines = appendListField(lines, "title", []string{rec.Override.Title()})
		lines = appendListField(lines, "artist", []string{rec.Override.Artist()})
		lines = appendListField(lines, "readings", rec.Override.TitleReadings())
		lines = appendListField(lines, "artist kana", rec.Override.ArtistReadings())
		lines = appendListField(lines, "keywords", rec.Override.Keywords())
	}

	if creators := rec.CreatorNames(); len(creators) > 0 {
		lines = append(lines, "", "Creators:")
		for _, c := range creators {
			lines = append(lines, "  "+c)
		}
	}

	lines = append(lines, "", "Terms:",
		"  normalised: "+terms.NormalisedTitle,
		"  main title: "+terms.MainTitle)
	for _, c := range terms.Candidates {
		lines = append(lines, "  - "+c)
	}

	if len(rec.Tags) > 0 {
		lines = append(lines, "", "Tags:", "  "+strings.Join(rec.Tags, ", "))
	}

	return lines
}

// appendListField adds an indented "label: a, b" line when values are present.
func appendListField(lines []string, label string, values []string) []string {
	joined := strings.Join(values, ", ")
	if joined == "" {
		return lines
	}
	return append(lines, fmt.Sprintf("  %s: %s", label, joined))
}

// formatField formats a field for display.
func (v *View) formatField(label, value string) string {
	return fmt.Sprintf("%-10s %s", label+":", value)
}

// View renders the video details view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Video"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	if v.detail == nil {
		b.WriteString(v.styles.Muted.Render("No video selected"))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	lines := v.buildContent()
	visible := v.visibleLines()
	end := min(v.scrollOffset+visible, len(lines))
	for _, line := range lines[v.scrollOffset:end] {
		b.WriteString(v.renderLine(line))
		b.WriteString("\n")
	}

	if len(lines) > visible {
		b.WriteString("\n")
		b.WriteString(v.styles.Muted.Render(fmt.Sprintf("  [Line %d-%d of %d]",
			v.scrollOffset+1, end, len(lines))))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderLine styles one content line by its shape.
func (v *View) renderLine(line string) string {
	line = runewidth.Truncate(line, max(v.width-2, 20), "…")

	switch {
	case strings.HasSuffix(line, ":") && !strings.HasPrefix(line, " "):
		return v.styles.Subtitle.Render(line)
	case strings.HasPrefix(line, "  - "):
		return v.styles.Match.Render(line)
	case strings.HasPrefix(line, "  "):
		return v.styles.Muted.Render(line)
	}

	label, value, ok := strings.Cut(line, ":")
	if !ok {
		return v.styles.Normal.Render(line)
	}
	return v.styles.Subtitle.Render(label+":") + v.styles.Normal.Render(value)
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[↑/↓] scroll  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Detail returns the displayed video.
func (v *View) Detail() *domain.VideoDetail {
	return v.detail
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}

// ScrollOffset returns the first visible line.
func (v *View) ScrollOffset() int {
	return v.scrollOffset
}
