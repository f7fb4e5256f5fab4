// Package corpus provides the corpus statistics view for the TUI.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/messages"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/styles"
	"github.com/hibiki-labs/kioku/internal/core/domain"
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
)

// ErrNoCorpusService indicates that no corpus service was provided.
var ErrNoCorpusService = errors.New("corpus service is required")

// View shows what was loaded from the snapshot and which records had problems.
type View struct {
	styles        *styles.Styles
	corpusService driving.CorpusService
	ctx           context.Context

	stats     domain.CorpusStats
	loaded    bool
	reloading bool
	notice    string
	err       error

	scrollOffset int
	width        int
	height       int
}

// NewView creates a new corpus view.
func NewView(s *styles.Styles, corpusService driving.CorpusService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:        s,
		corpusService: corpusService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext sets the context for the view.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init loads the current statistics.
func (v *View) Init() tea.Cmd {
	svc := v.corpusService
	return func() tea.Msg {
		if svc == nil {
			return messages.CorpusLoaded{Err: ErrNoCorpusService}
		}
		return messages.CorpusLoaded{Stats: svc.Stats()}
	}
}

// reload rereads the snapshot.
func (v *View) reload() tea.Cmd {
	svc := v.corpusService
	ctx := v.ctx
	return func() tea.Msg {
		if svc == nil {
			return messages.CorpusLoaded{Err: ErrNoCorpusService, Reloaded: true}
		}
		stats, err := svc.Reload(ctx)
		return messages.CorpusLoaded{Stats: stats, Reloaded: true, Err: err}
	}
}

// Update handles messages for the corpus view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.CorpusLoaded:
		v.handleLoaded(msg)
		return v, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			if v.reloading {
				return v, nil
			}
			v.reloading = true
			v.notice = "Reloading..."
			return v, v.reload()
		case "up", "k":
			if v.scrollOffset > 0 {
				v.scrollOffset--
			}
		case "down", "j":
			if v.scrollOffset < len(v.stats.Report.Problems)-1 {
				v.scrollOffset++
			}
		case "esc":
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	return v, nil
}

// handleLoaded applies new statistics. A failed reload keeps the old ones.
func (v *View) handleLoaded(msg messages.CorpusLoaded) {
	if msg.Reloaded {
		v.reloading = false
	}
	if msg.Err != nil {
		v.err = msg.Err
		v.notice = ""
		return
	}

	v.err = nil
	v.stats = msg.Stats
	v.loaded = true
	v.scrollOffset = 0
	v.notice = ""
	if msg.Reloaded {
		v.notice = fmt.Sprintf("Reloaded %d videos", msg.Stats.Records)
	}
}

// View renders the corpus view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Corpus"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", max(min(v.width-4, 60), 0)))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render("Error: " + v.err.Error()))
		b.WriteString("\n\n")
	}

	if !v.loaded {
		b.WriteString(v.styles.Muted.Render("Loading..."))
		b.WriteString("\n\n")
		b.WriteString(v.renderHelp())
		return b.String()
	}

	report := &v.stats.Report
	fields := [][2]string{
		{"Source", report.Source},
		{"Videos", fmt.Sprintf("%d", v.stats.Records)},
		{"Read", fmt.Sprintf("%d", report.Total)},
		{"Skipped", fmt.Sprintf("%d", report.Skipped)},
		{"Degraded", fmt.Sprintf("%d", report.Degraded)},
		{"Loaded at", v.stats.LoadedAt.Format("2006-01-02 15:04:05")},
		{"Generation", v.stats.Generation},
	}
	for _, f := range fields {
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%-11s", f[0]+":")))
		b.WriteString(v.styles.Normal.Render(" " + f[1]))
		b.WriteString("\n")
	}

	if report.HasProblems() {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Problems (%d)", len(report.Problems))))
		b.WriteString("\n")

		visible := max(v.height-len(fields)-10, 1)
		end := min(v.scrollOffset+visible, len(report.Problems))
		for _, p := range report.Problems[v.scrollOffset:end] {
			line := runewidth.Truncate(fmt.Sprintf("  %s: %s", p.VideoID, p.Reason), max(v.width-2, 20), "…")
			b.WriteString(v.styles.Muted.Render(line))
			b.WriteString("\n")
		}
	}

	if v.notice != "" {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render(v.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

// renderHelp renders the help footer.
func (v *View) renderHelp() string {
	return v.styles.Help.Render("[r] reload  [↑/↓] scroll problems  [esc] back")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Stats returns the displayed statistics.
func (v *View) Stats() domain.CorpusStats {
	return v.stats
}

// Reloading reports whether a reload is in flight.
func (v *View) Reloading() bool {
	return v.reloading
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
