package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/messages"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/styles"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/views/corpus"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/views/menu"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/views/search"
	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui/views/video"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView   *menu.View
	searchView *search.View
	videoView  *video.View
	corpusView *corpus.View

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		menuView:    menu.NewView(s),
		searchView:  search.NewView(s, nil, ports.Search, 0),
		videoView:   video.NewView(s),
		corpusView:  corpus.NewView(s, ports.Corpus),
		currentView: messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.searchView.WithContext(ctx)
	a.corpusView.WithContext(ctx)
	return a
}

// WithSearchLimit sets how many results a search shows. Zero uses the service default.
func (a *App) WithSearchLimit(limit int) *App {
	a.searchView = search.NewView(a.styles, nil, a.ports.Search, limit).WithContext(a.ctx)
	if a.ready {
		a.searchView.SetDimensions(a.width, a.height)
	}
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("kioku"),
		a.corpusView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, a.forwardKey(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewSearch:
			a.searchView.Reset()
			return a, a.searchView.Init()
		case messages.ViewCorpus:
			return a, a.corpusView.Init()
		case messages.ViewMenu, messages.ViewVideo, messages.ViewHelp:
		}
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		a.err = msg.Err
		return a, cmd

	case messages.VideoSelected:
		a.currentView = messages.ViewVideo
		return a, a.loadVideo(msg.VideoID)

	case messages.VideoLoaded:
		a.videoView, cmd = a.videoView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
		}
		return a, cmd

	case messages.CorpusLoaded:
		a.corpusView, cmd = a.corpusView.Update(msg)
		if msg.Err != nil {
			a.err = msg.Err
			return a, cmd
		}
		a.menuView.SetCorpusSize(msg.Stats.Records)
		a.searchView.SetCorpusSize(msg.Stats.Records)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		switch a.currentView {
		case messages.ViewSearch:
			a.searchView, cmd = a.searchView.Update(msg)
		case messages.ViewVideo:
			a.videoView, cmd = a.videoView.Update(msg)
		case messages.ViewMenu, messages.ViewCorpus, messages.ViewHelp:
		}
		return a, cmd

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blink) to the search input
	if a.currentView == messages.ViewSearch {
		a.searchView, cmd = a.searchView.Update(msg)
	}
	return a, cmd
}

// forwardKey sends a key press to the active view.
func (a *App) forwardKey(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewVideo:
		a.videoView, cmd = a.videoView.Update(msg)
	case messages.ViewCorpus:
		a.corpusView, cmd = a.corpusView.Update(msg)
	case messages.ViewHelp:
		if msg.Type == tea.KeyEsc {
			a.currentView = messages.ViewMenu
		}
	}
	return cmd
}

// loadVideo fetches a video with its terms.
func (a *App) loadVideo(videoID string) tea.Cmd {
	ctx := a.ctx
	svc := a.ports.Corpus
	return func() tea.Msg {
		detail, err := svc.Get(ctx, videoID)
		return messages.VideoLoaded{Detail: detail, Err: err}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewSearch:
		return a.searchView.View()
	case messages.ViewVideo:
		return a.videoView.View()
	case messages.ViewCorpus:
		return a.corpusView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	case messages.ViewMenu:
	}
	return a.menuView.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  /           Search
  q           Quit

Search:
  (type)      Title, artist, reading or keyword
  enter       Submit search

Results:
  j/k, ↑/↓    Navigate results
  enter       Show video and its search terms
  n, /        New search

Corpus:
  r           Reload the snapshot

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// Query returns the current search query.
func (a *App) Query() string {
	return a.searchView.Query()
}

// Results returns the current search results.
func (a *App) Results() []domain.SearchResult {
	return a.searchView.Results()
}

// SelectedIndex returns the currently selected result index.
func (a *App) SelectedIndex() int {
	return a.searchView.SelectedIndex()
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.searchView.SetDimensions(width, height)
	a.videoView.SetDimensions(width, height)
	a.corpusView.SetDimensions(width, height)
}
