// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewSearch is the search input and results view.
	ViewSearch
	// ViewVideo shows one video and its searchable terms.
	ViewVideo
	// ViewCorpus shows corpus statistics and load problems.
	ViewCorpus
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewSearch:
		return "search"
	case ViewVideo:
		return "video"
	case ViewCorpus:
		return "corpus"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// VideoSelected signals a result was chosen for the detail view.
type VideoSelected struct {
	VideoID string
}

// VideoLoaded carries a video and its terms.
type VideoLoaded struct {
	Detail *domain.VideoDetail
	Err    error
}

// CorpusLoaded carries corpus statistics, after a reload when Reloaded is set.
type CorpusLoaded struct {
	Stats    domain.CorpusStats
	Reloaded bool
	Err      error
}
