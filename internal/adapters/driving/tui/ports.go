// Package tui provides an interactive terminal user interface for kioku.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/hibiki-labs/kioku/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Search provides search capabilities.
	Search driving.SearchService

	// Corpus exposes video details, statistics and reloads.
	Corpus driving.CorpusService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(search driving.SearchService, corpus driving.CorpusService) *Ports {
	return &Ports{
		Search: search,
		Corpus: corpus,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Corpus == nil {
		return ErrMissingCorpusService
	}
	return nil
}
