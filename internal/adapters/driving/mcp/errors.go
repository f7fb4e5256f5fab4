// Package mcp provides an MCP (Model Context Protocol) server adapter for kioku.
// It lets AI assistants and voice front-ends search the video knowledge base.
package mcp

import "errors"

var (
	// ErrMissingSearchService is returned when the search service is not provided.
	ErrMissingSearchService = errors.New("mcp: search service is required")

	// ErrCorpusUnavailable is returned by corpus tools when no corpus service is wired.
	ErrCorpusUnavailable = errors.New("mcp: corpus service is not available")
)
