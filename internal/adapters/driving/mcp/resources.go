package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for kioku resources.
	uriScheme = "kioku://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource describing the corpus.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "corpus",
		Name:        "corpus",
		Description: "Statistics and load problems of the video knowledge base",
		MIMEType:    "application/json",
	}, s.handleCorpusResource)

	// Template for single videos.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "videos/{videoId}",
		Name:        "video",
		Description: "A video record with its searchable terms",
		MIMEType:    "application/json",
	}, s.handleVideoResource)
}

// handleCorpusResource returns corpus statistics.
func (s *Server) handleCorpusResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return jsonResource(req.Params.URI, statsOutput(s.ports.Corpus.Stats()))
}

// handleVideoResource returns one video.
func (s *Server) handleVideoResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Corpus == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	// Extract videoId from URI: kioku://videos/{videoId}
	videoID := extractVideoID(req.Params.URI)
	if videoID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	detail, err := s.ports.Corpus.Get(ctx, videoID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("getting video: %w", err)
	}

	return jsonResource(req.Params.URI, videoOutput(detail))
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractVideoID extracts the video ID from a URI like kioku://videos/{videoId}.
func extractVideoID(uri string) string {
	const prefix = uriScheme + "videos/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
