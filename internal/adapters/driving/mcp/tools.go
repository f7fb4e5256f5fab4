package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

// SearchInput is the input schema for the search_videos tool.
type SearchInput struct {
	Query string `json:"query" jsonschema:"what the user asked for, e.g. a song title, artist or reading"`
	Limit int    `json:"limit,omitempty" jsonschema:"maximum number of results (default 5, -1 for all)"`
}

// SearchOutput is the output schema for the search_videos tool.
type SearchOutput struct {
	Results []SearchResultOutput `json:"results"`
	Count   int                  `json:"count"`
}

// SearchResultOutput represents a single search result.
type SearchResultOutput struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	DisplayTitle string   `json:"display_title"`
	Channel      string   `json:"channel,omitempty"`
	URL          string   `json:"url"`
	Score        int      `json:"score"`
	MatchedTerms []string `json:"matched_terms,omitempty"`
}

// VideoInput is the input schema for the get_video tool.
type VideoInput struct {
	VideoID string `json:"video_id" jsonschema:"the YouTube video ID"`
}

// VideoOutput describes one video and the terms it can be found by.
type VideoOutput struct {
	VideoID         string   `json:"video_id"`
	Title           string   `json:"title"`
	Channel         string   `json:"channel,omitempty"`
	Description     string   `json:"description,omitempty"`
	URL             string   `json:"url"`
	ViewCount       int64    `json:"view_count"`
	ManualTitle     string   `json:"manual_title,omitempty"`
	ManualArtist    string   `json:"manual_artist,omitempty"`
	Creators        []string `json:"creators,omitempty"`
	NormalisedTitle string   `json:"normalised_title"`
	MainTitle       string   `json:"main_title"`
	SearchableTerms []string `json:"searchable_terms"`
}

// StatsInput is the (empty) input schema for corpus tools.
type StatsInput struct{}

// StatsOutput describes the corpus being searched.
type StatsOutput struct {
	Generation string   `json:"generation"`
	LoadedAt   string   `json:"loaded_at"`
	Records    int      `json:"records"`
	Source     string   `json:"source,omitempty"`
	Skipped    int      `json:"skipped"`
	Degraded   int      `json:"degraded"`
	Problems   []string `json:"problems,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_videos",
		Description: "Find videos in the knowledge base by title, artist, reading or keyword",
	}, s.handleSearch)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_video",
		Description: "Get one video with the terms it can be searched by",
	}, s.handleGetVideo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "corpus_stats",
		Description: "Describe the loaded knowledge base and any records that failed to load",
	}, s.handleStats)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reload_corpus",
		Description: "Reload the knowledge base from its snapshot after it was edited",
	}, s.handleReload)
}

// handleSearch handles the search_videos tool invocation.
func (s *Server) handleSearch(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchInput,
) (*mcp.CallToolResult, SearchOutput, error) {
	opts := domain.SearchOptions{Limit: input.Limit}
	results, err := s.ports.Search.Search(ctx, input.Query, opts)
	if err != nil {
		return nil, SearchOutput{}, err
	}

	output := SearchOutput{
		Results: make([]SearchResultOutput, len(results)),
		Count:   len(results),
	}

	for i := range results {
		video := &results[i].Video
		output.Results[i] = SearchResultOutput{
			VideoID:      results[i].VideoID,
			Title:        video.Title,
			DisplayTitle: video.DisplayTitle(),
			Channel:      video.ChannelTitle,
			URL:          watchURL(results[i].VideoID),
			Score:        results[i].Score,
			MatchedTerms: results[i].MatchedTerms,
		}
	}

	return nil, output, nil
}

// handleGetVideo handles the get_video tool invocation.
func (s *Server) handleGetVideo(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input VideoInput,
) (*mcp.CallToolResult, VideoOutput, error) {
	if s.ports.Corpus == nil {
		return nil, VideoOutput{}, ErrCorpusUnavailable
	}

	detail, err := s.ports.Corpus.Get(ctx, input.VideoID)
	if err != nil {
		return nil, VideoOutput{}, err
	}

	return nil, videoOutput(detail), nil
}

// handleStats handles the corpus_stats tool invocation.
func (s *Server) handleStats(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	if s.ports.Corpus == nil {
		return nil, StatsOutput{}, ErrCorpusUnavailable
	}
	return nil, statsOutput(s.ports.Corpus.Stats()), nil
}

// handleReload handles the reload_corpus tool invocation.
func (s *Server) handleReload(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ StatsInput,
) (*mcp.CallToolResult, StatsOutput, error) {
	if s.ports.Corpus == nil {
		return nil, StatsOutput{}, ErrCorpusUnavailable
	}

	stats, err := s.ports.Corpus.Reload(ctx)
	if err != nil {
		return nil, StatsOutput{}, err
	}
	return nil, statsOutput(stats), nil
}

func videoOutput(detail *domain.VideoDetail) VideoOutput {
	v := &detail.Video
	return VideoOutput{
		VideoID:         v.ID,
		Title:           v.Title,
		Channel:         v.ChannelTitle,
		Description:     v.Description,
		URL:             watchURL(v.ID),
		ViewCount:       v.ViewCount,
		ManualTitle:     v.Override.Title(),
		ManualArtist:    v.Override.Artist(),
		Creators:        v.CreatorNames(),
		NormalisedTitle: detail.Terms.NormalisedTitle,
		MainTitle:       detail.Terms.MainTitle,
		SearchableTerms: detail.Terms.Candidates,
	}
}

func statsOutput(stats domain.CorpusStats) StatsOutput {
	out := StatsOutput{
		Generation: stats.Generation,
		LoadedAt:   stats.LoadedAt.Format("2006-01-02T15:04:05Z07:00"),
		Records:    stats.Records,
		Source:     stats.Report.Source,
		Skipped:    stats.Report.Skipped,
		Degraded:   stats.Report.Degraded,
	}
	for _, p := range stats.Report.Problems {
		out.Problems = append(out.Problems, p.VideoID+": "+p.Reason)
	}
	return out
}

// watchURL returns the YouTube watch page for a video.
func watchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
