package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

var (
	searchLimit   int
	searchJSON    bool
	searchExplain bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the video knowledge base",
	Long: `Finds videos whose title, manual title or artist, readings, keywords,
channel, creators or description match the query.

Results are ranked by score; ties are broken by video ID. Queries are
compared case-insensitively with full-width and half-width forms folded,
so "ＸＯＸＯ", "xoxo" and "XOXO" are the same query.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0,
		"maximum number of results (0 = configured default, -1 = all)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchExplain, "explain", false, "show which terms matched")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	results, err := searchService.Search(cmd.Context(), query, domain.SearchOptions{Limit: searchLimit})
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	outputSearchTable(cmd, results)
	return nil
}

// searchResultJSON is the JSON shape of one result.
type searchResultJSON struct {
	VideoID      string   `json:"video_id"`
	Title        string   `json:"title"`
	DisplayTitle string   `json:"display_title"`
	Channel      string   `json:"channel,omitempty"`
	Score        int      `json:"score"`
	MatchedTerms []string `json:"matched_terms"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]searchResultJSON, len(results))
	for i := range results {
		r := &results[i]
		out[i] = searchResultJSON{
			VideoID:      r.VideoID,
			Title:        r.Video.Title,
			DisplayTitle: r.Video.DisplayTitle(),
			Channel:      r.Video.ChannelTitle,
			Score:        r.Score,
			MatchedTerms: r.MatchedTerms,
		}
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return
	}

	cmd.Println("Results:")
	cmd.Println()
	for i := range results {
		r := &results[i]
		// Format: [N] Display title (score)
		cmd.Printf("  [%d] %s (%d)\n", i+1, r.Video.DisplayTitle(), r.Score)

		if r.Video.DisplayTitle() != r.Video.Title && r.Video.Title != "" {
			cmd.Printf("      %s\n", r.Video.Title)
		}
		if r.Video.ChannelTitle != "" {
			cmd.Printf("      %s · %s\n", r.Video.ChannelTitle, r.VideoID)
		} else {
			cmd.Printf("      %s\n", r.VideoID)
		}
		if searchExplain && len(r.MatchedTerms) > 0 {
			cmd.Printf("      matched: %s\n", strings.Join(r.MatchedTerms, ", "))
		}
		cmd.Println()
	}
}
