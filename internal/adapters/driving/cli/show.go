package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hibiki-labs/kioku/internal/core/domain"
)

var showCmd = &cobra.Command{
	Use:   "show [video-id]",
	Short: "Show a video and the terms it can be found by",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	detail, err := corpusService.Get(cmd.Context(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return errors.New("video not found: " + args[0])
	}
	if err != nil {
		return err
	}

	v := &detail.Video
	cmd.Printf("ID:       %s\n", v.ID)
	cmd.Printf("Title:    %s\n", v.Title)
	cmd.Printf("Channel:  %s\n", v.ChannelTitle)
	cmd.Printf("Views:    %d\n", v.ViewCount)
	cmd.Printf("URL:      https://www.youtube.com/watch?v=%s\n", v.ID)

	if !v.Override.IsEmpty() {
		cmd.Println()
		cmd.Println("[Manual]")
		printList(cmd, "Title", []string{v.Override.Title()})
		printList(cmd, "Artist", []string{v.Override.Artist()})
		printList(cmd, "Readings", v.Override.TitleReadings())
		printList(cmd, "Artist kana", v.Override.ArtistReadings())
		printList(cmd, "Keywords", v.Override.Keywords())
	}

	if creators := v.CreatorNames(); len(creators) > 0 {
		cmd.Println()
		cmd.Println("[Creators]")
		for _, c := range creators {
			cmd.Printf("  %s\n", c)
		}
	}

	cmd.Println()
	printTerms(cmd, detail.Terms)
	return nil
}

// printList prints "  label: a, b" unless values are all empty.
func printList(cmd *cobra.Command, label string, values []string) {
	joined := strings.Join(values, ", ")
	if joined == "" {
		return
	}
	cmd.Printf("  %s: %s\n", label, joined)
}

// printTerms prints the derived search terms of a title.
func printTerms(cmd *cobra.Command, terms domain.SearchTerms) {
	cmd.Println("[Terms]")
	cmd.Printf("  Normalised: %s\n", terms.NormalisedTitle)
	cmd.Printf("  Main title: %s\n", terms.MainTitle)
	cmd.Println("  Searchable:")
	for _, c := range terms.Candidates {
		cmd.Printf("    - %s\n", c)
	}
}
