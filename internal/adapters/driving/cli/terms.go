package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hibiki-labs/kioku/internal/normalisers/title"
)

var termsJSON bool

var termsCmd = &cobra.Command{
	Use:   "terms [title]",
	Short: "Show how a raw title is normalised",
	Long: `Runs a raw video title through the normaliser and prints the cleaned
title, the main title and the searchable terms. Useful for checking why a
video does or does not match a query.

Example:
  kioku terms "▽▲TRiNITY▲▽『XOXO』Music Video【ホロライブ/収録曲】"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTerms,
}

func init() {
	termsCmd.Flags().BoolVar(&termsJSON, "json", false, "output terms as JSON")
	rootCmd.AddCommand(termsCmd)
}

func runTerms(cmd *cobra.Command, args []string) error {
	terms := title.Extract(strings.Join(args, " "))

	if termsJSON {
		data, err := json.MarshalIndent(struct {
			NormalisedTitle string   `json:"normalised_title"`
			MainTitle       string   `json:"main_title"`
			SearchableTerms []string `json:"searchable_terms"`
		}{terms.NormalisedTitle, terms.MainTitle, terms.Candidates}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal terms: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	printTerms(cmd, terms)
	return nil
}
