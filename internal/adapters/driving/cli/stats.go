package cli

import (
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show what was loaded from the snapshot",
	Long: `Loads the snapshot and reports how many videos are searchable, how many
records were skipped or only partly loaded, and why.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	stats := corpusService.Stats()
	report := stats.Report

	cmd.Println("Corpus")
	cmd.Println("======")
	cmd.Printf("  Source:     %s\n", report.Source)
	cmd.Printf("  Videos:     %d\n", stats.Records)
	cmd.Printf("  Read:       %d\n", report.Total)
	cmd.Printf("  Skipped:    %d\n", report.Skipped)
	cmd.Printf("  Degraded:   %d\n", report.Degraded)
	cmd.Printf("  Generation: %s\n", stats.Generation)

	if report.HasProblems() {
		cmd.Println()
		cmd.Println("Problems:")
		for _, p := range report.Problems {
			cmd.Printf("  %s: %s\n", p.VideoID, p.Reason)
		}
	}
	return nil
}
