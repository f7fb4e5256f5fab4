package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hibiki-labs/kioku/internal/adapters/driven/snapshot"
	"github.com/hibiki-labs/kioku/internal/adapters/driven/storage/sqlite"
	"github.com/hibiki-labs/kioku/internal/core/domain"
)

var importDB string

var importCmd = &cobra.Command{
	Use:   "import [snapshot.json]",
	Short: "Import a JSON snapshot into the SQLite database",
	Long: `Reads a JSON snapshot and upserts every loadable video into the SQLite
database used by the sqlite driver. Records that cannot be loaded are
reported and skipped.

The database defaults to the configured sqlite snapshot, or videos.db in
the config directory.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export [snapshot.json]",
	Short: "Write the configured snapshot as a JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

func init() {
	importCmd.Flags().StringVar(&importDB, "db", "", "SQLite database to import into")
	rootCmd.AddCommand(importCmd, exportCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	snap, err := snapshot.NewFileSource(args[0]).Load(cmd.Context())
	if err != nil {
		return err
	}

	dbPath, err := importTarget()
	if err != nil {
		return err
	}

	store, err := sqlite.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	defer store.Close()

	n, err := store.Import(cmd.Context(), snap.Records)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	cmd.Printf("Imported %d videos into %s\n", n, dbPath)
	printProblems(cmd, snap.Report)
	return nil
}

// importTarget picks the database an import writes to.
func importTarget() (string, error) {
	if importDB != "" {
		return importDB, nil
	}
	if appSettings.Snapshot.Driver == domain.SnapshotDriverSQLite {
		return resolveSnapshotPath(appSettings.Snapshot)
	}
	return resolveSnapshotPath(domain.SnapshotSettings{Driver: domain.SnapshotDriverSQLite})
}

func runExport(cmd *cobra.Command, args []string) error {
	source, _, err := openSnapshotSource(appSettings.Snapshot)
	if err != nil {
		return err
	}

	snap, err := source.Load(cmd.Context())
	if err != nil {
		return err
	}

	if err := snapshot.NewFileSource(args[0]).Save(snap.Records); err != nil {
		return err
	}

	cmd.Printf("Exported %d videos to %s\n", len(snap.Records), args[0])
	printProblems(cmd, snap.Report)
	return nil
}

// printProblems lists skipped and degraded records, if any.
func printProblems(cmd *cobra.Command, report domain.LoadReport) {
	if !report.HasProblems() {
		return
	}
	cmd.Printf("%d skipped, %d degraded:\n", report.Skipped, report.Degraded)
	for _, p := range report.Problems {
		cmd.Printf("  %s: %s\n", p.VideoID, p.Reason)
	}
}
