// Package cli provides the kioku command line interface.
// It implements a driving adapter following hexagonal architecture principles.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/hibiki-labs/kioku/internal/logger"
)

// Environment variables that override the config file.
const (
	envConfigDir = "KIOKU_CONFIG_DIR"
	envSnapshot  = "KIOKU_SNAPSHOT"
)

var (
	// version is set at build time via SetVersion.
	version = "dev"

	// Persistent flags.
	verbose       bool
	configDirFlag string
	snapshotFlag  string
	driverFlag    string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kioku",
	Short: "Search a knowledge base of music videos",
	Long: `kioku finds music videos in a local knowledge base from whatever a
listener remembers: a title with or without its decorations, an artist,
a katakana or hiragana reading, or a keyword curated by hand.

The knowledge base is a JSON snapshot or a SQLite database produced by
an external collector. Searches never touch the network.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		return loadSettings()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDirFlag, "config-dir", "",
		"config directory (default ~/.kioku, env "+envConfigDir+")")
	rootCmd.PersistentFlags().StringVar(&snapshotFlag, "snapshot", "",
		"snapshot file or database (env "+envSnapshot+")")
	rootCmd.PersistentFlags().StringVar(&driverFlag, "driver", "", "snapshot driver: json or sqlite")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	defer closeServices()
	rootCmd.SetOut(os.Stdout)
	return rootCmd.ExecuteContext(ctx)
}

// configDir resolves the config directory from the flag, then the environment.
// Empty means the default location.
func configDir() string {
	if configDirFlag != "" {
		return configDirFlag
	}
	return os.Getenv(envConfigDir)
}
