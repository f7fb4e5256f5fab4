package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialise configuration",
	Long: `Settings are read from config.toml in the config directory
(default ~/.kioku). KIOKU_SNAPSHOT and --snapshot override the snapshot path.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println(settingsService.ConfigPath())
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configShowCmd, configInitCmd, configPathCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	s := appSettings
	path, err := resolveSnapshotPath(s.Snapshot)
	if err != nil {
		return err
	}

	cmd.Println("Snapshot")
	cmd.Printf("  Driver:        %s (%s)\n", s.Snapshot.Driver, s.Snapshot.Driver.Description())
	cmd.Printf("  Path:          %s\n", path)
	cmd.Println("Search")
	cmd.Printf("  Default limit: %d\n", s.Search.DefaultLimit)
	cmd.Printf("  Cache size:    %d\n", s.Search.CacheSize)
	cmd.Println("Watch")
	cmd.Printf("  Enabled:       %t\n", s.Watch.Enabled)
	cmd.Printf("  Debounce:      %s\n", s.Watch.Debounce)
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := settingsService.ConfigPath()
	if path != "" && !configInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	defaults := settingsService.GetDefaults()
	if err := settingsService.Save(&defaults); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	appSettings = &defaults

	if path == "" {
		cmd.Println("Default settings saved.")
		return nil
	}
	cmd.Printf("Wrote %s\n", path)
	return nil
}
