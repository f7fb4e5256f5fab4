package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/tui"
	"github.com/hibiki-labs/kioku/internal/logger"
)

var tuiWatch bool

// errNotTerminal is returned when the TUI is started without a terminal.
var errNotTerminal = errors.New("the TUI needs an interactive terminal; use 'kioku search' instead")

// isTerminal reports whether stdin and stdout are terminals. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for kioku.

The TUI searches as you type a query, shows each video with the terms it
can be found by, and reports what the snapshot loader skipped.

Controls:
  ↑/k, ↓/j - Navigate results
  Enter    - Search / Select
  Esc      - Back / Cancel
  r        - Reload the snapshot (corpus view)
  ?        - Toggle help
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().BoolVar(&tuiWatch, "watch", false, "reload the corpus when the snapshot changes")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(searchService, corpusService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithSearchLimit(appSettings.Search.DefaultLimit)

	// Log lines would tear the alternate screen.
	logger.SetOutput(io.Discard)
	defer logger.SetOutput(os.Stderr)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	app.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if err := app.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("TUI error: %w", err)
		}
		return nil
	})

	if watchRequested(tuiWatch) {
		w := newSnapshotWatcher()
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	return g.Wait()
}
