package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hibiki-labs/kioku/internal/adapters/driving/mcp"
)

var (
	mcpPort  int
	mcpWatch bool
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
the video knowledge base.

By default, the server communicates over stdio using JSON-RPC. Use --port
to serve over HTTP instead, for example to test with MCP Inspector.

With --watch (or watch.enabled in config.toml) the corpus is rebuilt when
the snapshot changes, without restarting the server.

Examples:
  # Stdio mode (default)
  kioku mcp serve

  # HTTP mode
  kioku mcp serve --port 8080 --watch

Client configuration:
  {
    "mcpServers": {
      "kioku": {
        "command": "/path/to/kioku",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntVarP(&mcpPort, "port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().BoolVar(&mcpWatch, "watch", false, "reload the corpus when the snapshot changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if err := ensureCorpus(cmd.Context()); err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search: searchService,
		Corpus: corpusService,
	})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer cancel()
		if mcpPort > 0 {
			addr := fmt.Sprintf(":%d", mcpPort)
			// stdout stays clean in stdio mode; announce only for HTTP.
			cmd.PrintErrf("MCP server listening on http://localhost%s\n", addr)
			return server.RunHTTP(ctx, addr)
		}
		return server.Run(ctx)
	})

	if watchRequested(mcpWatch) {
		w := newSnapshotWatcher()
		g.Go(func() error {
			return w.Run(ctx)
		})
	}

	return g.Wait()
}
