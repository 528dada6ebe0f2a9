// ABOUTME: CLI command for running the MCP server.
// ABOUTME: Exposes stores and analytics over stdio transport.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server",
	Long: `Run a Model Context Protocol server over stdio.

Tools cover the full store surface (session editing, saving workouts,
progress logging) plus the analytics reads. Resources expose a training
summary and the exercise catalog.

Add to an MCP client config:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(workouts, progress)
		if err != nil {
			return fmt.Errorf("failed to create MCP server: %w", err)
		}
		return server.Serve(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
