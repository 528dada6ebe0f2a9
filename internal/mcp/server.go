// ABOUTME: MCP server setup for the training log.
// ABOUTME: Wires the workout and progress stores into tools and resources.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/liftlog/liftlog/internal/store"
)

// Server wraps the MCP server with store access.
type Server struct {
	mcpServer *mcp.Server
	workouts  *store.WorkoutStore
	progress  *store.ProgressStore
}

// NewServer creates an MCP server over the given stores.
func NewServer(workouts *store.WorkoutStore, progress *store.ProgressStore) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "liftlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		workouts:  workouts,
		progress:  progress,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
