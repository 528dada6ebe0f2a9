// ABOUTME: MCP resource implementations for the training log.
// ABOUTME: Provides liftlog://summary and liftlog://catalog resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/liftlog/liftlog/internal/analytics"
	"github.com/liftlog/liftlog/internal/catalog"
)

func (s *Server) registerResources() {
	// liftlog://summary - training and progress dashboard
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://summary",
		Name:        "Training Summary",
		Description: "Recent workouts, best lifts, volume trend, and latest body weight",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// liftlog://catalog - exercise reference data
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "liftlog://catalog",
		Name:        "Exercise Catalog",
		Description: "Exercise reference catalog and preset workout templates",
		MIMEType:    "application/json",
	}, s.handleCatalogResource)
}

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	history := s.workouts.History()

	recent := history
	if len(recent) > 5 {
		recent = recent[:5]
	}

	lifts := analytics.BestLifts(history)
	if len(lifts) > 5 {
		lifts = lifts[:5]
	}

	weights := s.progress.WeightHistory()
	var latestWeight interface{}
	if len(weights) > 0 {
		latestWeight = weights[0]
	}

	result := map[string]interface{}{
		"workout_count":   len(history),
		"recent_workouts": recent,
		"best_lifts":      lifts,
		"volume_series":   analytics.VolumeSeries(history),
		"latest_weight":   latestWeight,
		"photo_count":     len(s.progress.Photos()),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://summary",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleCatalogResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"exercises": catalog.Exercises(),
		"presets":   catalog.Presets(),
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      "liftlog://catalog",
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
