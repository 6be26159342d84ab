// ABOUTME: MCP resource implementations for workout sequences.
// ABOUTME: Provides workseq://sequences and workseq://recent resources.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "workseq://sequences",
		Name:        "Workout Sequences",
		Description: "All stored sequences with estimated durations",
		MIMEType:    "application/json",
	}, s.handleSequencesResource)

	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "workseq://recent",
		Name:        "Recently Started",
		Description: "Most recently started sequences, one per sequence",
		MIMEType:    "application/json",
	}, s.handleRecentResource)
}

// Resource handlers

func (s *Server) handleSequencesResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	result := map[string]interface{}{
		"workouts": newSequenceViews(s.store.ListWorkouts()),
		"warmups":  newSequenceViews(s.store.ListWarmups()),
	}
	return jsonResource("workseq://sequences", result)
}

func (s *Server) handleRecentResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	recent := s.store.GetRecentLaunches()
	launches := make([]launchView, 0, len(recent))
	for _, r := range recent {
		launches = append(launches, newLaunchView(r.Launch, r.Sequence))
	}
	return jsonResource("workseq://recent", map[string]interface{}{"launches": launches})
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
