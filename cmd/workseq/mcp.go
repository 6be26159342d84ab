// ABOUTME: CLI command for starting MCP server.
// ABOUTME: Runs stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/workseq/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

CONFIGURATION:

  {
    "mcpServers": {
      "workseq": {
        "command": "workseq",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  list_sequences      List sequences, optionally by category
  get_sequence        Get a sequence with its estimate
  create_sequence     Create a sequence
  delete_sequence     Delete a sequence
  estimate_duration   Estimate a sequence's duration
  record_launch       Record that a sequence was started
  recent_launches     Recently started sequences (deduplicated)
  launch_history      Raw launch history

AVAILABLE RESOURCES:

  workseq://sequences   All sequences grouped by category
  workseq://recent      Recently started sequences`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
