// ABOUTME: Root Cobra command for workseq CLI.
// ABOUTME: Handles config, backend and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/harperreed/workseq/internal/config"
	"github.com/harperreed/workseq/internal/logging"
	"github.com/harperreed/workseq/internal/storage"
	"github.com/spf13/cobra"
)

// skipStoreAnnotation marks commands that manage their own storage (or need none).
const skipStoreAnnotation = "workseq/skip-store"

var (
	flagBackend  string
	flagDataDir  string
	flagLogLevel string

	cfg    *config.Config
	logger *log.Logger
	store  *storage.Store
)

var rootCmd = &cobra.Command{
	Use:   "workseq",
	Short: "Workout sequence builder and launcher",
	Long: `Workseq stores workout and warm-up sequences and estimates how long they take.

WHAT IT STORES:

  Sequences   named lists of exercises (repetitions or timed), with rest
              between exercises and optional repeated cycles
  Categories  workout, warmup
  Launches    the last 3 sequences you started

QUICK START:

  $ workseq add "Morning" --exercise squats:10 --exercise plank:30s --break 10
  $ workseq list                         # See all sequences with estimates
  $ workseq list --category warmup       # Only warm-ups
  $ workseq start <id>                   # Record that you started a sequence
  $ workseq recent                       # Recently started sequences

STORAGE:

  --backend badger   Local Badger store (default) at ~/.local/share/workseq/badger
  --backend sqlite   Local SQLite file at ~/.local/share/workseq/workseq.db
  --backend charm    Charm KV with cloud sync (E2E encrypted with your SSH key)
  --backend memory   Process memory only
  --backend none     No storage; reads are empty and writes fail

  Set a default with 'workseq config set backend sqlite'.

MCP INTEGRATION:

  Run 'workseq mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "workseq": { "command": "workseq", "args": ["mcp"] }
    }
  }`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "version" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		applyFlagOverrides(cmd, cfg)

		logger = logging.New(os.Stderr, cfg.GetLogLevel())

		if skipsStore(cmd) {
			return nil
		}

		backend, err := cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open %s backend: %w", cfg.GetBackend(), err)
		}
		store = storage.New(backend, storage.WithLogger(logger))
		logger.Debug("opened store", "backend", cfg.GetBackend(), "data_dir", cfg.GetDataDir())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStore()
	},
}

// applyFlagOverrides copies explicitly set persistent flags over the loaded config.
func applyFlagOverrides(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		c.Backend = flagBackend
	}
	if flags.Changed("data-dir") {
		c.DataDir = flagDataDir
	}
	if flags.Changed("log-level") {
		c.LogLevel = flagLogLevel
	}
}

func skipsStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[skipStoreAnnotation]; ok {
			return true
		}
	}
	return false
}

func closeStore() error {
	if store == nil {
		return nil
	}
	err := store.Close()
	store = nil
	return err
}

func init() {
	cobra.OnFinalize(func() { _ = closeStore() })

	rootCmd.PersistentFlags().StringVar(&flagBackend, "backend", "", "storage backend: badger, sqlite, charm, memory, none")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: ~/.local/share/workseq)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
}
