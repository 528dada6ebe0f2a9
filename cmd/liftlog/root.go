// ABOUTME: Root Cobra command for the liftlog CLI.
// ABOUTME: Opens the stores in PersistentPreRunE and drains writes on exit.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/config"
	"github.com/liftlog/liftlog/internal/storage"
	"github.com/liftlog/liftlog/internal/store"
)

var (
	cfg      *config.Config
	blob     storage.Blob
	workouts *store.WorkoutStore
	progress *store.ProgressStore
	logger   = logrus.New()
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "liftlog",
	Short: "Strength training log and body progress tracker",
	Long: `Liftlog is a local-first CLI for logging strength training.

WHAT IT TRACKS:

  Sessions   exercises and sets (weight, reps, completion) in a live session
  History    saved workouts with frozen total volume
  Progress   body weight, tape measurements, progress photos
  Stats      estimated 1RM best lifts and volume progression

QUICK START:

  $ liftlog track                         # Show the active session
  $ liftlog track set 1 80 8              # Add an 80kg x 8 set to exercise 1
  $ liftlog track check 1 1               # Mark the set completed
  $ liftlog track finish --duration 45:00 # Save the workout
  $ liftlog stats                         # Best lifts and volume trend

PROGRESS:

  $ liftlog progress weight 83.2                 # Log body weight
  $ liftlog progress measure --chest 106         # Log measurements
  $ liftlog progress photo file:///pic.jpg       # Add a progress photo

PRESETS:

  $ liftlog library presets               # List preset templates
  $ liftlog track preset push-a           # Start a session from a preset

MCP INTEGRATION:

  Run 'liftlog mcp' to start the Model Context Protocol server for use
  with MCP-compatible AI assistants:

  {
    "mcpServers": {
      "liftlog": { "command": "liftlog", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Data lives under ~/.local/share/liftlog (Badger by default, SQLite via
  config). Every change rewrites the owning record in full.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logger.SetLevel(logrus.DebugLevel)
		} else {
			logger.SetLevel(logrus.WarnLevel)
		}
		logger.SetOutput(os.Stderr)

		// Commands that never touch the stores
		switch cmd.Name() {
		case "help", "version", "completion", "__complete":
			return nil
		}

		return openStores()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStores()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func openStores() error {
	c, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg = c

	b, err := cfg.OpenBlob()
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	blob = b

	workouts = store.NewWorkoutStore(blob, logger)
	progress = store.NewProgressStore(blob, logger)
	return nil
}

func closeStores() error {
	if workouts != nil {
		workouts.Close()
	}
	if progress != nil {
		progress.Close()
	}
	if blob != nil {
		return blob.Close()
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
