// ABOUTME: CLI command for exporting all logged data.
// ABOUTME: Dumps both persisted records as JSON or YAML.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export all logged data",
	Long: `Export workout history and body progress in one document.

FORMATS:

  json   Full JSON export (suitable for backup)
  yaml   YAML export (human-readable)

EXAMPLES:

  liftlog export json                # Export all data as JSON
  liftlog export json -o backup.json # Save to file
  liftlog export yaml                # Export as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		doc := map[string]interface{}{
			"exportedAt":     time.Now().Format(time.RFC3339),
			"workoutHistory": workouts.History(),
			"weightHistory":  progress.WeightHistory(),
			"measurements":   progress.Measurements(),
			"photos":         progress.Photos(),
		}

		var data []byte
		var err error
		switch format {
		case "json":
			data, err = json.MarshalIndent(doc, "", "  ")
		case "yaml":
			data, err = yaml.Marshal(doc)
		default:
			return fmt.Errorf("unknown format: %s (use json or yaml)", format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	rootCmd.AddCommand(exportCmd)
}
