// ABOUTME: CLI command for listing saved workouts.
// ABOUTME: Shows emoji, title, date, duration, and frozen volume.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "List saved workouts",
	Long: `List saved workouts, most recent first.

Each line shows: ID  DATE  TITLE  DURATION  VOLUME

The volume shown is the value frozen when the workout was saved.

EXAMPLES:

  liftlog history          # All saved workouts
  liftlog history -n 5     # The five most recent`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := workouts.History()
		if len(history) == 0 {
			fmt.Println("No workouts yet. Save one with 'liftlog track finish'.")
			return nil
		}
		if historyLimit > 0 && len(history) > historyLimit {
			history = history[:historyLimit]
		}

		faint := color.New(color.Faint)
		for _, w := range history {
			sets := 0
			for _, ex := range w.Exercises {
				sets += len(ex.Sets)
			}
			fmt.Printf("%s  %s %s  %s · %s · %d exercises, %d sets · %.0f kg\n",
				faint.Sprint(shortID(w.ID)),
				w.Emoji, color.New(color.Bold).Sprint(w.Title),
				w.Date, w.Duration, len(w.Exercises), sets, w.TotalVolume)
		}
		return nil
	},
}

// shortID truncates an ID to eight characters for display. Loaded
// records are not validated, so the ID may be shorter than that.
func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 0, "max workouts to show (default: all)")
	rootCmd.AddCommand(historyCmd)
}
