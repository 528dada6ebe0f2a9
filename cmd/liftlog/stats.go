// ABOUTME: CLI command for strength records and volume progression.
// ABOUTME: Renders the analytics derivations over saved history.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/analytics"
)

var statsCmd = &cobra.Command{
	Use:     "stats",
	Aliases: []string{"s"},
	Short:   "Best lifts and volume progression",
	Long: `Derive strength records and volume trend from workout history.

BEST LIFTS:

  For each exercise, the completed set with the highest estimated 1RM
  (Epley: weight x (1 + 0.0333 x reps), exact at 1 rep) across all
  saved workouts.

VOLUME:

  Total volume per workout in chronological order, using the volume
  frozen when each workout was saved.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		history := workouts.History()
		if len(history) == 0 {
			fmt.Println("No workouts yet. Save one with 'liftlog track finish'.")
			return nil
		}

		bold := color.New(color.Bold)

		lifts := analytics.BestLifts(history)
		bold.Println("Best lifts")
		if len(lifts) == 0 {
			fmt.Println("  (no completed sets yet)")
		}
		for i, lift := range lifts {
			fmt.Printf("  %2d. %-28s %6.1f kg x %-3d  1RM ~ %.0f kg\n",
				i+1, lift.Exercise, lift.Weight, lift.Reps, lift.OneRM)
		}

		points := analytics.VolumeSeries(history)
		bold.Println("\nVolume")
		var max float64
		for _, p := range points {
			if p.Volume > max {
				max = p.Volume
			}
		}
		for _, p := range points {
			bar := 0
			if max > 0 {
				bar = int(p.Volume / max * 30)
			}
			fmt.Printf("  %-12s %7.0f kg  %s\n", p.Date, p.Volume, barString(bar))
		}
		return nil
	},
}

func barString(n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = '█'
	}
	return string(out)
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
