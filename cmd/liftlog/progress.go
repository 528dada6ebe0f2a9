// ABOUTME: CLI commands for body-progress logging.
// ABOUTME: Weight entries, tape measurements, and progress photos.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/models"
)

var (
	measureChest float64
	measureWaist float64
	measureHips  float64
	measureArms  float64
)

var progressCmd = &cobra.Command{
	Use:     "progress",
	Aliases: []string{"p"},
	Short:   "Log body progress",
	Long: `Track body weight, tape measurements, and progress photos.

COMMANDS:

  weight    Log a body weight entry
  measure   Log tape measurements (any subset of fields)
  photo     Add a progress photo by URI
  show      Show recent progress

EXAMPLES:

  liftlog progress weight 83.2
  liftlog progress measure --chest 106 --waist 90
  liftlog progress photo file:///home/me/progress/mar.jpg
  liftlog progress show`,
}

var progressWeightCmd = &cobra.Command{
	Use:   "weight <value>",
	Short: "Log a body weight entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		entry := progress.LogWeight(value)
		color.Green("✓ Logged %.1f kg (%s)", entry.Value, entry.Date)
		return nil
	},
}

var progressMeasureCmd = &cobra.Command{
	Use:   "measure",
	Short: "Log tape measurements",
	Long: `Log tape measurements in cm. Provide any subset of the fields;
omitted ones are left out of the entry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var entry models.MeasurementEntry
		if cmd.Flags().Changed("chest") {
			entry.Chest = &measureChest
		}
		if cmd.Flags().Changed("waist") {
			entry.Waist = &measureWaist
		}
		if cmd.Flags().Changed("hips") {
			entry.Hips = &measureHips
		}
		if cmd.Flags().Changed("arms") {
			entry.Arms = &measureArms
		}

		logged := progress.LogMeasurements(entry)
		color.Green("✓ Logged measurements (%s)", logged.Date)
		return nil
	},
}

var progressPhotoCmd = &cobra.Command{
	Use:   "photo <uri>",
	Short: "Add a progress photo by URI",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		photo := progress.AddPhoto(args[0])
		color.Green("✓ Added photo (%s)", photo.Date)
		fmt.Printf("  %s %s\n", color.New(color.Faint).Sprint(shortID(photo.ID)), photo.URI)
		return nil
	},
}

var progressShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show recent progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		bold := color.New(color.Bold)

		weights := progress.WeightHistory()
		bold.Println("Weight")
		if len(weights) == 0 {
			fmt.Println("  (none logged)")
		}
		for i, entry := range weights {
			if i >= 5 {
				break
			}
			delta := ""
			if i+1 < len(weights) {
				delta = fmt.Sprintf("  (%+.1f)", entry.Value-weights[i+1].Value)
			}
			fmt.Printf("  %-8s %.1f kg%s\n", entry.Date, entry.Value, delta)
		}

		measurements := progress.Measurements()
		bold.Println("\nMeasurements")
		if len(measurements) == 0 {
			fmt.Println("  (none logged)")
		} else {
			m := measurements[0]
			fmt.Printf("  %s ·%s%s%s%s\n", m.Date,
				formatMeasure(" chest", m.Chest),
				formatMeasure(" waist", m.Waist),
				formatMeasure(" hips", m.Hips),
				formatMeasure(" arms", m.Arms))
		}

		fmt.Printf("\n%d progress photo(s)\n", len(progress.Photos()))
		return nil
	},
}

func formatMeasure(label string, value *float64) string {
	if value == nil {
		return ""
	}
	return fmt.Sprintf("%s %.0fcm", label, *value)
}

func init() {
	progressMeasureCmd.Flags().Float64Var(&measureChest, "chest", 0, "chest in cm")
	progressMeasureCmd.Flags().Float64Var(&measureWaist, "waist", 0, "waist in cm")
	progressMeasureCmd.Flags().Float64Var(&measureHips, "hips", 0, "hips in cm")
	progressMeasureCmd.Flags().Float64Var(&measureArms, "arms", 0, "arms in cm")

	progressCmd.AddCommand(progressWeightCmd)
	progressCmd.AddCommand(progressMeasureCmd)
	progressCmd.AddCommand(progressPhotoCmd)
	progressCmd.AddCommand(progressShowCmd)
	rootCmd.AddCommand(progressCmd)
}
