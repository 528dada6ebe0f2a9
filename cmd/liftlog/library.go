// ABOUTME: CLI commands for browsing the exercise catalog and presets.
// ABOUTME: Read-only reference data; sessions copy names from here.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/catalog"
)

var (
	libraryCategory   string
	libraryDifficulty string
)

var libraryCmd = &cobra.Command{
	Use:     "library",
	Aliases: []string{"lib"},
	Short:   "Browse the exercise catalog",
	Long: `Browse the exercise reference catalog and preset templates.

COMMANDS:

  list      List catalog exercises (default)
  show      Show one exercise in detail
  presets   List preset workout templates

EXAMPLES:

  liftlog library
  liftlog library list --category Legs
  liftlog library list --difficulty Beginner
  liftlog library show "Face Pulls"
  liftlog library presets`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList()
	},
}

var libraryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLibraryList()
	},
}

var libraryShowCmd = &cobra.Command{
	Use:   "show <exercise name>",
	Short: "Show one exercise in detail",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")
		ex, ok := catalog.FindExercise(name)
		if !ok {
			return fmt.Errorf("not in catalog: %s", name)
		}

		color.New(color.Bold).Println(ex.Name)
		fmt.Printf("  %s · %s · %s\n", ex.Category, ex.Difficulty, ex.Equipment)
		fmt.Printf("  Muscles: %s\n", strings.Join(ex.Muscles, ", "))
		fmt.Printf("\n  %s\n", ex.Benefits)
		return nil
	},
}

var libraryPresetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset workout templates",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, p := range catalog.Presets() {
			color.New(color.Bold).Printf("%s  %s\n", p.ID, p.Title)
			fmt.Printf("  %s\n", p.Description)
			for _, ex := range p.Exercises {
				fmt.Printf("  - %s (%d sets)\n", ex.Name, len(ex.Sets))
			}
		}
		fmt.Println("\nStart one with 'liftlog track preset <id>'.")
		return nil
	},
}

func runLibraryList() error {
	faint := color.New(color.Faint)
	for _, ex := range catalog.Exercises() {
		if libraryCategory != "" && !strings.EqualFold(ex.Category, libraryCategory) {
			continue
		}
		if libraryDifficulty != "" && !strings.EqualFold(ex.Difficulty, libraryDifficulty) {
			continue
		}
		fmt.Printf("%-28s %-10s %-12s %s\n",
			ex.Name, ex.Category, ex.Difficulty, faint.Sprint(ex.Equipment))
	}
	return nil
}

func init() {
	for _, cmd := range []*cobra.Command{libraryCmd, libraryListCmd} {
		cmd.Flags().StringVar(&libraryCategory, "category", "", "filter by category")
		cmd.Flags().StringVar(&libraryDifficulty, "difficulty", "", "filter by difficulty (Beginner, Intermediate, Advanced)")
	}

	libraryCmd.AddCommand(libraryListCmd)
	libraryCmd.AddCommand(libraryShowCmd)
	libraryCmd.AddCommand(libraryPresetsCmd)
	rootCmd.AddCommand(libraryCmd)
}
