// ABOUTME: CLI commands for the live tracking session.
// ABOUTME: Edits the active workout and saves it to history on finish.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/liftlog/liftlog/internal/catalog"
	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/store"
)

var (
	finishTitle    string
	finishDuration string
)

var trackCmd = &cobra.Command{
	Use:     "track",
	Aliases: []string{"t"},
	Short:   "Work on the active session",
	Long: `Edit the in-progress workout session.

The active session survives between commands. Exercises and sets are
referenced by their 1-based position as shown by 'liftlog track', or by
exercise name.

WORKFLOW:

  1. Add exercises:   liftlog track add "Squat (High Bar)"
  2. Log sets:        liftlog track set 1 100 5
  3. Complete them:   liftlog track check 1 1
  4. Save it all:     liftlog track finish --duration 52:30

COMMANDS:

  add      Add an exercise to the session
  set      Add a set (weight, reps) to an exercise
  check    Mark a set completed
  uncheck  Mark a set not completed
  remove   Remove an exercise from the session
  preset   Replace the session with a preset template
  reset    Start over with the default session
  finish   Save the session to history and start fresh`,
	RunE: func(cmd *cobra.Command, args []string) error {
		printSession(workouts.ActiveWorkout())
		return nil
	},
}

var trackAddCmd = &cobra.Command{
	Use:   "add <exercise name>",
	Short: "Add an exercise to the session",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		session := workouts.ActiveWorkout()
		session = append(session, models.NewExercise(name))
		workouts.SetActiveWorkout(session)

		color.Green("✓ Added %s", name)
		return nil
	},
}

var trackSetCmd = &cobra.Command{
	Use:   "set <exercise> <weight> <reps>",
	Short: "Add a set to an exercise",
	Long: `Add a set to an exercise in the active session.

Weight and reps are stored as entered; empty-looking values are allowed
while a session is live and simply contribute nothing to volume.

Examples:
  liftlog track set 1 80 8
  liftlog track set "Bench Press (Barbell)" 82.5 5`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := workouts.ActiveWorkout()
		i, err := resolveExercise(session, args[0])
		if err != nil {
			return err
		}

		session[i].Sets = append(session[i].Sets, models.NewSet(args[1], args[2]))
		workouts.SetActiveWorkout(session)

		color.Green("✓ %s: set %d added (%s x %s)",
			session[i].Name, len(session[i].Sets), args[1], args[2])
		return nil
	},
}

var trackCheckCmd = &cobra.Command{
	Use:   "check <exercise> <set>",
	Short: "Mark a set completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(args[0], args[1], true)
	},
}

var trackUncheckCmd = &cobra.Command{
	Use:   "uncheck <exercise> <set>",
	Short: "Mark a set not completed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setCompleted(args[0], args[1], false)
	},
}

var trackRemoveCmd = &cobra.Command{
	Use:   "remove <exercise>",
	Short: "Remove an exercise from the session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		session := workouts.ActiveWorkout()
		i, err := resolveExercise(session, args[0])
		if err != nil {
			return err
		}

		name := session[i].Name
		session = append(session[:i], session[i+1:]...)
		workouts.SetActiveWorkout(session)

		color.Green("✓ Removed %s", name)
		return nil
	},
}

var trackPresetCmd = &cobra.Command{
	Use:   "preset <id>",
	Short: "Replace the session with a preset template",
	Long: `Replace the active session with a preset workout template.

Run 'liftlog library presets' to see available templates.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, ok := catalog.FindPreset(args[0])
		if !ok {
			return fmt.Errorf("unknown preset: %s (try 'liftlog library presets')", args[0])
		}

		workouts.SetActiveWorkout(p.Session())
		color.Green("✓ Session loaded from %s", p.Title)
		return nil
	},
}

var trackResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start over with the default session",
	RunE: func(cmd *cobra.Command, args []string) error {
		workouts.SetActiveWorkout(store.DefaultSession())
		color.Green("✓ Session reset")
		return nil
	},
}

var trackFinishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Save the session to history and start fresh",
	Long: `Save the active session to workout history.

Total volume (weight x reps over completed sets) is computed now and
frozen on the saved workout. The session is then reset to the default.

Examples:
  liftlog track finish
  liftlog track finish --title "Push Day" --duration 48:15`,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := workouts.SaveWorkout(workouts.ActiveWorkout(), finishTitle, finishDuration)
		workouts.SetActiveWorkout(store.DefaultSession())

		color.Green("✓ Saved %s %s", w.Emoji, w.Title)
		fmt.Printf("  %s %s · %s · %.0f kg total volume\n",
			color.New(color.Faint).Sprint(shortID(w.ID)),
			w.Date, w.Duration, w.TotalVolume)
		return nil
	},
}

// resolveExercise finds an exercise by 1-based index or name. Name
// matching is case-insensitive, exact match first, then unique prefix.
func resolveExercise(session []models.Exercise, arg string) (int, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(session) {
			return 0, fmt.Errorf("no exercise %d (session has %d)", n, len(session))
		}
		return n - 1, nil
	}

	for i, ex := range session {
		if strings.EqualFold(ex.Name, arg) {
			return i, nil
		}
	}

	match := -1
	for i, ex := range session {
		if strings.HasPrefix(strings.ToLower(ex.Name), strings.ToLower(arg)) {
			if match >= 0 {
				return 0, fmt.Errorf("ambiguous exercise %q", arg)
			}
			match = i
		}
	}
	if match < 0 {
		return 0, fmt.Errorf("no exercise named %q in the session", arg)
	}
	return match, nil
}

func setCompleted(exArg, setArg string, completed bool) error {
	session := workouts.ActiveWorkout()
	i, err := resolveExercise(session, exArg)
	if err != nil {
		return err
	}

	n, err := strconv.Atoi(setArg)
	if err != nil || n < 1 || n > len(session[i].Sets) {
		return fmt.Errorf("no set %s on %s", setArg, session[i].Name)
	}

	session[i].Sets[n-1].IsCompleted = completed
	workouts.SetActiveWorkout(session)

	mark := "unchecked"
	if completed {
		mark = "checked"
	}
	color.Green("✓ %s set %d %s", session[i].Name, n, mark)
	return nil
}

func printSession(session []models.Exercise) {
	if len(session) == 0 {
		fmt.Println("The session is empty. Add an exercise with 'liftlog track add'.")
		return
	}

	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	fmt.Printf("Active session · est. volume %.0f kg\n\n", store.TotalVolume(session))
	for i, ex := range session {
		bold.Printf("%d. %s\n", i+1, ex.Name)
		for j, set := range ex.Sets {
			mark := "○"
			if set.IsCompleted {
				mark = color.GreenString("✓")
			}
			weight := set.Weight
			if weight == "" {
				weight = "-"
			}
			reps := set.Reps
			if reps == "" {
				reps = "-"
			}
			fmt.Printf("   %s set %d  %s kg x %s\n", mark, j+1, weight, reps)
		}
		if len(ex.Sets) == 0 {
			faint.Println("   (no sets)")
		}
	}
}

func init() {
	trackFinishCmd.Flags().StringVar(&finishTitle, "title", "", "workout title (default: Workout Session)")
	trackFinishCmd.Flags().StringVar(&finishDuration, "duration", "", "formatted duration, e.g. 45:00 (default: 00:00)")

	trackCmd.AddCommand(trackAddCmd)
	trackCmd.AddCommand(trackSetCmd)
	trackCmd.AddCommand(trackCheckCmd)
	trackCmd.AddCommand(trackUncheckCmd)
	trackCmd.AddCommand(trackRemoveCmd)
	trackCmd.AddCommand(trackPresetCmd)
	trackCmd.AddCommand(trackResetCmd)
	trackCmd.AddCommand(trackFinishCmd)
	rootCmd.AddCommand(trackCmd)
}
