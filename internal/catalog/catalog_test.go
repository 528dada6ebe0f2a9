// ABOUTME: Tests for the embedded exercise catalog and preset templates.
// ABOUTME: Validates the embedded data and the session expansion rules.
package catalog

import (
	"testing"

	"github.com/liftlog/liftlog/internal/models"
)

func TestCatalogLoads(t *testing.T) {
	if got := len(Exercises()); got != 15 {
		t.Errorf("got %d catalog entries, want 15", got)
	}
	if got := len(Presets()); got != 3 {
		t.Errorf("got %d presets, want 3", got)
	}
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, ex := range Exercises() {
		if ex.ID == "" || ex.Name == "" || ex.Category == "" {
			t.Errorf("incomplete entry: %+v", ex)
		}
		if seen[ex.ID] {
			t.Errorf("duplicate catalog ID %q", ex.ID)
		}
		seen[ex.ID] = true

		switch ex.Difficulty {
		case Beginner, Intermediate, Advanced:
		default:
			t.Errorf("%s: unknown difficulty %q", ex.Name, ex.Difficulty)
		}
		if len(ex.Muscles) == 0 {
			t.Errorf("%s: no muscles listed", ex.Name)
		}
	}
}

func TestFindExerciseCaseInsensitive(t *testing.T) {
	for _, name := range []string{"Bench Press (Barbell)", "bench press (barbell)", "BENCH PRESS (BARBELL)"} {
		ex, ok := FindExercise(name)
		if !ok {
			t.Fatalf("FindExercise(%q) not found", name)
		}
		if ex.Name != "Bench Press (Barbell)" {
			t.Errorf("got %q", ex.Name)
		}
	}

	if _, ok := FindExercise("No Such Movement"); ok {
		t.Error("found an exercise that does not exist")
	}
}

func TestFindPreset(t *testing.T) {
	p, ok := FindPreset("push-a")
	if !ok {
		t.Fatal("push-a not found")
	}
	if p.Title == "" || len(p.Exercises) == 0 {
		t.Errorf("preset incomplete: %+v", p)
	}

	if _, ok := FindPreset("rest-day"); ok {
		t.Error("found a preset that does not exist")
	}
}

func TestPresetSessionMintsFreshIDs(t *testing.T) {
	p, ok := FindPreset("push-a")
	if !ok {
		t.Fatal("push-a not found")
	}

	first := p.Session()
	second := p.Session()
	if len(first) != len(p.Exercises) {
		t.Fatalf("got %d exercises, want %d", len(first), len(p.Exercises))
	}

	// Each expansion mints its own IDs so two sessions from the same
	// preset never share state.
	ids := make(map[string]bool)
	for _, session := range [][]models.Exercise{first, second} {
		for _, ex := range session {
			if ids[ex.ID] {
				t.Errorf("reused exercise ID %q", ex.ID)
			}
			ids[ex.ID] = true
			for _, set := range ex.Sets {
				if ids[set.ID] {
					t.Errorf("reused set ID %q", set.ID)
				}
				ids[set.ID] = true
			}
		}
	}
}

func TestPresetSessionSetsStartIncomplete(t *testing.T) {
	p, ok := FindPreset("legs-a")
	if !ok {
		t.Fatal("legs-a not found")
	}

	for _, ex := range p.Session() {
		if len(ex.Sets) == 0 {
			t.Errorf("%s: no sets", ex.Name)
		}
		for _, set := range ex.Sets {
			if set.IsCompleted {
				t.Errorf("%s: preset set starts completed", ex.Name)
			}
			if set.Weight == "" || set.Reps == "" {
				t.Errorf("%s: preset set missing prescription: %+v", ex.Name, set)
			}
		}
	}
}
