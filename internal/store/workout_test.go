// ABOUTME: Tests for WorkoutStore save, session, and persistence behavior.
// ABOUTME: Uses the in-memory Blob; durable backends are tested in storage.
package store

import (
	"io"
	"reflect"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/storage"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func benchPress(weight, reps string, completed bool) models.Exercise {
	return models.Exercise{
		ID:   "e1",
		Name: "Bench Press (Barbell)",
		Sets: []models.Set{{ID: "s1", Weight: weight, Reps: reps, IsCompleted: completed}},
	}
}

func TestSaveWorkoutComputesVolume(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	w := s.SaveWorkout([]models.Exercise{benchPress("80", "8", true)}, "", "")
	if w.TotalVolume != 640 {
		t.Errorf("TotalVolume = %v, want 640", w.TotalVolume)
	}
}

func TestSaveWorkoutIgnoresIncompleteSets(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	w := s.SaveWorkout([]models.Exercise{benchPress("80", "8", false)}, "", "")
	if w.TotalVolume != 0 {
		t.Errorf("TotalVolume = %v, want 0", w.TotalVolume)
	}
}

func TestSaveWorkoutUnparsableSetsContributeZero(t *testing.T) {
	exercises := []models.Exercise{{
		ID:   "e1",
		Name: "Bench Press (Barbell)",
		Sets: []models.Set{
			{ID: "s1", Weight: "", Reps: "8", IsCompleted: true},
			{ID: "s2", Weight: "abc", Reps: "8", IsCompleted: true},
			{ID: "s3", Weight: "80", Reps: "", IsCompleted: true},
			{ID: "s4", Weight: "80", Reps: "8", IsCompleted: true},
		},
	}}

	s := NewWorkoutStore(storage.NewMemory(), testLogger())
	w := s.SaveWorkout(exercises, "", "")
	if w.TotalVolume != 640 {
		t.Errorf("TotalVolume = %v, want 640 (bad sets contribute nothing)", w.TotalVolume)
	}
}

func TestTotalVolumeAcceptsDecimalReps(t *testing.T) {
	// Volume parses reps as a float, unlike the best-lift derivation
	// which requires whole integers.
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	w := s.SaveWorkout([]models.Exercise{benchPress("80", "8.5", true)}, "", "")
	if w.TotalVolume != 680 {
		t.Errorf("TotalVolume = %v, want 680", w.TotalVolume)
	}
}

func TestSaveWorkoutDefaults(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	w := s.SaveWorkout(nil, "", "")
	if w.Title != "Workout Session" {
		t.Errorf("Title = %q, want Workout Session", w.Title)
	}
	if w.Duration != "00:00" {
		t.Errorf("Duration = %q, want 00:00", w.Duration)
	}
	if w.ID == "" {
		t.Error("expected a generated ID")
	}
	if _, err := time.Parse("Jan 2, 2006", w.Date); err != nil {
		t.Errorf("Date %q does not match Jan 2, 2006", w.Date)
	}

	found := false
	for _, emoji := range workoutEmojis {
		if w.Emoji == emoji {
			found = true
		}
	}
	if !found {
		t.Errorf("Emoji %q not in the fixed set", w.Emoji)
	}
}

func TestSaveWorkoutPrepends(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	s.SaveWorkout(nil, "First", "")
	s.SaveWorkout(nil, "Second", "")

	history := s.History()
	if len(history) != 2 {
		t.Fatalf("got %d workouts, want 2", len(history))
	}
	if history[0].Title != "Second" || history[1].Title != "First" {
		t.Errorf("history not most-recent-first: %s, %s", history[0].Title, history[1].Title)
	}
}

func TestSaveWorkoutKeepsActiveSession(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())
	before := s.ActiveWorkout()

	s.SaveWorkout(before, "", "")

	if !reflect.DeepEqual(s.ActiveWorkout(), before) {
		t.Error("SaveWorkout must not touch the active session")
	}
}

func TestSaveWorkoutSnapshotsExercises(t *testing.T) {
	exercises := []models.Exercise{benchPress("80", "8", true)}
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	s.SaveWorkout(exercises, "", "")
	exercises[0].Sets[0].Weight = "999"

	if got := s.History()[0].Exercises[0].Sets[0].Weight; got != "80" {
		t.Errorf("saved workout mutated through caller slice: weight = %s", got)
	}
}

func TestHistoryRoundTrip(t *testing.T) {
	blob := storage.NewMemory()

	s := NewWorkoutStore(blob, testLogger())
	s.SaveWorkout([]models.Exercise{benchPress("80", "8", true)}, "Push Day", "45:00")
	s.SaveWorkout([]models.Exercise{benchPress("100", "5", true)}, "Heavy Day", "50:00")
	s.Close()

	reloaded := NewWorkoutStore(blob, testLogger())
	if !reflect.DeepEqual(reloaded.History(), s.History()) {
		t.Error("reloaded history differs from saved history")
	}
}

func TestActiveSessionRoundTrip(t *testing.T) {
	blob := storage.NewMemory()

	s := NewWorkoutStore(blob, testLogger())
	session := []models.Exercise{benchPress("60", "10", false)}
	s.SetActiveWorkout(session)
	s.Close()

	reloaded := NewWorkoutStore(blob, testLogger())
	if !reflect.DeepEqual(reloaded.ActiveWorkout(), session) {
		t.Error("reloaded session differs from the one set")
	}
}

func TestCorruptHistoryFallsBackToEmpty(t *testing.T) {
	blob := storage.NewMemory()
	if err := blob.Put(WorkoutHistoryKey, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	s := NewWorkoutStore(blob, testLogger())
	if got := len(s.History()); got != 0 {
		t.Errorf("got %d workouts from corrupt data, want 0", got)
	}

	// The store stays usable after the fallback.
	s.SaveWorkout(nil, "", "")
	if got := len(s.History()); got != 1 {
		t.Errorf("got %d workouts after save, want 1", got)
	}
}

func TestDefaultSessionShape(t *testing.T) {
	s := NewWorkoutStore(storage.NewMemory(), testLogger())

	session := s.ActiveWorkout()
	if len(session) != 1 {
		t.Fatalf("got %d exercises, want 1", len(session))
	}
	if session[0].Name != "Bench Press (Barbell)" {
		t.Errorf("Name = %q, want Bench Press (Barbell)", session[0].Name)
	}
	if len(session[0].Sets) != 1 {
		t.Fatalf("got %d sets, want 1", len(session[0].Sets))
	}
	set := session[0].Sets[0]
	if set.Weight != "80" || set.Reps != "8" || set.IsCompleted {
		t.Errorf("default set = %+v, want incomplete 80 x 8", set)
	}
}

type failingBlob struct{}

func (failingBlob) Get(key string) ([]byte, error)     { return nil, storage.ErrNotFound }
func (failingBlob) Put(key string, value []byte) error { return io.ErrClosedPipe }
func (failingBlob) Close() error                       { return nil }

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	s := NewWorkoutStore(failingBlob{}, testLogger())

	s.SaveWorkout(nil, "Doomed", "")
	s.Close()

	if got := len(s.History()); got != 1 {
		t.Errorf("in-memory history lost on write failure: %d workouts", got)
	}
	select {
	case err := <-s.WriteErrors():
		if err == nil {
			t.Error("expected a write error")
		}
	default:
		t.Error("write failure was not observable")
	}
}
