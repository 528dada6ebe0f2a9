// ABOUTME: WorkoutStore owns workout history and the active session.
// ABOUTME: History is persisted whole under a versioned key on every save.
package store

import (
	"encoding/json"
	"errors"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/liftlog/liftlog/internal/models"
	"github.com/liftlog/liftlog/internal/storage"
)

const (
	// WorkoutHistoryKey is the versioned blob key for saved history.
	WorkoutHistoryKey = "@workout_history_v1"
	// ActiveSessionKey is the versioned blob key for the in-progress session.
	ActiveSessionKey = "@active_session_v1"
)

var workoutEmojis = []string{"💪", "🔥", "⚡", "🏋️", "🧗"}

// WorkoutStore holds workout history (most recent first) and the single
// in-progress session. It exclusively owns both; nothing else writes
// the underlying records.
type WorkoutStore struct {
	mu      sync.Mutex
	history []models.Workout
	active  []models.Exercise
	writer  *storage.Writer
	log     logrus.FieldLogger
}

// NewWorkoutStore creates the store and loads any persisted state.
// Missing or corrupt records fall back silently to defaults: empty
// history and the default single-exercise session.
func NewWorkoutStore(blob storage.Blob, log logrus.FieldLogger) *WorkoutStore {
	s := &WorkoutStore{
		active: DefaultSession(),
		writer: storage.NewWriter(blob, log),
		log:    log,
	}
	s.load(blob)
	return s
}

// DefaultSession is the session a fresh tracker starts with.
func DefaultSession() []models.Exercise {
	return []models.Exercise{{
		ID:   uuid.New().String(),
		Name: "Bench Press (Barbell)",
		Sets: []models.Set{{ID: uuid.New().String(), Weight: "80", Reps: "8"}},
	}}
}

func (s *WorkoutStore) load(blob storage.Blob) {
	data, err := blob.Get(WorkoutHistoryKey)
	switch {
	case err == nil:
		var history []models.Workout
		if err := json.Unmarshal(data, &history); err != nil {
			s.log.WithError(err).Warn("corrupt workout history, starting empty")
		} else {
			s.history = history
		}
	case !errors.Is(err, storage.ErrNotFound):
		s.log.WithError(err).Warn("failed to load workout history")
	}

	data, err = blob.Get(ActiveSessionKey)
	switch {
	case err == nil:
		var active []models.Exercise
		if err := json.Unmarshal(data, &active); err != nil {
			s.log.WithError(err).Warn("corrupt active session, using default")
		} else if active != nil {
			s.active = active
		}
	case !errors.Is(err, storage.ErrNotFound):
		s.log.WithError(err).Warn("failed to load active session")
	}
}

// SaveWorkout freezes the given exercises into an immutable Workout,
// prepends it to history, and persists the full history. Empty title or
// duration fall back to "Workout Session" / "00:00". The active session
// is left untouched; the caller decides what the next session holds.
func (s *WorkoutStore) SaveWorkout(exercises []models.Exercise, title, duration string) models.Workout {
	if title == "" {
		title = "Workout Session"
	}
	if duration == "" {
		duration = "00:00"
	}

	w := models.Workout{
		ID:          uuid.New().String(),
		Title:       title,
		Date:        time.Now().Format("Jan 2, 2006"),
		Duration:    duration,
		Exercises:   models.CloneExercises(exercises),
		TotalVolume: TotalVolume(exercises),
		Emoji:       workoutEmojis[rand.IntN(len(workoutEmojis))],
	}

	s.mu.Lock()
	s.history = append([]models.Workout{w}, s.history...)
	s.persistHistory()
	s.mu.Unlock()

	return w
}

// TotalVolume sums weight x reps over completed sets. Sets whose weight
// or reps do not parse as numbers contribute nothing.
func TotalVolume(exercises []models.Exercise) float64 {
	var total float64
	for _, ex := range exercises {
		for _, set := range ex.Sets {
			if !set.IsCompleted {
				continue
			}
			weight, werr := strconv.ParseFloat(set.Weight, 64)
			reps, rerr := strconv.ParseFloat(set.Reps, 64)
			if werr != nil || rerr != nil {
				continue
			}
			total += weight * reps
		}
	}
	return total
}

// SetActiveWorkout replaces the active session wholesale and persists
// it. The store does not validate IDs; callers mint them.
func (s *WorkoutStore) SetActiveWorkout(exercises []models.Exercise) {
	s.mu.Lock()
	s.active = exercises
	s.persistActive()
	s.mu.Unlock()
}

// ActiveWorkout returns a deep copy of the in-progress session.
func (s *WorkoutStore) ActiveWorkout() []models.Exercise {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CloneExercises(s.active)
}

// History returns the saved workouts, most recent first.
func (s *WorkoutStore) History() []models.Workout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Workout(nil), s.history...)
}

// WriteErrors exposes persistence failures for observers.
func (s *WorkoutStore) WriteErrors() <-chan error {
	return s.writer.Errors()
}

// Close drains pending writes. The blob itself is closed by its owner.
func (s *WorkoutStore) Close() {
	s.writer.Wait()
}

func (s *WorkoutStore) persistHistory() {
	data, err := json.Marshal(s.history)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode workout history")
		return
	}
	s.writer.Write(WorkoutHistoryKey, data)
}

func (s *WorkoutStore) persistActive() {
	data, err := json.Marshal(s.active)
	if err != nil {
		s.log.WithError(err).Warn("failed to encode active session")
		return
	}
	s.writer.Write(ActiveSessionKey, data)
}
