// ABOUTME: Set, Exercise, and Workout models for strength training sessions.
// ABOUTME: Weight and reps stay as entered text until arithmetic needs them.
package models

import (
	"github.com/google/uuid"
)

// Set is a single set within an exercise. Weight and reps are kept as
// text so a half-filled set can exist while a session is live; parse
// before doing math. Sets are mutable until the owning workout is saved.
type Set struct {
	ID          string `json:"id"`
	Weight      string `json:"weight"`
	Reps        string `json:"reps"`
	IsCompleted bool   `json:"isCompleted"`
}

// NewSet creates an incomplete set with a generated ID.
func NewSet(weight, reps string) Set {
	return Set{
		ID:     uuid.New().String(),
		Weight: weight,
		Reps:   reps,
	}
}

// Exercise is one exercise within a workout session. Name is free text,
// not a reference into the catalog.
type Exercise struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sets []Set  `json:"sets"`
}

// NewExercise creates an exercise with a single empty set.
func NewExercise(name string) Exercise {
	return Exercise{
		ID:   uuid.New().String(),
		Name: name,
		Sets: []Set{NewSet("", "")},
	}
}

// Workout is a completed session snapshot. It is created once, at save
// time, and never modified afterwards. TotalVolume is computed at save
// time and frozen; it is not recomputed retroactively.
type Workout struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Date        string     `json:"date"`
	Duration    string     `json:"duration"`
	Exercises   []Exercise `json:"exercises"`
	TotalVolume float64    `json:"totalVolume"`
	Emoji       string     `json:"emoji"`
}

// CloneExercises deep-copies an exercise sequence so a saved workout
// cannot be mutated through the live session's slices.
func CloneExercises(exercises []Exercise) []Exercise {
	out := make([]Exercise, len(exercises))
	for i, ex := range exercises {
		out[i] = ex
		out[i].Sets = append([]Set(nil), ex.Sets...)
	}
	return out
}
