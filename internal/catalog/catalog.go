// ABOUTME: Read-only exercise catalog and preset workout templates.
// ABOUTME: Reference data embedded as YAML; consulted, never written.
package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/liftlog/liftlog/internal/models"
)

// Difficulty levels used by catalog entries.
const (
	Beginner     = "Beginner"
	Intermediate = "Intermediate"
	Advanced     = "Advanced"
)

// Exercise is a catalog entry describing a movement. Catalog entries
// only seed new session exercises; sessions reference them by name, not
// by ID.
type Exercise struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Category   string   `yaml:"category" json:"category"`
	Benefits   string   `yaml:"benefits" json:"benefits"`
	Muscles    []string `yaml:"muscles" json:"muscles"`
	Difficulty string   `yaml:"difficulty" json:"difficulty"`
	Equipment  string   `yaml:"equipment" json:"equipment"`
}

// PresetSet is a prescribed weight/reps pair within a preset.
type PresetSet struct {
	Weight string `yaml:"weight" json:"weight"`
	Reps   string `yaml:"reps" json:"reps"`
}

// PresetExercise is one exercise within a preset template.
type PresetExercise struct {
	Name string      `yaml:"name" json:"name"`
	Sets []PresetSet `yaml:"sets" json:"sets"`
}

// Preset is a named workout template used to prepopulate a session.
type Preset struct {
	ID          string           `yaml:"id" json:"id"`
	Title       string           `yaml:"title" json:"title"`
	Description string           `yaml:"description" json:"description"`
	Exercises   []PresetExercise `yaml:"exercises" json:"exercises"`
}

//go:embed exercises.yaml
var exercisesYAML []byte

//go:embed presets.yaml
var presetsYAML []byte

var (
	exercises []Exercise
	presets   []Preset
)

func init() {
	if err := yaml.Unmarshal(exercisesYAML, &exercises); err != nil {
		panic(fmt.Sprintf("catalog: bad exercise data: %v", err))
	}
	if err := yaml.Unmarshal(presetsYAML, &presets); err != nil {
		panic(fmt.Sprintf("catalog: bad preset data: %v", err))
	}
}

// Exercises returns the full catalog.
func Exercises() []Exercise {
	return append([]Exercise(nil), exercises...)
}

// Presets returns the preset workout templates.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// FindExercise looks up a catalog entry by name, case-insensitively.
func FindExercise(name string) (Exercise, bool) {
	for _, ex := range exercises {
		if strings.EqualFold(ex.Name, name) {
			return ex, true
		}
	}
	return Exercise{}, false
}

// FindPreset looks up a preset by its short ID, e.g. "push-a".
func FindPreset(id string) (Preset, bool) {
	for _, p := range presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Session expands a preset into a fresh session with newly minted IDs
// and every set incomplete.
func (p Preset) Session() []models.Exercise {
	out := make([]models.Exercise, 0, len(p.Exercises))
	for _, pe := range p.Exercises {
		ex := models.Exercise{
			ID:   uuid.New().String(),
			Name: pe.Name,
		}
		for _, ps := range pe.Sets {
			ex.Sets = append(ex.Sets, models.Set{
				ID:     uuid.New().String(),
				Weight: ps.Weight,
				Reps:   ps.Reps,
			})
		}
		out = append(out, ex)
	}
	return out
}
