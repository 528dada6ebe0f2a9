// ABOUTME: Pure derivations over workout history.
// ABOUTME: 1RM estimates, per-exercise best lifts, and volume progression.
package analytics

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/liftlog/liftlog/internal/models"
)

// OneRepMax estimates a one-rep max using the Epley formula. A single
// rep is already a true max and is returned unchanged; estimates are
// rounded to the nearest whole number.
func OneRepMax(weight float64, reps int) float64 {
	if reps == 1 {
		return weight
	}
	return math.Round(weight * (1 + 0.0333*float64(reps)))
}

// BestLift is the strongest recorded set for one exercise name.
type BestLift struct {
	Exercise string  `json:"exercise"`
	Weight   float64 `json:"weight"`
	Reps     int     `json:"reps"`
	OneRM    float64 `json:"oneRM"`
}

// BestLifts scans every completed set across history and keeps, per
// exercise name, the set with the highest estimated 1RM. Names group by
// exact match. Sets with unparsable weight or reps are skipped. Only a
// strictly greater 1RM replaces the held set, so ties keep the first
// set encountered in history order. Output is sorted by 1RM descending.
func BestLifts(history []models.Workout) []BestLift {
	best := make(map[string]BestLift)
	var order []string

	for _, w := range history {
		for _, ex := range w.Exercises {
			for _, set := range ex.Sets {
				if !set.IsCompleted {
					continue
				}
				weight, werr := strconv.ParseFloat(set.Weight, 64)
				reps, rerr := strconv.Atoi(set.Reps)
				if werr != nil || rerr != nil {
					continue
				}

				oneRM := OneRepMax(weight, reps)
				existing, seen := best[ex.Name]
				if !seen {
					order = append(order, ex.Name)
				}
				if !seen || oneRM > existing.OneRM {
					best[ex.Name] = BestLift{
						Exercise: ex.Name,
						Weight:   weight,
						Reps:     reps,
						OneRM:    oneRM,
					}
				}
			}
		}
	}

	lifts := make([]BestLift, 0, len(order))
	for _, name := range order {
		lifts = append(lifts, best[name])
	}
	sort.SliceStable(lifts, func(i, j int) bool {
		return lifts[i].OneRM > lifts[j].OneRM
	})
	return lifts
}

// VolumePoint pairs a workout's short date with its frozen volume.
type VolumePoint struct {
	Date   string  `json:"date"`
	Volume float64 `json:"volume"`
}

// VolumeSeries maps history into chronological (oldest-first) volume
// points. Dates like "Feb 1, 2024" are truncated to "Feb 1". Volume is
// the value frozen at save time, never recomputed.
func VolumeSeries(history []models.Workout) []VolumePoint {
	points := make([]VolumePoint, 0, len(history))
	for i := len(history) - 1; i >= 0; i-- {
		date, _, _ := strings.Cut(history[i].Date, ",")
		points = append(points, VolumePoint{
			Date:   date,
			Volume: history[i].TotalVolume,
		})
	}
	return points
}
