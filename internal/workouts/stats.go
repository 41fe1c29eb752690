package workouts

import (
	"encoding/json"
	"math"
)

// PerExercise holds one value for each ExerciseKind.
type PerExercise[T int | float64] [exerciseKindsCount]T

func (p PerExercise[T]) Get(kind ExerciseKind) T {
	return p[kind]
}

func (p PerExercise[T]) MarshalJSON() ([]byte, error) {
	m := make(map[string]T, len(p))
	for _, kind := range ExerciseKinds {
		m[kind.String()] = p[kind]
	}
	return json.Marshal(m)
}

type WorkoutStats struct {
	MaxPerSet    PerExercise[int]     `json:"maxPerSet"`
	TotalReps    PerExercise[int]     `json:"totalReps"`
	Averages     PerExercise[float64] `json:"averages"`
	WorkoutCount int                  `json:"workoutCount"`
}

// CalculateStats reduces the workouts into per exercise max, total and average.
// Zero values are treated as "not done" and are left out of the max and the
// average denominator, independently for each exercise field.
func CalculateStats(workouts []WorkoutRecord) WorkoutStats {
	stats := WorkoutStats{
		WorkoutCount: len(workouts),
	}

	for _, kind := range ExerciseKinds {
		var maxPerSet, total, totalsCount int
		for _, w := range workouts {
			rec := w.Exercises[kind]
			if rec.Max > 0 && rec.Max > maxPerSet {
				maxPerSet = rec.Max
			}
			if rec.Total > 0 {
				total += rec.Total
				totalsCount++
			}
		}

		stats.MaxPerSet[kind] = maxPerSet
		stats.TotalReps[kind] = total
		if totalsCount > 0 {
			stats.Averages[kind] = roundToTenth(float64(total) / float64(totalsCount))
		}
	}

	return stats
}

// roundToTenth rounds half up on the tenths digit
func roundToTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
