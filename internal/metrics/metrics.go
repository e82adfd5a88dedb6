// Package metrics derives display values (pace, projected distance,
// estimated 1RM, volume) from raw logged numbers. Every function is total:
// bad input degrades to a zero value instead of an error.
package metrics

import (
	"fmt"
	"math"
)

const (
	poundsPerKilogram = 2.20462262
	kilometresPerMile = 1.609344

	// Paces beyond this no longer fit the minutes field.
	maxPaceMinutes = math.MaxInt32
)

// ComputePace returns minutes per unit of distance formatted as "M:SS".
// Seconds are rounded and never carried into the minutes, so 4.9999 min/km
// renders as "4:60".
func ComputePace(distance, durationMinutes float64) string {
	if !positive(distance) || !positive(durationMinutes) {
		return "0:00"
	}

	pace := durationMinutes / distance
	if !finite(pace) || pace > maxPaceMinutes {
		return "0:00"
	}
	minutes := math.Floor(pace)
	seconds := math.Round((pace - minutes) * 60)

	return fmt.Sprintf("%d:%02d", int(minutes), int(seconds))
}

// PaceSeconds is the unformatted pace in seconds per unit, 0 when undefined.
func PaceSeconds(distance, durationMinutes float64) float64 {
	if !positive(distance) || !positive(durationMinutes) {
		return 0
	}
	return orZero(durationMinutes * 60 / distance)
}

// DistanceFromSpeed projects the distance covered at speed (units per hour)
// over durationMinutes, rounded to 2 decimals.
func DistanceFromSpeed(speed, durationMinutes float64) float64 {
	if !positive(speed) || !positive(durationMinutes) {
		return 0
	}
	return orZero(round2(speed * durationMinutes / 60))
}

// EstimateOneRepMax uses weight * (1 + reps/30). A single rep (or none) is
// its own estimate. Negative weights give 0.
func EstimateOneRepMax(weight float64, reps int) float64 {
	if !positive(weight) {
		return 0
	}
	if reps <= 1 {
		return weight
	}
	return orZero(math.Round(weight * (1 + float64(reps)/30)))
}

func Volume(weight float64, reps, sets int) float64 {
	if !positive(weight) || reps <= 0 || sets <= 0 {
		return 0
	}
	return orZero(weight * float64(reps) * float64(sets))
}

func ToKilograms(weight float64, pounds bool) float64 {
	if !finite(weight) {
		return 0
	}
	if pounds {
		return weight / poundsPerKilogram
	}
	return weight
}

func ToKilometres(distance float64, miles bool) float64 {
	if !finite(distance) {
		return 0
	}
	if miles {
		return distance * kilometresPerMile
	}
	return distance
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func orZero(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v
}

func positive(v float64) bool {
	return finite(v) && v > 0
}
