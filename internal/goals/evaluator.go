// Package goals decides which of a user's goals a freshly logged workout meets.
package goals

import (
	"github.com/misterclayt0n/stride/internal/metrics"
	"github.com/misterclayt0n/stride/internal/models"
)

// Result of evaluating one workout. Met is true iff MetGoals is non-empty.
type Result struct {
	Met      bool
	MetGoals []models.Goal
}

// Evaluate compares the workout against every candidate goal of the same
// activity and category. Candidates for other activities are ignored, so an
// unfiltered goal list is fine.
//
// Nothing is remembered between calls: logging again against a goal that was
// already met reports it as met again. A goal field left at 0 is satisfied by
// any workout value for ">=" checks. Cardio distances and speeds are compared
// in kilometres, so a workout logged in km can meet a goal set in miles.
func Evaluate(w models.Workout, candidates []models.Goal) Result {
	var res Result
	for _, g := range candidates {
		if g.Activity != w.Activity || g.Category != w.Category {
			continue
		}
		if meets(w, g) {
			res.MetGoals = append(res.MetGoals, g)
		}
	}
	res.Met = len(res.MetGoals) > 0
	return res
}

func meets(w models.Workout, g models.Goal) bool {
	if w.Category == models.CategoryStrength {
		return w.Weight >= g.LoadGoal && w.Reps >= g.RepsGoal
	}

	if g.LogMethod == models.LogMethodSpeed {
		return km(w.Speed, w.Unit) >= km(g.SpeedGoal, g.Unit) && w.Duration >= g.TimeGoal
	}
	// Distance goals: cover at least the distance within the time.
	return km(w.Distance, w.Unit) >= km(g.DistGoal, g.Unit) && w.Duration <= g.TimeGoal
}

// km converts a distance (or a per-hour speed) to kilometres. An unset unit
// means kilometres.
func km(v float64, unit models.DistanceUnit) float64 {
	return metrics.ToKilometres(v, unit == models.UnitMiles)
}
