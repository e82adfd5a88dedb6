package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/misterclayt0n/stride/internal/metrics"
	"github.com/misterclayt0n/stride/internal/models"
)

type Summary struct {
	TotalWorkouts   int
	StrengthVolume  float64 // kg.
	CardioDistance  float64 // km.
	CardioMinutes   float64
	GoalsMet        int
	WeekStreak      int
	ActivityCounts  map[string]int
	PersonalRecords []PersonalRecord
}

// PersonalRecord is the best estimated 1RM (strength) or longest distance
// (cardio) logged for an activity.
type PersonalRecord struct {
	Activity string
	Category models.Category
	Value    float64
	Date     time.Time
}

// Summarize aggregates every workout. Weights are normalised to kilograms and
// distances to kilometres before summing.
func Summarize(workouts []models.Workout, now time.Time) Summary {
	s := Summary{ActivityCounts: make(map[string]int)}
	prs := make(map[string]PersonalRecord)

	for _, w := range workouts {
		s.TotalWorkouts++
		s.ActivityCounts[w.Activity]++
		if w.GoalMet {
			s.GoalsMet++
		}

		var v float64
		if w.IsStrength() {
			kg := metrics.ToKilograms(w.Weight, w.WeightUnit == models.UnitPounds)
			s.StrengthVolume += metrics.Volume(kg, w.Reps, w.Sets)
			v = metrics.EstimateOneRepMax(w.Weight, w.Reps)
		} else {
			s.CardioDistance += metrics.ToKilometres(w.Distance, w.Unit == models.UnitMiles)
			if w.Duration > 0 {
				s.CardioMinutes += w.Duration
			}
			v = w.Distance
		}

		if pr, ok := prs[w.Activity]; !ok || v > pr.Value {
			prs[w.Activity] = PersonalRecord{Activity: w.Activity, Category: w.Category, Value: v, Date: w.Date}
		}
	}

	for _, pr := range prs {
		s.PersonalRecords = append(s.PersonalRecords, pr)
	}
	sort.Slice(s.PersonalRecords, func(i, j int) bool {
		return s.PersonalRecords[i].Activity < s.PersonalRecords[j].Activity
	})

	s.WeekStreak = WeekStreak(workouts, now)
	return s
}

// WeekStreak counts consecutive ISO weeks, ending with the week of now, that
// have at least one workout.
func WeekStreak(workouts []models.Workout, now time.Time) int {
	weekSet := make(map[string]bool)
	for _, w := range workouts {
		year, week := w.Date.ISOWeek()
		weekSet[fmt.Sprintf("%d-%02d", year, week)] = true
	}

	streak := 0
	year, week := now.ISOWeek()
	for weekSet[fmt.Sprintf("%d-%02d", year, week)] {
		streak++
		now = now.AddDate(0, 0, -7)
		year, week = now.ISOWeek()
	}
	return streak
}
