// Package progress builds per-activity progression series and overall
// training summaries from logged workouts.
package progress

import (
	"fmt"
	"sort"
	"time"

	"github.com/misterclayt0n/stride/internal/metrics"
	"github.com/misterclayt0n/stride/internal/models"
)

type Metric string

const (
	MetricOneRepMax Metric = "one-rep-max"
	MetricWeight    Metric = "weight"
	MetricVolume    Metric = "volume"
	MetricReps      Metric = "reps"
	MetricDistance  Metric = "distance"
	MetricDuration  Metric = "duration"
	MetricPace      Metric = "pace"
	MetricSpeed     Metric = "speed"
)

var categoryMetrics = map[models.Category][]Metric{
	models.CategoryStrength: {MetricOneRepMax, MetricWeight, MetricVolume, MetricReps},
	models.CategoryCardio:   {MetricDistance, MetricDuration, MetricPace, MetricSpeed},
}

// MetricsFor lists the metrics that make sense for a category; the first one
// is the default chart.
func MetricsFor(c models.Category) []Metric {
	return categoryMetrics[c]
}

func ParseMetric(c models.Category, s string) (Metric, error) {
	if s == "" {
		return categoryMetrics[c][0], nil
	}
	for _, m := range categoryMetrics[c] {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("metric %q is not available for %s workouts", s, c)
}

// Point is one day of a progression chart.
type Point struct {
	Date     time.Time
	Value    float64
	Workouts int
}

// Series groups the workouts of one activity by day and reduces each day to
// a single value of the requested metric. Points are in ascending date order.
func Series(workouts []models.Workout, activity string, metric Metric) []Point {
	byDay := make(map[time.Time]*Point)
	for _, w := range workouts {
		if w.Activity != activity {
			continue
		}
		v, ok := value(w, metric)
		if !ok {
			continue
		}

		day := w.Date.Truncate(24 * time.Hour)
		p, exists := byDay[day]
		if !exists {
			byDay[day] = &Point{Date: day, Value: v, Workouts: 1}
			continue
		}
		p.Workouts++
		p.Value = combine(metric, p.Value, v)
	}

	points := make([]Point, 0, len(byDay))
	for _, p := range byDay {
		points = append(points, *p)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

func value(w models.Workout, metric Metric) (float64, bool) {
	switch metric {
	case MetricOneRepMax:
		return metrics.EstimateOneRepMax(w.Weight, w.Reps), w.IsStrength()
	case MetricWeight:
		return w.Weight, w.IsStrength()
	case MetricVolume:
		return metrics.Volume(w.Weight, w.Reps, w.Sets), w.IsStrength()
	case MetricReps:
		return float64(w.Reps), w.IsStrength()
	case MetricDistance:
		return w.Distance, !w.IsStrength()
	case MetricDuration:
		return w.Duration, !w.IsStrength()
	case MetricPace:
		// Workouts without a usable pace would show up as impossibly fast.
		pace := metrics.PaceSeconds(w.Distance, w.Duration)
		return pace, !w.IsStrength() && pace > 0
	case MetricSpeed:
		return w.Speed, !w.IsStrength()
	}
	return 0, false
}

func combine(metric Metric, acc, v float64) float64 {
	switch metric {
	case MetricVolume, MetricDistance, MetricDuration:
		return acc + v
	case MetricPace:
		if v < acc {
			return v
		}
		return acc
	default:
		if v > acc {
			return v
		}
		return acc
	}
}

// Best returns the best point of a series: the lowest for pace, the highest
// for everything else.
func Best(points []Point, metric Metric) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if metric == MetricPace {
			if p.Value < best.Value {
				best = p
			}
		} else if p.Value > best.Value {
			best = p
		}
	}
	return best, true
}
