package tracker

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/misterclayt0n/stride/internal/models"
	"go.uber.org/multierr"
)

var ErrInvalidInput = errors.New("invalid input")

// validateWorkout reports every problem with the input at once.
func validateWorkout(in LogWorkoutInput) error {
	var errs error
	add := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if in.UserID == "" {
		add("missing user")
	}
	if strings.TrimSpace(in.Activity) == "" {
		add("activity is required")
	}
	if _, err := models.ParseCategory(string(in.Category)); err != nil {
		add("%v", err)
	}

	for name, v := range map[string]float64{
		"weight":   in.Weight,
		"distance": in.Distance,
		"duration": in.Duration,
		"speed":    in.Speed,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			add("%s must be a non-negative number", name)
		}
	}
	if in.Reps < 0 {
		add("reps must not be negative")
	}
	if in.Sets < 0 {
		add("sets must not be negative")
	}

	switch in.Category {
	case models.CategoryStrength:
		if _, err := models.ParseWeightUnit(string(in.WeightUnit)); err != nil {
			add("%v", err)
		}
		if in.Reps == 0 {
			add("reps are required for strength workouts")
		}
		if in.Distance != 0 || in.Duration != 0 || in.Speed != 0 {
			add("distance, duration and speed belong to cardio workouts")
		}
	case models.CategoryCardio:
		if _, err := models.ParseDistanceUnit(string(in.Unit)); err != nil {
			add("%v", err)
		}
		method, err := models.ParseLogMethod(string(in.LogMethod))
		if err != nil {
			add("%v", err)
		}
		if in.Duration <= 0 {
			add("duration is required for cardio workouts")
		}
		if method == models.LogMethodSpeed && in.Speed <= 0 && in.Distance <= 0 {
			add("speed is required when logging by speed")
		}
		if method == models.LogMethodDistance && in.Distance <= 0 {
			add("distance is required when logging by distance")
		}
		if in.Weight != 0 || in.Reps != 0 || in.Sets != 0 {
			add("weight, reps and sets belong to strength workouts")
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	return nil
}

// validateGoal checks that only the fields of the goal's category are set.
func validateGoal(g models.Goal) error {
	var errs error
	add := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, fmt.Errorf(format, args...))
	}

	if g.UserID == "" {
		add("missing user")
	}
	if strings.TrimSpace(g.Activity) == "" {
		add("activity is required")
	}
	if _, err := models.ParseCategory(string(g.Category)); err != nil {
		add("%v", err)
	}

	for name, v := range map[string]float64{
		"dist_goal":  g.DistGoal,
		"time_goal":  g.TimeGoal,
		"speed_goal": g.SpeedGoal,
		"load_goal":  g.LoadGoal,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			add("%s must be a non-negative number", name)
		}
	}
	if g.RepsGoal < 0 {
		add("reps_goal must not be negative")
	}

	switch g.Category {
	case models.CategoryStrength:
		if g.DistGoal != 0 || g.TimeGoal != 0 || g.SpeedGoal != 0 {
			add("dist_goal, time_goal and speed_goal belong to cardio goals")
		}
		if g.LoadGoal == 0 && g.RepsGoal == 0 {
			add("a strength goal needs load_goal or reps_goal")
		}
	case models.CategoryCardio:
		if g.LoadGoal != 0 || g.RepsGoal != 0 {
			add("load_goal and reps_goal belong to strength goals")
		}
		if _, err := models.ParseDistanceUnit(string(g.Unit)); err != nil {
			add("%v", err)
		}
		method, err := models.ParseLogMethod(string(g.LogMethod))
		if err != nil {
			add("%v", err)
		}
		if method == models.LogMethodSpeed && g.SpeedGoal == 0 {
			add("a speed goal needs speed_goal")
		}
		if method == models.LogMethodDistance && g.DistGoal == 0 {
			add("a distance goal needs dist_goal")
		}
		// Time is an upper bound for distance goals; 0 can never be met.
		if method == models.LogMethodDistance && g.TimeGoal == 0 {
			add("a distance goal needs time_goal")
		}
	}

	if errs != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, errs)
	}
	return nil
}
