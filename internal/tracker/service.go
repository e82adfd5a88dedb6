// Package tracker runs the workout logging flow: validate, evaluate goals,
// persist, report.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/stride/internal/goals"
	"github.com/misterclayt0n/stride/internal/metrics"
	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/progress"
	"github.com/misterclayt0n/stride/internal/storage"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

//go:generate mockgen -source=service.go -destination=mocks_test.go -package=tracker_test

// Store is the slice of the document store the tracker works against.
type Store interface {
	CreateWorkout(ctx context.Context, w models.Workout) error
	ListWorkouts(ctx context.Context, userID string, f storage.WorkoutFilter) ([]models.Workout, error)
	CreateGoal(ctx context.Context, g models.Goal) error
	ListGoals(ctx context.Context, userID, activity string, category models.Category) ([]models.Goal, error)
}

var ErrNoWorkouts = errors.New("no workouts logged for this activity")

type Service struct {
	store Store

	Now   func() time.Time
	NewID func() string
}

func NewService(store Store) *Service {
	return &Service{
		store: store,
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
	}
}

type LogWorkoutInput struct {
	UserID    string
	Activity  string
	Category  models.Category
	LogMethod models.LogMethod

	Weight     float64
	WeightUnit models.WeightUnit
	Reps       int
	Sets       int

	Distance float64
	Duration float64
	Unit     models.DistanceUnit
	Speed    float64

	Date  time.Time
	Notes string
}

// LogResult is the stored workout plus what the caller shows about it.
type LogResult struct {
	Workout   models.Workout
	MetGoals  []models.Goal
	Pace      string
	OneRepMax float64
	Volume    float64
}

// LogWorkout validates the input, checks it against the user's goals for the
// activity and stores it with GoalMet set accordingly.
func (s *Service) LogWorkout(ctx context.Context, in LogWorkoutInput) (*LogResult, error) {
	if err := validateWorkout(in); err != nil {
		return nil, err
	}

	w := s.newWorkout(in)

	candidates, err := s.store.ListGoals(ctx, w.UserID, w.Activity, w.Category)
	if err != nil {
		return nil, fmt.Errorf("load goals: %w", err)
	}

	res := goals.Evaluate(w, candidates)
	w.GoalMet = res.Met

	if err := s.store.CreateWorkout(ctx, w); err != nil {
		return nil, err
	}

	logger := log.WithFields(log.Fields{"user": w.UserID, "workout": w.ID, "activity": w.Activity})
	logger.Debug("workout logged")
	for _, g := range res.MetGoals {
		logger.WithField("goal", g.ID).Info("goal met")
	}

	return resultFor(w, res.MetGoals), nil
}

func (s *Service) newWorkout(in LogWorkoutInput) models.Workout {
	now := s.Now()
	date := in.Date
	if date.IsZero() {
		date = now
	}

	w := models.Workout{
		ID:        s.NewID(),
		UserID:    in.UserID,
		Activity:  in.Activity,
		Category:  in.Category,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Notes:     in.Notes,
		CreatedAt: now.UTC().Truncate(time.Second),
	}

	if in.Category == models.CategoryStrength {
		w.Weight = in.Weight
		w.WeightUnit = in.WeightUnit
		if w.WeightUnit == "" {
			w.WeightUnit = models.UnitKilograms
		}
		w.Reps = in.Reps
		w.Sets = in.Sets
		if w.Sets == 0 {
			w.Sets = 1
		}
		return w
	}

	w.LogMethod = in.LogMethod
	if w.LogMethod == "" {
		w.LogMethod = models.LogMethodDistance
	}
	w.Unit = in.Unit
	if w.Unit == "" {
		w.Unit = models.UnitKilometres
	}
	w.Duration = in.Duration
	w.Speed = in.Speed
	w.Distance = in.Distance
	if w.LogMethod == models.LogMethodSpeed && w.Distance == 0 {
		w.Distance = metrics.DistanceFromSpeed(in.Speed, in.Duration)
	}
	return w
}

func resultFor(w models.Workout, met []models.Goal) *LogResult {
	r := &LogResult{Workout: w, MetGoals: met}
	if w.IsStrength() {
		r.OneRepMax = metrics.EstimateOneRepMax(w.Weight, w.Reps)
		r.Volume = metrics.Volume(w.Weight, w.Reps, w.Sets)
	} else {
		r.Pace = metrics.ComputePace(w.Distance, w.Duration)
	}
	return r
}

// LogRegime logs every entry of the regime as a workout on date. All entries
// are validated before the first one is stored.
func (s *Service) LogRegime(ctx context.Context, userID string, regime *models.Regime, date time.Time) ([]*LogResult, error) {
	inputs := make([]LogWorkoutInput, 0, len(regime.Entries))
	var errs error
	for _, e := range regime.Entries {
		in := inputFromEntry(userID, e, date)
		if err := validateWorkout(in); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", e.Activity, err))
			continue
		}
		inputs = append(inputs, in)
	}
	if errs != nil {
		return nil, errs
	}

	results := make([]*LogResult, 0, len(inputs))
	for _, in := range inputs {
		r, err := s.LogWorkout(ctx, in)
		if err != nil {
			return results, fmt.Errorf("log %s: %w", in.Activity, err)
		}
		results = append(results, r)
	}

	log.WithFields(log.Fields{"user": userID, "regime": regime.Name, "workouts": len(results)}).Info("regime logged")
	return results, nil
}

func inputFromEntry(userID string, e models.RegimeEntry, date time.Time) LogWorkoutInput {
	return LogWorkoutInput{
		UserID:     userID,
		Activity:   e.Activity,
		Category:   e.Category,
		LogMethod:  e.LogMethod,
		Weight:     e.Weight,
		WeightUnit: e.WeightUnit,
		Reps:       e.Reps,
		Sets:       e.Sets,
		Distance:   e.Distance,
		Duration:   e.Duration,
		Unit:       e.Unit,
		Speed:      e.Speed,
		Date:       date,
		Notes:      e.Notes,
	}
}

func (s *Service) ListWorkouts(ctx context.Context, userID string, f storage.WorkoutFilter) ([]models.Workout, error) {
	return s.store.ListWorkouts(ctx, userID, f)
}

// Progress builds the progression series of one activity. An empty metric
// picks the default for the activity's category.
func (s *Service) Progress(ctx context.Context, userID, activity, metric string) ([]progress.Point, progress.Metric, error) {
	workouts, err := s.store.ListWorkouts(ctx, userID, storage.WorkoutFilter{Activity: activity})
	if err != nil {
		return nil, "", err
	}
	if len(workouts) == 0 {
		return nil, "", fmt.Errorf("%q: %w", activity, ErrNoWorkouts)
	}

	m, err := progress.ParseMetric(workouts[0].Category, metric)
	if err != nil {
		return nil, "", err
	}
	return progress.Series(workouts, activity, m), m, nil
}

func (s *Service) Summary(ctx context.Context, userID string) (progress.Summary, error) {
	workouts, err := s.store.ListWorkouts(ctx, userID, storage.WorkoutFilter{})
	if err != nil {
		return progress.Summary{}, err
	}
	return progress.Summarize(workouts, s.Now()), nil
}
