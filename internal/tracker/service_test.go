package tracker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/progress"
	"github.com/misterclayt0n/stride/internal/storage"
	"github.com/misterclayt0n/stride/internal/tracker"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var testNow = time.Date(2024, 3, 6, 18, 30, 0, 0, time.UTC)

func newService(t *testing.T) (*tracker.Service, *MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := NewMockStore(ctrl)

	svc := tracker.NewService(store)
	svc.Now = func() time.Time { return testNow }
	n := 0
	svc.NewID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	return svc, store
}

func TestLogWorkout_StrengthMeetsGoal(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	met := models.Goal{ID: "g-1", Activity: "Squat", Category: models.CategoryStrength, LoadGoal: 100, RepsGoal: 5}
	missed := models.Goal{ID: "g-2", Activity: "Squat", Category: models.CategoryStrength, LoadGoal: 120, RepsGoal: 5}
	store.EXPECT().
		ListGoals(gomock.Any(), "u-1", "Squat", models.CategoryStrength).
		Return([]models.Goal{met, missed}, nil)

	var saved models.Workout
	store.EXPECT().
		CreateWorkout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Workout) error {
			saved = w
			return nil
		})

	res, err := svc.LogWorkout(ctx, tracker.LogWorkoutInput{
		UserID:   "u-1",
		Activity: "Squat",
		Category: models.CategoryStrength,
		Weight:   100,
		Reps:     5,
		Sets:     3,
		Date:     time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, saved.GoalMet)
	assert.Equal(t, "id-1", saved.ID)
	assert.Equal(t, models.UnitKilograms, saved.WeightUnit)
	assert.Equal(t, time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), saved.Date)
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Equal(t, saved, res.Workout)

	assert.Equal(t, []models.Goal{met}, res.MetGoals)
	assert.Equal(t, 117.0, res.OneRepMax)
	assert.Equal(t, 1500.0, res.Volume)
	assert.Empty(t, res.Pace)
}

func TestLogWorkout_CardioBySpeedDerivesDistance(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	goal := models.Goal{ID: "g-1", Activity: "Run", Category: models.CategoryCardio, LogMethod: models.LogMethodSpeed, SpeedGoal: 10, TimeGoal: 30}
	store.EXPECT().ListGoals(gomock.Any(), "u-1", "Run", models.CategoryCardio).Return([]models.Goal{goal}, nil)
	store.EXPECT().CreateWorkout(gomock.Any(), gomock.Any()).Return(nil)

	res, err := svc.LogWorkout(ctx, tracker.LogWorkoutInput{
		UserID:    "u-1",
		Activity:  "Run",
		Category:  models.CategoryCardio,
		LogMethod: models.LogMethodSpeed,
		Speed:     12,
		Duration:  30,
	})
	require.NoError(t, err)

	assert.Equal(t, 6.0, res.Workout.Distance)
	assert.Equal(t, models.UnitKilometres, res.Workout.Unit)
	assert.Equal(t, "5:00", res.Pace)
	assert.True(t, res.Workout.GoalMet)
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), res.Workout.Date, "defaults to today")
}

func TestLogWorkout_NoGoalMet(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	goal := models.Goal{ID: "g-1", Activity: "Run", Category: models.CategoryCardio, DistGoal: 5, TimeGoal: 25}
	store.EXPECT().ListGoals(gomock.Any(), "u-1", "Run", models.CategoryCardio).Return([]models.Goal{goal}, nil)
	store.EXPECT().
		CreateWorkout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, w models.Workout) error {
			assert.False(t, w.GoalMet)
			return nil
		})

	res, err := svc.LogWorkout(ctx, tracker.LogWorkoutInput{
		UserID:   "u-1",
		Activity: "Run",
		Category: models.CategoryCardio,
		Distance: 5,
		Duration: 26,
	})
	require.NoError(t, err)
	assert.Empty(t, res.MetGoals)
	assert.Equal(t, models.LogMethodDistance, res.Workout.LogMethod)
}

func TestLogWorkout_ValidationAggregatesErrors(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.LogWorkout(context.Background(), tracker.LogWorkoutInput{
		UserID:   "u-1",
		Category: models.CategoryStrength,
		Weight:   -5,
		Distance: 3,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, tracker.ErrInvalidInput)
	assert.Contains(t, err.Error(), "activity is required")
	assert.Contains(t, err.Error(), "weight must be a non-negative number")
	assert.Contains(t, err.Error(), "reps are required")
	assert.Contains(t, err.Error(), "belong to cardio workouts")
}

func TestLogWorkout_UnknownCategory(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.LogWorkout(context.Background(), tracker.LogWorkoutInput{
		UserID:   "u-1",
		Activity: "Yoga",
		Category: "flexibility",
	})
	assert.ErrorIs(t, err, tracker.ErrInvalidInput)
}

func TestLogWorkout_GoalLookupFailureStoresNothing(t *testing.T) {
	svc, store := newService(t)

	boom := errors.New("connection reset")
	store.EXPECT().ListGoals(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.LogWorkout(context.Background(), tracker.LogWorkoutInput{
		UserID:   "u-1",
		Activity: "Squat",
		Category: models.CategoryStrength,
		Weight:   100,
		Reps:     5,
	})
	assert.ErrorIs(t, err, boom)
}

func TestLogRegime(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	regime := &models.Regime{
		Name: "Push Day",
		Entries: []models.RegimeEntry{
			{Activity: "Bench Press", Category: models.CategoryStrength, Weight: 80, Reps: 8, Sets: 4},
			{Activity: "Run", Category: models.CategoryCardio, Distance: 3, Duration: 18},
		},
	}
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	store.EXPECT().ListGoals(gomock.Any(), "u-1", "Bench Press", models.CategoryStrength).Return(nil, nil)
	store.EXPECT().ListGoals(gomock.Any(), "u-1", "Run", models.CategoryCardio).Return(nil, nil)
	store.EXPECT().CreateWorkout(gomock.Any(), gomock.Any()).Return(nil).Times(2)

	results, err := svc.LogRegime(ctx, "u-1", regime, date)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "Bench Press", results[0].Workout.Activity)
	assert.Equal(t, date, results[1].Workout.Date)
	assert.Equal(t, "6:00", results[1].Pace)
}

func TestLogRegime_InvalidEntryStoresNothing(t *testing.T) {
	svc, _ := newService(t)

	regime := &models.Regime{
		Name: "Broken",
		Entries: []models.RegimeEntry{
			{Activity: "Bench Press", Category: models.CategoryStrength, Weight: 80, Reps: 8},
			{Activity: "Run", Category: models.CategoryCardio},
		},
	}

	_, err := svc.LogRegime(context.Background(), "u-1", regime, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Run")
}

func TestProgress(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	workouts := []models.Workout{
		{Activity: "Squat", Category: models.CategoryStrength, Weight: 100, Reps: 5, Sets: 3, Date: day(3)},
		{Activity: "Squat", Category: models.CategoryStrength, Weight: 90, Reps: 1, Sets: 1, Date: day(1)},
	}
	store.EXPECT().
		ListWorkouts(gomock.Any(), "u-1", storage.WorkoutFilter{Activity: "Squat"}).
		Return(workouts, nil)

	points, metric, err := svc.Progress(ctx, "u-1", "Squat", "")
	require.NoError(t, err)
	assert.Equal(t, progress.MetricOneRepMax, metric)
	require.Len(t, points, 2)
	assert.Equal(t, day(1), points[0].Date)
	assert.Equal(t, 90.0, points[0].Value)
	assert.Equal(t, 117.0, points[1].Value)
}

func TestProgress_Errors(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	store.EXPECT().ListWorkouts(gomock.Any(), "u-1", storage.WorkoutFilter{Activity: "Swim"}).Return(nil, nil)
	_, _, err := svc.Progress(ctx, "u-1", "Swim", "")
	assert.ErrorIs(t, err, tracker.ErrNoWorkouts)

	store.EXPECT().
		ListWorkouts(gomock.Any(), "u-1", storage.WorkoutFilter{Activity: "Squat"}).
		Return([]models.Workout{{Activity: "Squat", Category: models.CategoryStrength, Weight: 100, Reps: 5}}, nil)
	_, _, err = svc.Progress(ctx, "u-1", "Squat", "pace")
	assert.Error(t, err)
}

func TestSummary(t *testing.T) {
	svc, store := newService(t)

	store.EXPECT().ListWorkouts(gomock.Any(), "u-1", storage.WorkoutFilter{}).Return([]models.Workout{
		{Activity: "Run", Category: models.CategoryCardio, Distance: 5, Duration: 25, Unit: models.UnitKilometres, GoalMet: true, Date: testNow},
	}, nil)

	s, err := svc.Summary(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, 1, s.TotalWorkouts)
	assert.Equal(t, 1, s.GoalsMet)
	assert.Equal(t, 5.0, s.CardioDistance)
	assert.Equal(t, 1, s.WeekStreak)
}

func TestAddGoal(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	store.EXPECT().
		CreateGoal(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, g models.Goal) error {
			assert.Equal(t, models.LogMethodDistance, g.LogMethod)
			assert.Equal(t, models.UnitKilometres, g.Unit)
			return nil
		})

	g, err := svc.AddGoal(ctx, tracker.GoalInput{UserID: "u-1", Activity: "Run", Category: models.CategoryCardio, DistGoal: 5, TimeGoal: 25})
	require.NoError(t, err)
	assert.Equal(t, "id-1", g.ID)

	_, err = svc.AddGoal(ctx, tracker.GoalInput{UserID: "u-1", Activity: "Squat", Category: models.CategoryStrength, LoadGoal: 100, DistGoal: 5})
	assert.ErrorIs(t, err, tracker.ErrInvalidInput)

	_, err = svc.AddGoal(ctx, tracker.GoalInput{UserID: "u-1", Activity: "Squat", Category: models.CategoryStrength})
	assert.ErrorIs(t, err, tracker.ErrInvalidInput)
	_, err = svc.AddGoal(ctx, tracker.GoalInput{UserID: "u-1", Activity: "Run", Category: models.CategoryCardio, DistGoal: 5})
	require.ErrorIs(t, err, tracker.ErrInvalidInput)
	assert.Contains(t, err.Error(), "time_goal")
}

func TestImportGoals_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	svc, store := newService(t)

	file := models.GoalImport{Goals: []models.GoalTOML{
		{Activity: "Squat", Category: "strength", LoadGoal: 100, RepsGoal: 5},
		{Activity: "Run", Category: "cardio", LogMethod: "speed"},
	}}
	_, err := svc.ImportGoals(ctx, "u-1", file)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "goal 2 (Run)")

	file.Goals[1].SpeedGoal = 10
	store.EXPECT().CreateGoal(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	goals, err := svc.ImportGoals(ctx, "u-1", file)
	require.NoError(t, err)
	assert.Len(t, goals, 2)
}

func TestBuildRegimeAndSession(t *testing.T) {
	svc, _ := newService(t)

	file := &models.RegimeFile{
		Name: " Push Day ",
		Entries: []models.RegimeEntryFile{
			{Activity: "Bench Press", Category: "strength", Weight: 80, Reps: 8, Sets: 4},
			{Activity: "Run", Category: "cardio", Distance: 3, Duration: 18, Unit: "km"},
		},
	}
	r, err := svc.BuildRegime("u-1", file)
	require.NoError(t, err)
	assert.Equal(t, "Push Day", r.Name)
	require.Len(t, r.Entries, 2)
	assert.Equal(t, 1, r.Entries[1].Position)

	state := svc.NewSession("u-1", &r, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2024-03-04", state.Date)
	require.Len(t, state.Entries, 2)

	state.Entries[0].Skipped = true
	performed, date, err := tracker.SessionRegime(state)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC), date)
	require.Len(t, performed.Entries, 1)
	assert.Equal(t, "Run", performed.Entries[0].Activity)
	assert.Equal(t, 0, performed.Entries[0].Position)

	_, err = svc.BuildRegime("u-1", &models.RegimeFile{Name: "Empty"})
	assert.Error(t, err)

	_, err = svc.BuildRegime("u-1", &models.RegimeFile{
		Name:    "Bad",
		Entries: []models.RegimeEntryFile{{Activity: "Plank", Category: "core"}},
	})
	assert.Error(t, err)
}
