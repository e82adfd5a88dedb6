package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/misterclayt0n/stride/internal/config"
	"github.com/misterclayt0n/stride/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := Open(context.Background(), config.DBConfig{
		ConnectionString: filepath.Join(t.TempDir(), "data", "stride.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Storage, id, email string) models.User {
	t.Helper()
	u := models.User{
		ID:           id,
		Email:        email,
		DisplayName:  "Runner",
		PasswordHash: "hash",
		CreatedAt:    time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateUser(context.Background(), u))
	return u
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}

func TestOpen_RejectsEmptyConnectionString(t *testing.T) {
	_, err := Open(context.Background(), config.DBConfig{})
	assert.Error(t, err)
}

func TestOpen_ReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "stride.db")

	s, err := Open(ctx, config.DBConfig{ConnectionString: path})
	require.NoError(t, err)
	seedUser(t, s, "u-1", "a@example.com")
	require.NoError(t, s.Close())

	s, err = Open(ctx, config.DBConfig{ConnectionString: path})
	require.NoError(t, err)
	defer s.Close()

	u, err := s.GetUserByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", u.Email)
}

func TestResolveDSN(t *testing.T) {
	driver, dsn, err := resolveDSN(config.DBConfig{
		ConnectionString: "libsql://stride-me.turso.io",
		AuthToken:        "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, driverLibsql, driver)
	assert.Equal(t, "libsql://stride-me.turso.io?authToken=secret", dsn)

	driver, dsn, err = resolveDSN(config.DBConfig{ConnectionString: "https://stride-me.turso.io"})
	require.NoError(t, err)
	assert.Equal(t, driverLibsql, driver)
	assert.Equal(t, "https://stride-me.turso.io", dsn)

	driver, dsn, err = resolveDSN(config.DBConfig{ConnectionString: "file::memory:?cache=shared"})
	require.NoError(t, err)
	assert.Equal(t, driverSQLite, driver)
	assert.Equal(t, "file::memory:?cache=shared&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", dsn)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")

	u, err := s.GetUserByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
	assert.Equal(t, "hash", u.PasswordHash)
	assert.Equal(t, time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC), u.CreatedAt)

	err = s.CreateUser(ctx, models.User{ID: "u-2", Email: "a@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)

	taken, err := s.EmailTaken(ctx, "a@example.com")
	require.NoError(t, err)
	assert.True(t, taken)
	taken, err = s.EmailTaken(ctx, "b@example.com")
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestWorkouts_CreateAndFilter(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")
	seedUser(t, s, "u-2", "b@example.com")

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	bench := models.Workout{
		ID: "w-1", UserID: "u-1", Activity: "Bench Press", Category: models.CategoryStrength,
		Weight: 80, WeightUnit: models.UnitKilograms, Reps: 8, Sets: 3,
		Date: day(1), GoalMet: true, Notes: "felt strong", CreatedAt: created,
	}
	run := models.Workout{
		ID: "w-2", UserID: "u-1", Activity: "Run", Category: models.CategoryCardio,
		LogMethod: models.LogMethodSpeed, Distance: 5.25, Duration: 30, Unit: models.UnitKilometres, Speed: 10.5,
		Date: day(3), CreatedAt: created,
	}
	other := models.Workout{
		ID: "w-3", UserID: "u-2", Activity: "Run", Category: models.CategoryCardio,
		Distance: 3, Duration: 20, Date: day(2), CreatedAt: created,
	}
	for _, w := range []models.Workout{bench, run, other} {
		require.NoError(t, s.CreateWorkout(ctx, w))
	}

	all, err := s.ListWorkouts(ctx, "u-1", WorkoutFilter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, run, all[0], "newest first")
	assert.Equal(t, bench, all[1])

	runs, err := s.ListWorkouts(ctx, "u-1", WorkoutFilter{Activity: "Run"})
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "w-2", runs[0].ID)

	strength, err := s.ListWorkouts(ctx, "u-1", WorkoutFilter{Category: models.CategoryStrength})
	require.NoError(t, err)
	require.Len(t, strength, 1)
	assert.Equal(t, "w-1", strength[0].ID)

	between, err := s.ListWorkoutsBetween(ctx, "u-1", day(2), day(3))
	require.NoError(t, err)
	require.Len(t, between, 1)
	assert.Equal(t, "w-2", between[0].ID)

	limited, err := s.ListWorkouts(ctx, "u-1", WorkoutFilter{Limit: 1})
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "w-2", limited[0].ID)

	activities, err := s.ListActivities(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bench Press", "Run"}, activities)
}

func TestWorkouts_RejectsUnknownCategory(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")

	err := s.CreateWorkout(ctx, models.Workout{ID: "w-1", UserID: "u-1", Activity: "Yoga", Category: "flexibility", Date: day(1)})
	assert.Error(t, err)
}

func TestGoals(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")
	seedUser(t, s, "u-2", "b@example.com")

	created := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	squat := models.Goal{ID: "g-1", UserID: "u-1", Activity: "Squat", Category: models.CategoryStrength, LoadGoal: 100, RepsGoal: 5, CreatedAt: created}
	run := models.Goal{ID: "g-2", UserID: "u-1", Activity: "Run", Category: models.CategoryCardio, LogMethod: models.LogMethodDistance, DistGoal: 5, TimeGoal: 25, Unit: models.UnitKilometres, CreatedAt: created}
	foreign := models.Goal{ID: "g-3", UserID: "u-2", Activity: "Squat", Category: models.CategoryStrength, LoadGoal: 60, CreatedAt: created}
	for _, g := range []models.Goal{squat, run, foreign} {
		require.NoError(t, s.CreateGoal(ctx, g))
	}

	all, err := s.ListGoals(ctx, "u-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, []models.Goal{run, squat}, all)

	squats, err := s.ListGoals(ctx, "u-1", "Squat", models.CategoryStrength)
	require.NoError(t, err)
	assert.Equal(t, []models.Goal{squat}, squats)

	none, err := s.ListGoals(ctx, "u-1", "Squat", models.CategoryCardio)
	require.NoError(t, err)
	assert.Empty(t, none)

	got, err := s.GetGoal(ctx, "u-1", "g-2")
	require.NoError(t, err)
	assert.Equal(t, run, *got)

	_, err = s.GetGoal(ctx, "u-1", "g-3")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteGoal(ctx, "u-1", "g-3"), ErrNotFound, "other users' goals are not visible")
	require.NoError(t, s.DeleteGoal(ctx, "u-1", "g-1"))
	assert.ErrorIs(t, s.DeleteGoal(ctx, "u-1", "g-1"), ErrNotFound)

	all, err = s.ListGoals(ctx, "u-1", "", "")
	require.NoError(t, err)
	assert.Equal(t, []models.Goal{run}, all)
}

func pushDay(userID string) models.Regime {
	return models.Regime{
		ID:          "r-1",
		UserID:      userID,
		Name:        "Push Day",
		Description: "Chest",
		CreatedAt:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
		Entries: []models.RegimeEntry{
			{ID: "e-1", Activity: "Bench Press", Category: models.CategoryStrength, Weight: 80, WeightUnit: models.UnitKilograms, Reps: 8, Sets: 4},
			{ID: "e-2", Activity: "Run", Category: models.CategoryCardio, LogMethod: models.LogMethodDistance, Distance: 3, Duration: 18, Unit: models.UnitKilometres, Notes: "cooldown"},
		},
	}
}

func TestRegimes_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")

	r := pushDay("u-1")
	require.NoError(t, s.CreateRegime(ctx, r))

	dup := pushDay("u-1")
	dup.ID = "r-2"
	dup.Entries = nil
	assert.ErrorIs(t, s.CreateRegime(ctx, dup), ErrAlreadyExists)

	exists, err := s.RegimeExists(ctx, "u-1", "Push Day")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.GetRegimeByName(ctx, "u-1", "Push Day")
	require.NoError(t, err)
	r.Entries[1].Position = 1
	assert.Equal(t, r, *got)

	list, err := s.ListRegimes(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Push Day", list[0].Name)
	assert.Equal(t, 2, list[0].Entries)

	update := models.Regime{
		UserID:      "u-1",
		Name:        "Push Day",
		Description: "Chest and shoulders",
		Entries: []models.RegimeEntry{
			{Activity: "Overhead Press", Category: models.CategoryStrength, Weight: 40, Reps: 6, Sets: 3},
		},
	}
	require.NoError(t, s.UpdateRegime(ctx, update))

	got, err = s.GetRegimeByName(ctx, "u-1", "Push Day")
	require.NoError(t, err)
	assert.Equal(t, "r-1", got.ID)
	assert.Equal(t, "Chest and shoulders", got.Description)
	require.Len(t, got.Entries, 1)
	assert.Equal(t, "Overhead Press", got.Entries[0].Activity)
	assert.NotEmpty(t, got.Entries[0].ID)

	update.Name = "Leg Day"
	assert.ErrorIs(t, s.UpdateRegime(ctx, update), ErrNotFound)

	require.NoError(t, s.DeleteRegimeByName(ctx, "u-1", "Push Day"))
	assert.ErrorIs(t, s.DeleteRegimeByName(ctx, "u-1", "Push Day"), ErrNotFound)
	_, err = s.GetRegimeByName(ctx, "u-1", "Push Day")
	assert.ErrorIs(t, err, ErrNotFound)

	var orphans int
	require.NoError(t, s.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM regime_entries`).Scan(&orphans))
	assert.Zero(t, orphans)
}

func TestExportImport_RoundTrip(t *testing.T) {
	ctx := context.Background()
	src := newTestStorage(t)
	seedUser(t, src, "u-1", "a@example.com")

	w := models.Workout{
		ID: "w-1", UserID: "u-1", Activity: "Bench Press", Category: models.CategoryStrength,
		Weight: 82.5, WeightUnit: models.UnitKilograms, Reps: 5, Sets: 5, Date: day(4), GoalMet: true,
		CreatedAt: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
	}
	require.NoError(t, src.CreateWorkout(ctx, w))
	require.NoError(t, src.CreateRegime(ctx, pushDay("u-1")))

	dump := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, src.ExportToTOML(ctx, dump))

	dst := newTestStorage(t)
	seedUser(t, dst, "stale", "stale@example.com")
	require.NoError(t, dst.ImportFromTOML(ctx, dump))

	_, err := dst.GetUserByID(ctx, "stale")
	assert.ErrorIs(t, err, ErrNotFound, "import replaces existing rows")

	workouts, err := dst.ListWorkouts(ctx, "u-1", WorkoutFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Workout{w}, workouts)

	r, err := dst.GetRegimeByName(ctx, "u-1", "Push Day")
	require.NoError(t, err)
	assert.Len(t, r.Entries, 2)

	goals, err := dst.ListGoals(ctx, "u-1", "", "")
	require.NoError(t, err)
	assert.Empty(t, goals)
}

func TestImport_RejectsUnknownTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")

	dump := filepath.Join(t.TempDir(), "dump.toml")
	require.NoError(t, os.WriteFile(dump, []byte("[[sqlite_master]]\nname = \"x\"\n"), 0600))

	err := s.ImportFromTOML(ctx, dump)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown table")

	_, err = s.GetUserByID(ctx, "u-1")
	assert.NoError(t, err, "nothing is touched on a rejected dump")
}

func TestImport_RejectsMissingTable(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")
	require.NoError(t, s.CreateWorkout(ctx, models.Workout{
		ID: "w-1", UserID: "u-1", Activity: "Run", Category: models.CategoryCardio,
		Distance: 5, Duration: 25, Unit: models.UnitKilometres, Date: day(4),
		CreatedAt: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
	}))

	dump := filepath.Join(t.TempDir(), "dump.toml")
	trimmed := "[[users]]\nid = \"u-1\"\nemail = \"a@example.com\"\ndisplay_name = \"\"\npassword_hash = \"x\"\ncreated_at = \"2024-03-01T00:00:00Z\"\n"
	require.NoError(t, os.WriteFile(dump, []byte(trimmed), 0600))

	err := s.ImportFromTOML(ctx, dump)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing table workouts")

	workouts, err := s.ListWorkouts(ctx, "u-1", WorkoutFilter{})
	require.NoError(t, err)
	assert.Len(t, workouts, 1)
}

func TestListWorkouts_RejectsCorruptDate(t *testing.T) {
	ctx := context.Background()
	s := newTestStorage(t)
	seedUser(t, s, "u-1", "a@example.com")
	require.NoError(t, s.CreateWorkout(ctx, models.Workout{
		ID: "w-1", UserID: "u-1", Activity: "Squat", Category: models.CategoryStrength,
		Weight: 100, WeightUnit: models.UnitKilograms, Reps: 5, Sets: 3, Date: day(4),
		CreatedAt: time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC),
	}))
	_, err := s.DB.ExecContext(ctx, `UPDATE workouts SET date = 'yesterday' WHERE id = 'w-1'`)
	require.NoError(t, err)

	_, err = s.ListWorkouts(ctx, "u-1", WorkoutFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "w-1")
}

func TestGetDBExportPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	path, err := GetDBExportPath(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "db_dump.toml"), path)
}
