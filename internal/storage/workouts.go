package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
	"github.com/misterclayt0n/stride/internal/utils"
)

const workoutColumns = `id, user_id, activity, category, log_method, weight, weight_unit, reps, sets,
	distance, duration, unit, speed, date, goal_met, notes, created_at`

// WorkoutFilter narrows ListWorkouts. Zero values mean "no constraint";
// From and To are inclusive calendar dates.
type WorkoutFilter struct {
	Activity string
	Category models.Category
	From     time.Time
	To       time.Time
	Limit    int
}

func (s *Storage) CreateWorkout(ctx context.Context, w models.Workout) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO workouts (`+workoutColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		w.ID,
		w.UserID,
		w.Activity,
		string(w.Category),
		string(w.LogMethod),
		w.Weight,
		string(w.WeightUnit),
		w.Reps,
		w.Sets,
		w.Distance,
		w.Duration,
		string(w.Unit),
		w.Speed,
		w.Date.Format(models.DateLayout),
		utils.BoolToInt(w.GoalMet),
		w.Notes,
		w.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save workout: %w", err)
	}
	return nil
}

// ListWorkouts returns the user's workouts, newest first.
func (s *Storage) ListWorkouts(ctx context.Context, userID string, f WorkoutFilter) ([]models.Workout, error) {
	where := []string{"user_id = ?"}
	args := []interface{}{userID}

	if f.Activity != "" {
		where = append(where, "activity = ?")
		args = append(args, f.Activity)
	}
	if f.Category != "" {
		where = append(where, "category = ?")
		args = append(args, string(f.Category))
	}
	if !f.From.IsZero() {
		where = append(where, "date >= ?")
		args = append(args, f.From.Format(models.DateLayout))
	}
	if !f.To.IsZero() {
		where = append(where, "date <= ?")
		args = append(args, f.To.Format(models.DateLayout))
	}

	query := `SELECT ` + workoutColumns + ` FROM workouts
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY date DESC, created_at DESC`
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("Failed to query workouts: %w", err)
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var category, logMethod, weightUnit, unit, date, createdAt string
		if err := rows.Scan(
			&w.ID,
			&w.UserID,
			&w.Activity,
			&category,
			&logMethod,
			&w.Weight,
			&weightUnit,
			&w.Reps,
			&w.Sets,
			&w.Distance,
			&w.Duration,
			&unit,
			&w.Speed,
			&date,
			&w.GoalMet,
			&w.Notes,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan workout: %w", err)
		}

		w.Category = models.Category(category)
		w.LogMethod = models.LogMethod(logMethod)
		w.WeightUnit = models.WeightUnit(weightUnit)
		w.Unit = models.DistanceUnit(unit)
		if w.Date, err = parseTime(models.DateLayout, date); err != nil {
			return nil, fmt.Errorf("Failed to scan workout %s date: %w", w.ID, err)
		}
		if w.CreatedAt, err = parseTime(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan workout %s created_at: %w", w.ID, err)
		}
		workouts = append(workouts, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate workouts: %w", err)
	}

	return workouts, nil
}

// ListWorkoutsBetween returns the workouts dated within [from, to].
func (s *Storage) ListWorkoutsBetween(ctx context.Context, userID string, from, to time.Time) ([]models.Workout, error) {
	return s.ListWorkouts(ctx, userID, WorkoutFilter{From: from, To: to})
}

// ListActivities returns the distinct activity names the user has logged.
func (s *Storage) ListActivities(ctx context.Context, userID string) ([]string, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT DISTINCT activity FROM workouts WHERE user_id = ? ORDER BY activity`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to query activities: %w", err)
	}
	defer rows.Close()

	var activities []string
	for rows.Next() {
		var a string
		if err := rows.Scan(&a); err != nil {
			return nil, fmt.Errorf("Failed to scan activity: %w", err)
		}
		activities = append(activities, a)
	}
	return activities, rows.Err()
}
