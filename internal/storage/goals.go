package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

const goalColumns = `id, user_id, activity, category, log_method, dist_goal, time_goal, speed_goal, unit,
	load_goal, reps_goal, created_at`

func (s *Storage) CreateGoal(ctx context.Context, g models.Goal) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO goals (`+goalColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		g.ID,
		g.UserID,
		g.Activity,
		string(g.Category),
		string(g.LogMethod),
		g.DistGoal,
		g.TimeGoal,
		g.SpeedGoal,
		string(g.Unit),
		g.LoadGoal,
		g.RepsGoal,
		g.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to create goal: %w", err)
	}
	return nil
}

// ListGoals returns the user's goals. An empty activity or category lists all of them.
func (s *Storage) ListGoals(ctx context.Context, userID, activity string, category models.Category) ([]models.Goal, error) {
	rows, err := s.DB.QueryContext(ctx,
		`SELECT `+goalColumns+` FROM goals
		WHERE user_id = ?
		AND (? = '' OR activity = ?)
		AND (? = '' OR category = ?)
		ORDER BY activity, created_at`,
		userID, activity, activity, string(category), string(category),
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to query goals: %w", err)
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate goals: %w", err)
	}
	return goals, nil
}

func (s *Storage) GetGoal(ctx context.Context, userID, id string) (*models.Goal, error) {
	row := s.DB.QueryRowContext(ctx,
		`SELECT `+goalColumns+` FROM goals WHERE user_id = ? AND id = ?`,
		userID, id,
	)
	g, err := scanGoal(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return g, err
}

// DeleteGoal removes one of the user's goals. Goals of other users are not found.
func (s *Storage) DeleteGoal(ctx context.Context, userID, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM goals WHERE user_id = ? AND id = ?`, userID, id)
	if err != nil {
		return fmt.Errorf("Failed to delete goal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("Failed to delete goal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s: %w", id, ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanGoal(row rowScanner) (*models.Goal, error) {
	var g models.Goal
	var category, logMethod, unit, createdAt string

	err := row.Scan(
		&g.ID,
		&g.UserID,
		&g.Activity,
		&category,
		&logMethod,
		&g.DistGoal,
		&g.TimeGoal,
		&g.SpeedGoal,
		&unit,
		&g.LoadGoal,
		&g.RepsGoal,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to scan goal: %w", err)
	}

	g.Category = models.Category(category)
	g.LogMethod = models.LogMethod(logMethod)
	g.Unit = models.DistanceUnit(unit)
	if g.CreatedAt, err = parseTime(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("Failed to scan goal %s created_at: %w", g.ID, err)
	}
	return &g, nil
}
