package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/misterclayt0n/stride/internal/models"
)

// CreateRegime stores a regime and its entries in one transaction.
func (s *Storage) CreateRegime(ctx context.Context, r models.Regime) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO regimes (id, user_id, name, description, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		r.ID,
		r.UserID,
		r.Name,
		r.Description,
		r.CreatedAt.UTC().Format(time.RFC3339),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("regime %q: %w", r.Name, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("Failed to create regime: %w", err)
	}

	if err := insertRegimeEntries(ctx, tx, r.ID, r.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

// UpdateRegime looks the regime up by owner and name, updates its
// description and replaces all of its entries. Logged workouts are untouched.
func (s *Storage) UpdateRegime(ctx context.Context, r models.Regime) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var regimeID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM regimes WHERE user_id = ? AND name = ?`,
		r.UserID, r.Name,
	).Scan(&regimeID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("regime %q: %w", r.Name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Failed to query regime: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE regimes SET description = ? WHERE id = ?`,
		r.Description, regimeID,
	); err != nil {
		return fmt.Errorf("Failed to update regime: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM regime_entries WHERE regime_id = ?`, regimeID); err != nil {
		return fmt.Errorf("Failed to clear regime entries: %w", err)
	}

	if err := insertRegimeEntries(ctx, tx, regimeID, r.Entries); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}

func insertRegimeEntries(ctx context.Context, tx *sql.Tx, regimeID string, entries []models.RegimeEntry) error {
	for i, e := range entries {
		id := e.ID
		if id == "" {
			id = uuid.New().String()
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO regime_entries
			(id, regime_id, position, activity, category, log_method, weight, weight_unit, reps, sets,
			distance, duration, unit, speed, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id,
			regimeID,
			i,
			e.Activity,
			string(e.Category),
			string(e.LogMethod),
			e.Weight,
			string(e.WeightUnit),
			e.Reps,
			e.Sets,
			e.Distance,
			e.Duration,
			string(e.Unit),
			e.Speed,
			e.Notes,
		)
		if err != nil {
			return fmt.Errorf("Failed to insert regime entry %s: %w", e.Activity, err)
		}
	}
	return nil
}

func (s *Storage) GetRegimeByName(ctx context.Context, userID, name string) (*models.Regime, error) {
	var r models.Regime
	var createdAt string

	err := s.DB.QueryRowContext(ctx,
		`SELECT id, user_id, name, description, created_at
		FROM regimes WHERE user_id = ? AND name = ?`,
		userID, name,
	).Scan(&r.ID, &r.UserID, &r.Name, &r.Description, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("regime %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to get regime: %w", err)
	}
	if r.CreatedAt, err = parseTime(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("Failed to get regime %q created_at: %w", name, err)
	}

	rows, err := s.DB.QueryContext(ctx,
		`SELECT id, position, activity, category, log_method, weight, weight_unit, reps, sets,
			distance, duration, unit, speed, notes
		FROM regime_entries
		WHERE regime_id = ?
		ORDER BY position`,
		r.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load regime entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.RegimeEntry
		var category, logMethod, weightUnit, unit string
		if err := rows.Scan(
			&e.ID,
			&e.Position,
			&e.Activity,
			&category,
			&logMethod,
			&e.Weight,
			&weightUnit,
			&e.Reps,
			&e.Sets,
			&e.Distance,
			&e.Duration,
			&unit,
			&e.Speed,
			&e.Notes,
		); err != nil {
			return nil, fmt.Errorf("Failed to scan regime entry: %w", err)
		}
		e.Category = models.Category(category)
		e.LogMethod = models.LogMethod(logMethod)
		e.WeightUnit = models.WeightUnit(weightUnit)
		e.Unit = models.DistanceUnit(unit)
		r.Entries = append(r.Entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Failed to iterate regime entries: %w", err)
	}

	return &r, nil
}

// RegimeSummary is a regime without its entries, for listings.
type RegimeSummary struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
	Entries     int
}

func (s *Storage) ListRegimes(ctx context.Context, userID string) ([]RegimeSummary, error) {
	rows, err := s.DB.QueryContext(ctx, `
		SELECT r.id, r.name, r.description, r.created_at, COUNT(e.id)
		FROM regimes r
		LEFT JOIN regime_entries e ON e.regime_id = r.id
		WHERE r.user_id = ?
		GROUP BY r.id, r.name, r.description, r.created_at
		ORDER BY r.name`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to query regimes: %w", err)
	}
	defer rows.Close()

	var regimes []RegimeSummary
	for rows.Next() {
		var r RegimeSummary
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Name, &r.Description, &createdAt, &r.Entries); err != nil {
			return nil, fmt.Errorf("Failed to scan regime: %w", err)
		}
		if r.CreatedAt, err = parseTime(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("Failed to scan regime %q created_at: %w", r.Name, err)
		}
		regimes = append(regimes, r)
	}
	return regimes, rows.Err()
}

// DeleteRegimeByName removes the regime and its entries. Entries are deleted
// explicitly since remote databases may run without foreign key enforcement.
func (s *Storage) DeleteRegimeByName(ctx context.Context, userID, name string) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var regimeID string
	err = tx.QueryRowContext(ctx,
		`SELECT id FROM regimes WHERE user_id = ? AND name = ?`,
		userID, name,
	).Scan(&regimeID)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("regime %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("Failed to query regime: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM regime_entries WHERE regime_id = ?`, regimeID); err != nil {
		return fmt.Errorf("Failed to delete regime entries: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM regimes WHERE id = ?`, regimeID); err != nil {
		return fmt.Errorf("Failed to delete regime: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}
	return nil
}
