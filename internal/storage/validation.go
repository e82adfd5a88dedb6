package storage

import (
	"context"
	"fmt"
)

// syncTables are the application tables, in insertion order (parents first).
var syncTables = []string{"users", "workouts", "goals", "regimes", "regime_entries"}

func isSyncTable(name string) bool {
	for _, t := range syncTables {
		if t == name {
			return true
		}
	}
	return false
}

func (s *Storage) RegimeExists(ctx context.Context, userID, name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM regimes WHERE user_id = ? AND name = ?)",
		userID, name,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check regime existence: %w", err)
	}

	return exists, nil
}

func (s *Storage) EmailTaken(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)",
		email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}
