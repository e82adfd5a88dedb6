package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
)

func (s *Storage) CreateUser(ctx context.Context, u models.User) error {
	_, err := s.DB.ExecContext(ctx,
		`INSERT INTO users (id, email, display_name, password_hash, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		u.ID,
		u.Email,
		u.DisplayName,
		u.PasswordHash,
		u.CreatedAt.UTC().Format(time.RFC3339),
	)
	if isUniqueViolation(err) {
		return fmt.Errorf("user %s: %w", u.Email, ErrAlreadyExists)
	}
	if err != nil {
		return fmt.Errorf("Failed to create user: %w", err)
	}
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx, "email", email)
}

func (s *Storage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	return s.getUser(ctx, "id", id)
}

func (s *Storage) getUser(ctx context.Context, column, value string) (*models.User, error) {
	var u models.User
	var createdAt string

	// column is never user input.
	err := s.DB.QueryRowContext(ctx,
		`SELECT id, email, display_name, password_hash, created_at
		FROM users WHERE `+column+` = ?`,
		value,
	).Scan(&u.ID, &u.Email, &u.DisplayName, &u.PasswordHash, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", value, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("Failed to get user: %w", err)
	}

	if u.CreatedAt, err = parseTime(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("Failed to get user %s created_at: %w", u.ID, err)
	}
	return &u, nil
}
