package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/misterclayt0n/stride/internal/config"

	log "github.com/sirupsen/logrus"
	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

const (
	driverLibsql = "libsql"
	driverSQLite = "sqlite"
)

// Storage is the document store every record goes through.
type Storage struct {
	DB     *sql.DB
	driver string
}

// Open connects to the database named by cfg and brings its schema up to
// date. Remote Turso URLs go through the libsql client, everything else is
// treated as a local SQLite file.
func Open(ctx context.Context, cfg config.DBConfig) (*Storage, error) {
	if strings.TrimSpace(cfg.ConnectionString) == "" {
		return nil, errors.New("database connection string is empty")
	}

	driver, dsn, err := resolveDSN(cfg)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("Failed to open db: %w", err)
	}

	if driver == driverSQLite {
		// One writer at a time keeps the local file free of "database is locked".
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to reach db: %w", err)
	}

	if err := RunMigrations(ctx, db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("Failed to initialize database: %w", err)
	}

	log.WithField("driver", driver).Debug("storage ready")
	return &Storage{DB: db, driver: driver}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func resolveDSN(cfg config.DBConfig) (string, string, error) {
	conn := strings.TrimSpace(cfg.ConnectionString)
	if isRemote(conn) {
		if cfg.AuthToken == "" {
			return driverLibsql, conn, nil
		}
		u, err := url.Parse(conn)
		if err != nil {
			return "", "", fmt.Errorf("invalid database url: %w", err)
		}
		q := u.Query()
		q.Set("authToken", cfg.AuthToken)
		u.RawQuery = q.Encode()
		return driverLibsql, u.String(), nil
	}

	path := strings.TrimPrefix(conn, "file:")
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return "", "", fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	sep := "?"
	if strings.Contains(conn, "?") {
		sep = "&"
	}
	return driverSQLite, conn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)", nil
}

func isRemote(conn string) bool {
	for _, scheme := range []string{"libsql://", "https://", "http://", "wss://", "ws://"} {
		if strings.HasPrefix(conn, scheme) {
			return true
		}
	}
	return false
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// parseTime reads a TEXT timestamp column. Empty or malformed values are
// errors rather than zero times.
func parseTime(layout, value string) (time.Time, error) {
	t, err := time.Parse(layout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q: %w", value, err)
	}
	return t, nil
}
