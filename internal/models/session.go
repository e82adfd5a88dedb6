package models

import "time"

// SessionState is the draft of a regime being worked through, kept on disk
// until it is ended (logged) or cancelled.
type SessionState struct {
	SessionID  string         `toml:"session_id"`
	UserID     string         `toml:"user_id"`
	RegimeID   string         `toml:"regime_id"`
	RegimeName string         `toml:"regime_name"`
	Date       string         `toml:"date"`
	StartTime  time.Time      `toml:"start_time"`
	Entries    []SessionEntry `toml:"entries"`
}

type SessionEntry struct {
	Activity   string  `toml:"activity"`
	Category   string  `toml:"category"`
	LogMethod  string  `toml:"log_method,omitempty"`
	Weight     float64 `toml:"weight,omitempty"`
	WeightUnit string  `toml:"weight_unit,omitempty"`
	Reps       int     `toml:"reps,omitempty"`
	Sets       int     `toml:"sets,omitempty"`
	Distance   float64 `toml:"distance,omitempty"`
	Duration   float64 `toml:"duration,omitempty"`
	Unit       string  `toml:"unit,omitempty"`
	Speed      float64 `toml:"speed,omitempty"`
	Notes      string  `toml:"notes,omitempty"`
	Skipped    bool    `toml:"skipped,omitempty"`
}

// Credentials is what the CLI keeps after a successful login.
type Credentials struct {
	UserID string    `toml:"user_id"`
	Email  string    `toml:"email"`
	Token  string    `toml:"token"`
	Issued time.Time `toml:"issued"`
}
