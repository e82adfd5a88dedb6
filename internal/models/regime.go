package models

import "time"

// Regime is a reusable workout template.
type Regime struct {
	ID          string        `json:"id"`
	UserID      string        `json:"user_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	Entries     []RegimeEntry `json:"entries"`
}

// RegimeEntry holds the template values for one workout of a regime.
type RegimeEntry struct {
	ID         string       `json:"id"`
	Position   int          `json:"position"`
	Activity   string       `json:"activity"`
	Category   Category     `json:"category"`
	LogMethod  LogMethod    `json:"log_method,omitempty"`
	Weight     float64      `json:"weight,omitempty"`
	WeightUnit WeightUnit   `json:"weight_unit,omitempty"`
	Reps       int          `json:"reps,omitempty"`
	Sets       int          `json:"sets,omitempty"`
	Distance   float64      `json:"distance,omitempty"`
	Duration   float64      `json:"duration,omitempty"`
	Unit       DistanceUnit `json:"unit,omitempty"`
	Speed      float64      `json:"speed,omitempty"`
	Notes      string       `json:"notes,omitempty"`
}

//
// For TOML/YAML parsing only
//

type RegimeFile struct {
	Name        string            `toml:"name" yaml:"name"`
	Description string            `toml:"description" yaml:"description"`
	Entries     []RegimeEntryFile `toml:"entry" yaml:"entries"`
}

type RegimeEntryFile struct {
	Activity   string  `toml:"activity" yaml:"activity"`
	Category   string  `toml:"category" yaml:"category"`
	LogMethod  string  `toml:"log_method" yaml:"log_method"`
	Weight     float64 `toml:"weight" yaml:"weight"`
	WeightUnit string  `toml:"weight_unit" yaml:"weight_unit"`
	Reps       int     `toml:"reps" yaml:"reps"`
	Sets       int     `toml:"sets" yaml:"sets"`
	Distance   float64 `toml:"distance" yaml:"distance"`
	Duration   float64 `toml:"duration" yaml:"duration"`
	Unit       string  `toml:"unit" yaml:"unit"`
	Speed      float64 `toml:"speed" yaml:"speed"`
	Notes      string  `toml:"notes" yaml:"notes"`
}
