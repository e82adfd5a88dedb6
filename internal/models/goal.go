package models

import "time"

// Goal is a user-defined target for one activity.
// Only the fields of its category are populated; the rest stay 0.
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Activity  string    `json:"activity"`
	Category  Category  `json:"category"`
	LogMethod LogMethod `json:"log_method,omitempty"`

	// Cardio.
	DistGoal  float64      `json:"dist_goal"`
	TimeGoal  float64      `json:"time_goal"` // Minutes.
	SpeedGoal float64      `json:"speed_goal"`
	Unit      DistanceUnit `json:"unit,omitempty"`

	// Strength.
	LoadGoal float64 `json:"load_goal"`
	RepsGoal int     `json:"reps_goal"`

	CreatedAt time.Time `json:"created_at"`
}

//
// For TOML parsing only
//

type GoalTOML struct {
	Activity  string  `toml:"activity"`
	Category  string  `toml:"category"`
	LogMethod string  `toml:"log_method"`
	DistGoal  float64 `toml:"dist_goal"`
	TimeGoal  float64 `toml:"time_goal"`
	SpeedGoal float64 `toml:"speed_goal"`
	Unit      string  `toml:"unit"`
	LoadGoal  float64 `toml:"load_goal"`
	RepsGoal  int     `toml:"reps_goal"`
}

type GoalImport struct {
	Goals []GoalTOML `toml:"goal"`
}
