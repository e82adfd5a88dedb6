package models

import (
	"fmt"
	"time"
)

type Category string

const (
	CategoryStrength Category = "strength"
	CategoryCardio   Category = "cardio"
)

// ParseCategory accepts the category names case-sensitively, the way they are stored.
func ParseCategory(s string) (Category, error) {
	switch Category(s) {
	case CategoryStrength, CategoryCardio:
		return Category(s), nil
	}
	return "", fmt.Errorf("unknown category %q (want strength or cardio)", s)
}

type DistanceUnit string

const (
	UnitKilometres DistanceUnit = "km"
	UnitMiles      DistanceUnit = "mi"
)

func ParseDistanceUnit(s string) (DistanceUnit, error) {
	switch DistanceUnit(s) {
	case UnitKilometres, UnitMiles:
		return DistanceUnit(s), nil
	case "":
		return UnitKilometres, nil
	}
	return "", fmt.Errorf("unknown distance unit %q (want km or mi)", s)
}

type WeightUnit string

const (
	UnitKilograms WeightUnit = "kg"
	UnitPounds    WeightUnit = "lb"
)

func ParseWeightUnit(s string) (WeightUnit, error) {
	switch WeightUnit(s) {
	case UnitKilograms, UnitPounds:
		return WeightUnit(s), nil
	case "":
		return UnitKilograms, nil
	}
	return "", fmt.Errorf("unknown weight unit %q (want kg or lb)", s)
}

// LogMethod tells how a cardio workout or goal was recorded.
type LogMethod string

const (
	LogMethodDistance LogMethod = "distance"
	LogMethodSpeed    LogMethod = "speed"
)

func ParseLogMethod(s string) (LogMethod, error) {
	switch LogMethod(s) {
	case LogMethodDistance, LogMethodSpeed:
		return LogMethod(s), nil
	case "":
		return LogMethodDistance, nil
	}
	return "", fmt.Errorf("unknown log method %q (want distance or speed)", s)
}

// DateLayout is the calendar date format workouts are stored and entered with.
const DateLayout = "2006-01-02"

// Workout is one logged exercise instance.
type Workout struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Activity  string    `json:"activity"`
	Category  Category  `json:"category"`
	LogMethod LogMethod `json:"log_method,omitempty"`

	// Strength.
	Weight     float64    `json:"weight"`
	WeightUnit WeightUnit `json:"weight_unit,omitempty"`
	Reps       int        `json:"reps"`
	Sets       int        `json:"sets"`

	// Cardio.
	Distance float64      `json:"distance"`
	Duration float64      `json:"duration"` // Minutes.
	Unit     DistanceUnit `json:"unit,omitempty"`
	Speed    float64      `json:"speed,omitempty"`

	Date      time.Time `json:"date"`
	GoalMet   bool      `json:"goal_met"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func (w Workout) IsStrength() bool {
	return w.Category == CategoryStrength
}
