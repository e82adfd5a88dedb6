package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
	"go.uber.org/multierr"
)

// BuildRegime turns a parsed regime file into a regime owned by userID. Every
// entry must be loggable as a workout.
func (s *Service) BuildRegime(userID string, f *models.RegimeFile) (models.Regime, error) {
	r := models.Regime{
		ID:          s.NewID(),
		UserID:      userID,
		Name:        strings.TrimSpace(f.Name),
		Description: f.Description,
		CreatedAt:   s.Now().UTC().Truncate(time.Second),
	}

	var errs error
	if r.Name == "" {
		errs = multierr.Append(errs, errors.New("regime name is required"))
	}
	if len(f.Entries) == 0 {
		errs = multierr.Append(errs, errors.New("regime has no entries"))
	}

	for i, ef := range f.Entries {
		e := models.RegimeEntry{
			Position:   i,
			Activity:   strings.TrimSpace(ef.Activity),
			Category:   models.Category(ef.Category),
			LogMethod:  models.LogMethod(ef.LogMethod),
			Weight:     ef.Weight,
			WeightUnit: models.WeightUnit(ef.WeightUnit),
			Reps:       ef.Reps,
			Sets:       ef.Sets,
			Distance:   ef.Distance,
			Duration:   ef.Duration,
			Unit:       models.DistanceUnit(ef.Unit),
			Speed:      ef.Speed,
			Notes:      ef.Notes,
		}
		if err := validateWorkout(inputFromEntry(userID, e, time.Time{})); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("entry %d (%s): %w", i+1, ef.Activity, err))
			continue
		}
		r.Entries = append(r.Entries, e)
	}

	if errs != nil {
		return models.Regime{}, errs
	}
	return r, nil
}

// NewSession starts a draft of the regime for date.
func (s *Service) NewSession(userID string, r *models.Regime, date time.Time) *models.SessionState {
	state := &models.SessionState{
		SessionID:  s.NewID(),
		UserID:     userID,
		RegimeID:   r.ID,
		RegimeName: r.Name,
		Date:       date.Format(models.DateLayout),
		StartTime:  s.Now().UTC().Truncate(time.Second),
	}
	for _, e := range r.Entries {
		state.Entries = append(state.Entries, models.SessionEntry{
			Activity:   e.Activity,
			Category:   string(e.Category),
			LogMethod:  string(e.LogMethod),
			Weight:     e.Weight,
			WeightUnit: string(e.WeightUnit),
			Reps:       e.Reps,
			Sets:       e.Sets,
			Distance:   e.Distance,
			Duration:   e.Duration,
			Unit:       string(e.Unit),
			Speed:      e.Speed,
			Notes:      e.Notes,
		})
	}
	return state
}

// SessionRegime is the regime actually performed in a draft session:
// skipped entries are left out.
func SessionRegime(state *models.SessionState) (*models.Regime, time.Time, error) {
	date, err := time.Parse(models.DateLayout, state.Date)
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("invalid session date %q: %w", state.Date, err)
	}

	r := &models.Regime{ID: state.RegimeID, UserID: state.UserID, Name: state.RegimeName}
	for _, e := range state.Entries {
		if e.Skipped {
			continue
		}
		r.Entries = append(r.Entries, models.RegimeEntry{
			Position:   len(r.Entries),
			Activity:   e.Activity,
			Category:   models.Category(e.Category),
			LogMethod:  models.LogMethod(e.LogMethod),
			Weight:     e.Weight,
			WeightUnit: models.WeightUnit(e.WeightUnit),
			Reps:       e.Reps,
			Sets:       e.Sets,
			Distance:   e.Distance,
			Duration:   e.Duration,
			Unit:       models.DistanceUnit(e.Unit),
			Speed:      e.Speed,
			Notes:      e.Notes,
		})
	}
	return r, date, nil
}
