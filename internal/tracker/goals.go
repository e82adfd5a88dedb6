package tracker

import (
	"context"
	"fmt"
	"time"

	"github.com/misterclayt0n/stride/internal/models"
	"go.uber.org/multierr"

	log "github.com/sirupsen/logrus"
)

type GoalInput struct {
	UserID    string
	Activity  string
	Category  models.Category
	LogMethod models.LogMethod
	DistGoal  float64
	TimeGoal  float64
	SpeedGoal float64
	Unit      models.DistanceUnit
	LoadGoal  float64
	RepsGoal  int
}

// AddGoal validates and stores a new goal.
func (s *Service) AddGoal(ctx context.Context, in GoalInput) (*models.Goal, error) {
	g := s.newGoal(in)
	if err := validateGoal(g); err != nil {
		return nil, err
	}
	if err := s.store.CreateGoal(ctx, g); err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{"user": g.UserID, "goal": g.ID, "activity": g.Activity}).Debug("goal added")
	return &g, nil
}

// ImportGoals adds every goal of a parsed goals file. Nothing is stored
// unless all of them are valid.
func (s *Service) ImportGoals(ctx context.Context, userID string, file models.GoalImport) ([]models.Goal, error) {
	pending := make([]models.Goal, 0, len(file.Goals))
	var errs error
	for i, gt := range file.Goals {
		g := s.newGoal(GoalInput{
			UserID:    userID,
			Activity:  gt.Activity,
			Category:  models.Category(gt.Category),
			LogMethod: models.LogMethod(gt.LogMethod),
			DistGoal:  gt.DistGoal,
			TimeGoal:  gt.TimeGoal,
			SpeedGoal: gt.SpeedGoal,
			Unit:      models.DistanceUnit(gt.Unit),
			LoadGoal:  gt.LoadGoal,
			RepsGoal:  gt.RepsGoal,
		})
		if err := validateGoal(g); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("goal %d (%s): %w", i+1, gt.Activity, err))
			continue
		}
		pending = append(pending, g)
	}
	if errs != nil {
		return nil, errs
	}

	for _, g := range pending {
		if err := s.store.CreateGoal(ctx, g); err != nil {
			return nil, err
		}
	}
	return pending, nil
}

func (s *Service) newGoal(in GoalInput) models.Goal {
	g := models.Goal{
		ID:        s.NewID(),
		UserID:    in.UserID,
		Activity:  in.Activity,
		Category:  in.Category,
		DistGoal:  in.DistGoal,
		TimeGoal:  in.TimeGoal,
		SpeedGoal: in.SpeedGoal,
		LoadGoal:  in.LoadGoal,
		RepsGoal:  in.RepsGoal,
		CreatedAt: s.Now().UTC().Truncate(time.Second),
	}
	if in.Category == models.CategoryCardio {
		g.LogMethod = in.LogMethod
		if g.LogMethod == "" {
			g.LogMethod = models.LogMethodDistance
		}
		g.Unit = in.Unit
		if g.Unit == "" {
			g.Unit = models.UnitKilometres
		}
	}
	return g
}
