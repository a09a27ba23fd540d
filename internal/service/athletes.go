package service

import (
	"context"
	"errors"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/repository"

	"github.com/sirupsen/logrus"
)

var (
	ErrAthleteNotFound = errors.New("athlete not found")
	ErrPlanNotFound    = errors.New("plan not found")
)

// athleteStore resolves athletes from the repository first and the fixed
// roster second. Fixed-roster athletes have no document until their first
// write, so writes go through seedFields.
type athleteStore struct {
	repo     repository.AthleteRepository
	fallback []domain.Athlete
}

// load returns the athlete and whether it already has a stored document.
func (s athleteStore) load(ctx context.Context, id string) (*domain.Athlete, bool, error) {
	if id == "" {
		return nil, false, ErrAthleteNotFound
	}

	athlete, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return athlete, true, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		logrus.WithError(err).WithField("athleteId", id).Error("load athlete")
		return nil, false, err
	}

	for _, a := range s.fallback {
		if a.ID == id {
			copied := a
			return &copied, false, nil
		}
	}
	return nil, false, ErrAthleteNotFound
}

// save writes fields, adding the fixed-roster profile when the document
// does not exist yet.
func (s athleteStore) save(ctx context.Context, athlete *domain.Athlete, stored bool, fields map[string]interface{}) error {
	if !stored {
		seeded := seedFields(athlete)
		for k, v := range fields {
			seeded[k] = v
		}
		fields = seeded
	}

	if err := s.repo.Save(ctx, athlete.ID, fields); err != nil {
		logrus.WithError(err).WithField("athleteId", athlete.ID).Error("save athlete")
		return err
	}
	return nil
}

func seedFields(a *domain.Athlete) map[string]interface{} {
	fields := map[string]interface{}{"name": a.Name}
	if a.Email != "" {
		fields["email"] = a.Email
	}
	if a.Goal != "" {
		fields["goal"] = a.Goal
	}
	return fields
}

func nowIn(now func() time.Time, loc *time.Location) time.Time {
	return now().In(loc)
}
