package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/pkg/pregnancy"
)

type PregnancyService struct {
	repo repository.UsersRepositoryI
	now  func() time.Time
}

func NewPregnancyService(usersRepo repository.UsersRepositoryI, now func() time.Time) *PregnancyService {
	if now == nil {
		now = time.Now
	}
	return &PregnancyService{
		repo: usersRepo,
		now:  now,
	}
}

func (ps *PregnancyService) GetProfile(ctx context.Context, uid uuid.UUID) (*PregnancyProfile, error) {
	user, err := ps.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return &PregnancyProfile{
		PregnancyStart: user.PregnancyStart,
		PregnancyDue:   user.PregnancyDue,
		PregnancyRisk:  user.PregnancyRisk,
		Progress:       pregnancy.Calculate(user.PregnancyStart, user.PregnancyDue, ps.now()),
	}, nil
}

// UpdateProfile stores both dates and returns the profile as read back. A missing
// date is derived from the other.
func (ps *PregnancyService) UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdatePregnancyRequest) (*PregnancyProfile, error) {
	if req == nil || (req.Start == nil && req.Due == nil) {
		return nil, errorvalues.ErrPregnancyDatesRequired
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	start, due := req.Start, req.Due
	switch {
	case start == nil:
		s := pregnancy.ConceptionFromDue(*due)
		start = &s
	case due == nil:
		d := pregnancy.DueFromConception(*start)
		due = &d
	}
	if err := ps.repo.UpdatePregnancyDates(ctx, uid, start, due); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return ps.GetProfile(ctx, uid)
}

func (ps *PregnancyService) ResetDates(ctx context.Context, uid uuid.UUID) error {
	if err := ps.repo.UpdatePregnancyDates(ctx, uid, nil, nil); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return err
		}
		return errors.New("repository updating error: " + err.Error())
	}
	return nil
}
