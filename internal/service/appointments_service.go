package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/internal/repository"
	"github.com/limbo/cocoon/pkg/entity"
)

type AppointmentsService struct {
	repo repository.AppointmentsRepositoryI
	now  func() time.Time
}

func NewAppointmentsService(repo repository.AppointmentsRepositoryI, now func() time.Time) *AppointmentsService {
	if now == nil {
		now = time.Now
	}
	return &AppointmentsService{
		repo: repo,
		now:  now,
	}
}

func (as *AppointmentsService) Create(ctx context.Context, uid uuid.UUID, req *CreateAppointmentRequest) (*entity.Appointment, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	created, err := as.repo.Create(ctx, &entity.Appointment{
		UserID:   uid,
		Date:     req.Date,
		Kind:     strings.TrimSpace(req.Kind),
		Location: req.Location,
		Doctor:   req.Doctor,
		Notes:    req.Notes,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return created, nil
}

func (as *AppointmentsService) Update(ctx context.Context, uid, id uuid.UUID, upd *entity.AppointmentUpdate) (*entity.Appointment, error) {
	if upd == nil || upd.Empty() {
		return nil, errorvalues.ErrNothingToUpdate
	}
	if kind, ok := upd.Kind.Get(); ok && strings.TrimSpace(kind) == "" {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("kind must not be blank"))
	}
	if date, ok := upd.Date.Get(); ok && date.IsZero() {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("date must not be empty"))
	}
	updated, err := as.repo.Update(ctx, id, uid, upd)
	if err != nil {
		if errors.Is(err, errorvalues.ErrAppointmentNotFound) || errors.Is(err, errorvalues.ErrNothingToUpdate) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return updated, nil
}

func (as *AppointmentsService) Delete(ctx context.Context, uid, id uuid.UUID) error {
	if err := as.repo.Delete(ctx, id, uid); err != nil {
		if errors.Is(err, errorvalues.ErrAppointmentNotFound) {
			return err
		}
		return errors.New("repository deletion error: " + err.Error())
	}
	return nil
}

// List splits appointments around now. Both halves keep ascending date order.
func (as *AppointmentsService) List(ctx context.Context, uid uuid.UUID) (*AppointmentsList, error) {
	appointments, err := as.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	now := as.now()
	list := &AppointmentsList{
		Upcoming: []entity.Appointment{},
		Past:     []entity.Appointment{},
	}
	for _, a := range appointments {
		if a.Date.Before(now) {
			list.Past = append(list.Past, a)
		} else {
			list.Upcoming = append(list.Upcoming, a)
		}
	}
	return list, nil
}
