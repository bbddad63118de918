package repository

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/cocoon/internal/error_values"
	"github.com/limbo/cocoon/pkg/entity"
)

const appointmentColumns = "id, user_id, date, kind, location, doctor, notes, created_at, updated_at"

type AppointmentsRepository struct {
	conn PgConnection
}

func NewAppointmentsRepo(conn PgConnection) *AppointmentsRepository {
	return &AppointmentsRepository{
		conn: conn,
	}
}

func (ar *AppointmentsRepository) Create(ctx context.Context, a *entity.Appointment) (*entity.Appointment, error) {
	if a == nil {
		return nil, errors.New("appointment is nil")
	}
	sql, args, err := psql.Insert("appointments").
		Columns("user_id", "date", "kind", "location", "doctor", "notes").
		Values(a.UserID, a.Date, a.Kind, a.Location, a.Doctor, a.Notes).
		Suffix("RETURNING " + appointmentColumns).
		ToSql()
	if err != nil {
		return nil, errors.New("building appointment insert error: " + err.Error())
	}
	var created entity.Appointment
	if err = pgxscan.Get(ctx, querier(ctx, ar.conn), &created, sql, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Foreign key violation: owner is gone
			case "23503":
				return nil, errorvalues.ErrUserNotFound
			}
		}
		return nil, errors.New("creating appointment error: " + err.Error())
	}
	return &created, nil
}

func (ar *AppointmentsRepository) Update(ctx context.Context, id, uid uuid.UUID, upd *entity.AppointmentUpdate) (*entity.Appointment, error) {
	if upd == nil || upd.Empty() {
		return nil, errorvalues.ErrNothingToUpdate
	}
	b := psql.Update("appointments")
	if v, ok := upd.Date.Get(); ok {
		b = b.Set("date", v)
	}
	if v, ok := upd.Kind.Get(); ok {
		b = b.Set("kind", v)
	}
	// Text fields are stored as given, an empty string included.
	if v, ok := upd.Location.Get(); ok {
		b = b.Set("location", v)
	}
	if v, ok := upd.Doctor.Get(); ok {
		b = b.Set("doctor", v)
	}
	if v, ok := upd.Notes.Get(); ok {
		b = b.Set("notes", v)
	}
	sql, args, err := b.Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": id, "user_id": uid}).
		Suffix("RETURNING " + appointmentColumns).
		ToSql()
	if err != nil {
		return nil, errors.New("building appointment update error: " + err.Error())
	}
	var updated entity.Appointment
	if err = pgxscan.Get(ctx, querier(ctx, ar.conn), &updated, sql, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, errorvalues.ErrAppointmentNotFound
		}
		return nil, errors.New("updating appointment error: " + err.Error())
	}
	return &updated, nil
}

func (ar *AppointmentsRepository) Delete(ctx context.Context, id, uid uuid.UUID) error {
	ct, err := querier(ctx, ar.conn).Exec(ctx, `DELETE FROM appointments WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting appointment error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrAppointmentNotFound
	}
	return nil
}

func (ar *AppointmentsRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Appointment, error) {
	sql, args, err := psql.Select(appointmentColumns).
		From("appointments").
		Where(sq.Eq{"user_id": uid}).
		OrderBy("date ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, errors.New("building appointments select error: " + err.Error())
	}
	appointments := make([]entity.Appointment, 0)
	if err = pgxscan.Select(ctx, querier(ctx, ar.conn), &appointments, sql, args...); err != nil {
		return nil, errors.New("listing appointments error: " + err.Error())
	}
	return appointments, nil
}
