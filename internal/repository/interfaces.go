package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/cocoon/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Sets both pregnancy dates, nil clears a date
	UpdatePregnancyDates(ctx context.Context, uid uuid.UUID, start, due *time.Time) error
	// Overwrites the personal fields of the account, nil stores NULL
	UpdateProfile(ctx context.Context, uid uuid.UUID, profile *entity.UserProfile) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type ChecklistsRepositoryI interface {
	// Inserts checklist with all its sections and items
	Create(ctx context.Context, checklist *entity.Checklist) error
	// Loads full checklist tree by owner and type. ErrChecklistNotFound if absent
	GetByUserAndType(ctx context.Context, uid uuid.UUID, checklistType entity.ChecklistType) (*entity.Checklist, error)
	// Loads full checklist tree by id, filtered by owner
	GetByID(ctx context.Context, id, uid uuid.UUID) (*entity.Checklist, error)
	// Locks checklist row for the rest of the transaction, filtered by owner
	LockForUpdate(ctx context.Context, id, uid uuid.UUID) error
	// Resolves item -> section -> checklist owned by uid and locks the checklist row. Returns checklist id
	LockItemChecklist(ctx context.Context, itemID, uid uuid.UUID) (uuid.UUID, error)
	// Stores checked state of a single item
	SetItemChecked(ctx context.Context, itemID uuid.UUID, checked bool) error
	// Unchecks every item of checklist
	UncheckAll(ctx context.Context, checklistID uuid.UUID) error
	// Stores cached progress and last update time
	UpdateProgress(ctx context.Context, checklistID uuid.UUID, progress int, lastUpdated time.Time) error
	// Stores progress only if the row still holds the previous values. False means a concurrent write won
	CompareAndSetProgress(ctx context.Context, checklistID uuid.UUID, prevProgress int, prevUpdated time.Time, progress int, lastUpdated time.Time) (bool, error)
}

type AppointmentsRepositoryI interface {
	Create(ctx context.Context, appointment *entity.Appointment) (*entity.Appointment, error)
	// Applies only the present fields of upd. Filtered by owner
	Update(ctx context.Context, id, uid uuid.UUID, upd *entity.AppointmentUpdate) (*entity.Appointment, error)
	// Deletes appointment owned by uid
	Delete(ctx context.Context, id, uid uuid.UUID) error
	// Lists user's appointments ordered by date
	ListByUser(ctx context.Context, uid uuid.UUID) ([]entity.Appointment, error)
}

type TxManagerI interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Querier is satisfied by both PgConnection and pgx.Tx.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
