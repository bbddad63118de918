package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cocoon/internal/checklist"
	"github.com/limbo/cocoon/pkg/entity"
	"github.com/limbo/cocoon/pkg/pregnancy"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type RegisterRequest struct {
	Email    string `validate:"required,email,max=254"`
	Password string `validate:"required,min=8,max=72"`
}

// Personal account fields. An empty string clears the field.
type UpdateAccountRequest struct {
	FirstName             string `validate:"omitempty,min=2"`
	LastName              string `validate:"omitempty,min=2"`
	EmergencyContactName  string
	EmergencyContactPhone string
}

type AccountProfile struct {
	ID                    uuid.UUID `json:"id"`
	Email                 string    `json:"email"`
	FirstName             *string   `json:"first_name"`
	LastName              *string   `json:"last_name"`
	EmergencyContactName  *string   `json:"emergency_contact_name"`
	EmergencyContactPhone *string   `json:"emergency_contact_phone"`
	CreatedAt             time.Time `json:"created_at"`
}

// At least one of the dates is required, the other one is derived.
type UpdatePregnancyRequest struct {
	Start *time.Time `validate:"required_without=Due"`
	Due   *time.Time `validate:"required_without=Start"`
}

type PregnancyProfile struct {
	PregnancyStart *time.Time          `json:"pregnancy_start,omitempty"`
	PregnancyDue   *time.Time          `json:"pregnancy_due,omitempty"`
	PregnancyRisk  *string             `json:"pregnancy_risk,omitempty"`
	Progress       *pregnancy.Progress `json:"progress,omitempty"`
}

type CreateAppointmentRequest struct {
	Date     time.Time `validate:"required"`
	Kind     string    `validate:"required,not_blank,max=100"`
	Location *string   `validate:"omitempty,max=255"`
	Doctor   *string   `validate:"omitempty,max=255"`
	Notes    *string   `validate:"omitempty,max=2000"`
}

type AppointmentsList struct {
	Upcoming []entity.Appointment `json:"upcoming"`
	Past     []entity.Appointment `json:"past"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
	GetProfile(ctx context.Context, id uuid.UUID) (*AccountProfile, error)
	// Overwrites the personal fields and returns the stored profile
	UpdateProfile(ctx context.Context, id uuid.UUID, req *UpdateAccountRequest) (*AccountProfile, error)
}

type ChecklistServiceI interface {
	// Returns user's checklist of given type, seeding it from the template on first access
	Get(ctx context.Context, uid uuid.UUID, checklistType entity.ChecklistType) (*checklist.Payload, error)
	// Flips one item of a checklist owned by uid and returns the whole updated checklist
	ToggleItem(ctx context.Context, uid, itemID uuid.UUID) (*checklist.Payload, error)
	// Unchecks every item of a checklist owned by uid
	Reset(ctx context.Context, uid, checklistID uuid.UUID) (*checklist.Payload, error)
}

type PregnancyServiceI interface {
	GetProfile(ctx context.Context, uid uuid.UUID) (*PregnancyProfile, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdatePregnancyRequest) (*PregnancyProfile, error)
	ResetDates(ctx context.Context, uid uuid.UUID) error
}

type AppointmentsServiceI interface {
	Create(ctx context.Context, uid uuid.UUID, req *CreateAppointmentRequest) (*entity.Appointment, error)
	Update(ctx context.Context, uid, id uuid.UUID, upd *entity.AppointmentUpdate) (*entity.Appointment, error)
	Delete(ctx context.Context, uid, id uuid.UUID) error
	List(ctx context.Context, uid uuid.UUID) (*AppointmentsList, error)
}
