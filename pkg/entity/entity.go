package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/cocoon/pkg/optional"
)

type User struct {
	ID                    uuid.UUID
	Email                 string
	PasswordHash          string
	FirstName             *string
	LastName              *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
	PregnancyStart        *time.Time
	PregnancyDue          *time.Time
	PregnancyRisk         *string
	CreatedAt             time.Time
}

// UserProfile holds the editable personal fields of an account. Nil clears a field.
type UserProfile struct {
	FirstName             *string
	LastName              *string
	EmergencyContactName  *string
	EmergencyContactPhone *string
}

type ChecklistType string

const (
	ChecklistTrousseau ChecklistType = "trousseau"
	ChecklistDocuments ChecklistType = "documents"
	ChecklistBirthPlan ChecklistType = "projet-naissance"
)

var ChecklistTypes = []ChecklistType{ChecklistTrousseau, ChecklistDocuments, ChecklistBirthPlan}

// ParseChecklistType accepts only the three known checklist slugs.
func ParseChecklistType(s string) (ChecklistType, bool) {
	for _, t := range ChecklistTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Checklist is owned by exactly one user and unique per (user, type).
// Progress is cached and recomputed on every mutation.
type Checklist struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        ChecklistType
	Progress    int
	LastUpdated time.Time
	Sections    []ChecklistSection
}

type ChecklistSection struct {
	ID          uuid.UUID
	ChecklistID uuid.UUID
	Title       string
	Order       int
	Items       []ChecklistItem
}

type ChecklistItem struct {
	ID          uuid.UUID
	SectionID   uuid.UUID
	Label       string
	Description *string
	Checked     bool
	Custom      bool
	Position    int
}

type Appointment struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"-"`
	Date      time.Time `db:"date" json:"date"`
	Kind      string    `db:"kind" json:"kind"`
	Location  *string   `db:"location" json:"location,omitempty"`
	Doctor    *string   `db:"doctor" json:"doctor,omitempty"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentUpdate is a partial update: only present fields are written.
type AppointmentUpdate struct {
	Date     optional.Value[time.Time]
	Kind     optional.Value[string]
	Location optional.Value[string]
	Doctor   optional.Value[string]
	Notes    optional.Value[string]
}

func (u *AppointmentUpdate) Empty() bool {
	return !u.Date.IsSet() && !u.Kind.IsSet() && !u.Location.IsSet() && !u.Doctor.IsSet() && !u.Notes.IsSet()
}
