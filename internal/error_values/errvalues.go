package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")
	ErrValidation       = errors.New("validation error")

	// Returned both for missing checklists/items and for ones owned by someone else.
	ErrNotFoundOrUnauthorized = errors.New("element not found or inaccessible")
	ErrChecklistNotFound      = errors.New("checklist doesn't exist")
	ErrChecklistExists        = errors.New("checklist of this type already exists")
	ErrChecklistInit          = errors.New("couldn't initialize checklist")
	ErrUnknownChecklistType   = errors.New("unknown checklist type")

	ErrAppointmentNotFound = errors.New("appointment doesn't exist")
	ErrNothingToUpdate     = errors.New("no fields to update")

	ErrPregnancyDatesRequired = errors.New("conception date or due date is required")
)
