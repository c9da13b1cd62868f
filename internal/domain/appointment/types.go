package appointment

import "errors"

var (
	ErrInvalidDuration = errors.New("duration must be between 15 and 480 minutes")
	ErrInvalidStatus   = errors.New("invalid appointment status")
	ErrStartInPast     = errors.New("appointment start cannot be in the past")
	ErrServiceTooLong  = errors.New("service must be 100 characters or fewer")
	ErrNotesTooLong    = errors.New("notes must be 1000 characters or fewer")
	ErrMissingOwner    = errors.New("owner is required")
	ErrMissingPet      = errors.New("pet is required")
)

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Blocks reports whether an appointment in this status occupies its slot.
func (s Status) Blocks() bool {
	return s == StatusScheduled
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}
