package appointment

import (
	"time"

	"groomer-crm/internal/pkg/clock"

	"github.com/google/uuid"
)

type Services struct {
	Clock clock.Clock
}

type Appointment struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	petID     uuid.UUID
	start     time.Time
	duration  Duration
	status    Status
	service   ServiceLabel
	notes     Notes
	createdAt time.Time
	updatedAt time.Time
}

func NewAppointment(
	services *Services,
	ownerID, petID uuid.UUID,
	start time.Time,
	duration Duration,
	service ServiceLabel,
	notes Notes,
) (*Appointment, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	if petID == uuid.Nil {
		return nil, ErrMissingPet
	}
	if duration.Minutes() == 0 {
		return nil, ErrInvalidDuration
	}
	now := services.Clock.Now()
	if start.Before(now) {
		return nil, ErrStartInPast
	}

	return &Appointment{
		id:        uuid.New(),
		ownerID:   ownerID,
		petID:     petID,
		start:     start,
		duration:  duration,
		status:    StatusScheduled,
		service:   service,
		notes:     notes,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAppointment(
	id, ownerID, petID uuid.UUID,
	start time.Time,
	duration Duration,
	status Status,
	service ServiceLabel,
	notes Notes,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:        id,
		ownerID:   ownerID,
		petID:     petID,
		start:     start,
		duration:  duration,
		status:    status,
		service:   service,
		notes:     notes,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

type Revision struct {
	PetID    uuid.UUID
	Start    time.Time
	Duration Duration
	Status   Status
	Service  ServiceLabel
	Notes    Notes
}

// Revise replaces the editable fields. A start in the past is only rejected
// when the start actually moves, so historical appointments stay editable.
func (a *Appointment) Revise(services *Services, r Revision) error {
	if r.PetID == uuid.Nil {
		return ErrMissingPet
	}
	if r.Duration.Minutes() == 0 {
		return ErrInvalidDuration
	}
	if !r.Status.IsValid() {
		return ErrInvalidStatus
	}
	now := services.Clock.Now()
	if !r.Start.Equal(a.start) && r.Start.Before(now) {
		return ErrStartInPast
	}

	a.petID = r.PetID
	a.start = r.Start
	a.duration = r.Duration
	a.status = r.Status
	a.service = r.Service
	a.notes = r.Notes
	a.updatedAt = now
	return nil
}

func (a *Appointment) ChangeStatus(services *Services, s Status) error {
	if !s.IsValid() {
		return ErrInvalidStatus
	}
	a.status = s
	a.updatedAt = services.Clock.Now()
	return nil
}

func (a *Appointment) ID() uuid.UUID         { return a.id }
func (a *Appointment) OwnerID() uuid.UUID    { return a.ownerID }
func (a *Appointment) PetID() uuid.UUID      { return a.petID }
func (a *Appointment) Start() time.Time      { return a.start }
func (a *Appointment) End() time.Time        { return a.start.Add(a.duration.Std()) }
func (a *Appointment) Duration() Duration    { return a.duration }
func (a *Appointment) Status() Status        { return a.status }
func (a *Appointment) Service() ServiceLabel { return a.service }
func (a *Appointment) Notes() Notes          { return a.notes }
func (a *Appointment) CreatedAt() time.Time  { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time  { return a.updatedAt }
func (a *Appointment) Interval() Interval    { return NewInterval(a.start, a.duration.Minutes()) }
func (a *Appointment) IsScheduled() bool     { return a.status.Blocks() }

// SlotQuery describes this appointment's slot for a booking that is not
// stored yet, so nothing is excluded.
func (a *Appointment) SlotQuery() ConflictQuery {
	return ConflictQuery{
		OwnerID:         a.ownerID,
		Start:           a.start,
		DurationMinutes: a.duration.Minutes(),
	}
}

// ConflictQuery is SlotQuery for a re-check that must ignore the appointment
// itself.
func (a *Appointment) ConflictQuery() ConflictQuery {
	q := a.SlotQuery()
	id := a.id
	q.ExcludeID = &id
	return q
}
