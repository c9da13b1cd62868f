//go:build unit || e2e

package builder

import (
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

// DefaultNow is the fixed clock every builder starts from.
var DefaultNow = time.Date(2030, 3, 14, 12, 0, 0, 0, time.UTC)

type AppointmentBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	PetName         string
	Start           time.Time
	DurationMinutes int
	Status          appointment.Status
	Service         string
	Notes           string
	Now             time.Time
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		PetID:           uuid.New(),
		PetName:         "Max",
		Start:           DefaultNow.Add(24 * time.Hour),
		DurationMinutes: appointment.DefaultDurationMinutes,
		Status:          appointment.StatusScheduled,
		Service:         "Full Groom",
		Notes:           "Sensitive around the ears",
		Now:             DefaultNow,
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) Services() *appointment.Services {
	return &appointment.Services{Clock: clock.NewMockClock(a.Now)}
}

func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	duration, err := appointment.NewDuration(a.DurationMinutes)
	if err != nil {
		return nil, err
	}
	service, err := appointment.NewServiceLabel(a.Service)
	if err != nil {
		return nil, err
	}
	notes, err := appointment.NewNotes(a.Notes)
	if err != nil {
		return nil, err
	}
	return appointment.NewAppointment(a.Services(), a.OwnerID, a.PetID, a.Start, duration, service, notes)
}

// BuildReconstructed skips validation, so it can produce rows that only
// exist in storage, such as appointments in the past.
func (a *AppointmentBuilder) BuildReconstructed() *appointment.Appointment {
	duration, _ := appointment.NewDuration(a.DurationMinutes)
	service, _ := appointment.NewServiceLabel(a.Service)
	notes, _ := appointment.NewNotes(a.Notes)
	created := a.Now.Add(-time.Hour)
	return appointment.ReconstructAppointment(a.ID, a.OwnerID, a.PetID, a.Start, duration, a.Status, service, notes, created, created)
}

func (a *AppointmentBuilder) BuildBooking() appointment.Booking {
	return appointment.Booking{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		PetID:           a.PetID,
		PetName:         a.PetName,
		Start:           a.Start,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
	}
}

func (a *AppointmentBuilder) BuildSnapshot() *shared.AppointmentSnapshot {
	created := a.Now.Add(-time.Hour)
	return &shared.AppointmentSnapshot{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		PetID:           a.PetID,
		Start:           a.Start,
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status.String(),
		Service:         a.Service,
		Notes:           a.Notes,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (a *AppointmentBuilder) BuildInfra() query.Appointment {
	created := pgconv.TimeToPgtype(a.Now.Add(-time.Hour))
	return query.Appointment{
		ID:              a.ID,
		OwnerID:         a.OwnerID,
		PetID:           a.PetID,
		StartAt:         pgconv.TimeToPgtype(a.Start),
		DurationMinutes: int32(a.DurationMinutes), // #nosec G115
		Status:          a.Status.String(),
		Service:         pgconv.TextFromString(a.Service),
		Notes:           pgconv.TextFromString(a.Notes),
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	created := a.Now.Add(-time.Hour)
	return &queries.AppointmentView{
		ID:              a.ID,
		PetID:           a.PetID,
		PetName:         a.PetName,
		PetSpecies:      "Dog",
		ClientID:        uuid.New(),
		ClientName:      "Sarah Johnson",
		StartAt:         a.Start,
		EndAt:           a.Start.Add(time.Duration(a.DurationMinutes) * time.Minute),
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status.String(),
		Service:         a.Service,
		Notes:           a.Notes,
		CreatedAt:       created,
		UpdatedAt:       created,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithID(id uuid.UUID) *AppointmentBuilder {
	a.ID = id
	return a
}

func (a *AppointmentBuilder) WithOwnerID(ownerID uuid.UUID) *AppointmentBuilder {
	a.OwnerID = ownerID
	return a
}

func (a *AppointmentBuilder) WithPetID(petID uuid.UUID) *AppointmentBuilder {
	a.PetID = petID
	return a
}

func (a *AppointmentBuilder) WithStart(start time.Time) *AppointmentBuilder {
	a.Start = start
	return a
}

func (a *AppointmentBuilder) WithDurationMinutes(minutes int) *AppointmentBuilder {
	a.DurationMinutes = minutes
	return a
}

func (a *AppointmentBuilder) AsCancelled() *AppointmentBuilder {
	a.Status = appointment.StatusCancelled
	return a
}
