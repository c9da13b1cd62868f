package commands

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/commands/appointment.go -package=commandsmock

import (
	"context"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrAppointmentConflict = errs.New("appointment conflict")
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrPetNotFound         = errs.New("pet not found")
)

// AppointmentMetrics is satisfied by metrics.Collector.
type AppointmentMetrics interface {
	appointment.CheckObserver
	IncAppointmentWrite(operation string)
}

type CreateAppointmentRequest struct {
	PetID uuid.UUID
	Date  string
	Time  string
	// DurationMinutes falls back to the owner's default when nil.
	DurationMinutes *int
	Service         string
	Notes           string
}

// UpdateAppointmentRequest leaves a field unchanged when it is empty. Setting
// either Date or Time requires both, otherwise ErrInvalidStartTime.
type UpdateAppointmentRequest struct {
	PetID           uuid.UUID
	Date            string
	Time            string
	DurationMinutes *int
	Status          string
	Service         *string
	Notes           *string
}

type AppointmentResult struct {
	AppointmentID uuid.UUID
}

type AppointmentCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, req CreateAppointmentRequest) (*AppointmentResult, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateAppointmentRequest) (*AppointmentResult, error)
	UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type appointmentCommandsImpl struct {
	uow      shared.UnitOfWork
	services *appointment.Services
	metrics  AppointmentMetrics
	location *time.Location
}

func NewAppointmentCommands(uow shared.UnitOfWork, clk clock.Clock, m AppointmentMetrics, loc *time.Location) AppointmentCommands {
	if m == nil {
		m = noopAppointmentMetrics{}
	}
	return &appointmentCommandsImpl{
		uow:      uow,
		services: &appointment.Services{Clock: clk},
		metrics:  m,
		location: loc,
	}
}

func (uc *appointmentCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, req CreateAppointmentRequest) (*AppointmentResult, error) {
	start, err := appointment.ParseLocalStart(req.Date, req.Time, uc.location)
	if err != nil {
		return nil, err
	}
	minutes, err := uc.durationOrDefault(ctx, ownerID, req.DurationMinutes)
	if err != nil {
		return nil, err
	}
	duration, err := appointment.NewDuration(minutes)
	if err != nil {
		return nil, err
	}
	service, err := appointment.NewServiceLabel(req.Service)
	if err != nil {
		return nil, err
	}
	notes, err := appointment.NewNotes(req.Notes)
	if err != nil {
		return nil, err
	}

	apt, err := appointment.NewAppointment(uc.services, ownerID, req.PetID, start, duration, service, notes)
	if err != nil {
		return nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockOwnerSchedule(ctx, ownerID); err != nil {
			return err
		}
		if err := ensurePet(ctx, tx.Reads(), ownerID, apt.PetID()); err != nil {
			return err
		}
		if err := uc.ensureNoConflict(ctx, tx.Reads(), apt.SlotQuery()); err != nil {
			return err
		}
		if err := tx.Appointments().Create(ctx, tx.DB(), apt); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), appointmentEvent(shared.EventAppointmentCreated, apt))
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentWrite("create")
	return &AppointmentResult{AppointmentID: apt.ID()}, nil
}

func (uc *appointmentCommandsImpl) Update(ctx context.Context, ownerID, id uuid.UUID, req UpdateAppointmentRequest) (*AppointmentResult, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockOwnerSchedule(ctx, ownerID); err != nil {
			return err
		}
		snap, err := tx.Reads().AppointmentByID(ctx, ownerID, id)
		if err != nil {
			return markNotFound(err, ErrAppointmentNotFound)
		}
		apt := reconstructAppointment(snap)

		rev, err := uc.revision(apt, req)
		if err != nil {
			return err
		}
		if rev.PetID != apt.PetID() {
			if err := ensurePet(ctx, tx.Reads(), ownerID, rev.PetID); err != nil {
				return err
			}
		}
		if err := apt.Revise(uc.services, rev); err != nil {
			return err
		}

		if apt.IsScheduled() {
			if err := uc.ensureNoConflict(ctx, tx.Reads(), apt.ConflictQuery()); err != nil {
				return err
			}
		}
		if err := tx.Appointments().Update(ctx, tx.DB(), apt); err != nil {
			return markNotFound(err, ErrAppointmentNotFound)
		}
		return tx.Outbox().Append(ctx, tx.DB(), appointmentEvent(shared.EventAppointmentUpdated, apt))
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.IncAppointmentWrite("update")
	return &AppointmentResult{AppointmentID: id}, nil
}

// UpdateStatus does not re-run the conflict check, so reviving a cancelled
// appointment can double-book its slot.
func (uc *appointmentCommandsImpl) UpdateStatus(ctx context.Context, ownerID, id uuid.UUID, status string) error {
	st, err := appointment.NewStatus(status)
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().AppointmentByID(ctx, ownerID, id)
		if err != nil {
			return markNotFound(err, ErrAppointmentNotFound)
		}
		apt := reconstructAppointment(snap)
		if err := apt.ChangeStatus(uc.services, st); err != nil {
			return err
		}
		if err := tx.Appointments().Update(ctx, tx.DB(), apt); err != nil {
			return markNotFound(err, ErrAppointmentNotFound)
		}
		return tx.Outbox().Append(ctx, tx.DB(), appointmentEvent(shared.EventAppointmentStatusChanged, apt))
	})
	if err != nil {
		return err
	}

	uc.metrics.IncAppointmentWrite("status")
	return nil
}

func (uc *appointmentCommandsImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Appointments().Delete(ctx, tx.DB(), ownerID, id); err != nil {
			return markNotFound(err, ErrAppointmentNotFound)
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
			AggregateType: shared.AggregateAppointment,
			AggregateID:   id,
			EventType:     shared.EventAppointmentDeleted,
			Payload:       map[string]uuid.UUID{"id": id, "owner_id": ownerID},
			OccurredAt:    uc.services.Clock.Now(),
		})
	})
	if err != nil {
		return err
	}

	uc.metrics.IncAppointmentWrite("delete")
	return nil
}

func (uc *appointmentCommandsImpl) ensureNoConflict(ctx context.Context, reads shared.CommandReads, q appointment.ConflictQuery) error {
	conflict, err := appointment.NewConflictChecker(reads, uc.metrics).Check(ctx, q)
	if err != nil {
		return err
	}
	if conflict != nil {
		return errs.Mark(appointment.NewConflictError(*conflict, uc.location), ErrAppointmentConflict)
	}
	return nil
}

func (uc *appointmentCommandsImpl) durationOrDefault(ctx context.Context, ownerID uuid.UUID, requested *int) (int, error) {
	if requested != nil {
		return *requested, nil
	}
	s, err := uc.uow.CommandReads().SettingsByOwner(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	if s == nil || s.DefaultDurationMinutes == 0 {
		return appointment.DefaultDurationMinutes, nil
	}
	return s.DefaultDurationMinutes, nil
}

func (uc *appointmentCommandsImpl) revision(apt *appointment.Appointment, req UpdateAppointmentRequest) (appointment.Revision, error) {
	rev := appointment.Revision{
		PetID:    apt.PetID(),
		Start:    apt.Start(),
		Duration: apt.Duration(),
		Status:   apt.Status(),
		Service:  apt.Service(),
		Notes:    apt.Notes(),
	}

	if req.PetID != uuid.Nil {
		rev.PetID = req.PetID
	}
	if req.Date != "" || req.Time != "" {
		start, err := appointment.ParseLocalStart(req.Date, req.Time, uc.location)
		if err != nil {
			return rev, err
		}
		rev.Start = start
	}
	if req.DurationMinutes != nil {
		d, err := appointment.NewDuration(*req.DurationMinutes)
		if err != nil {
			return rev, err
		}
		rev.Duration = d
	}
	if req.Status != "" {
		st, err := appointment.NewStatus(req.Status)
		if err != nil {
			return rev, err
		}
		rev.Status = st
	}
	if req.Service != nil {
		s, err := appointment.NewServiceLabel(*req.Service)
		if err != nil {
			return rev, err
		}
		rev.Service = s
	}
	if req.Notes != nil {
		n, err := appointment.NewNotes(*req.Notes)
		if err != nil {
			return rev, err
		}
		rev.Notes = n
	}
	return rev, nil
}

func ensurePet(ctx context.Context, reads shared.CommandReads, ownerID, petID uuid.UUID) error {
	if _, err := reads.PetByID(ctx, ownerID, petID); err != nil {
		return markNotFound(err, ErrPetNotFound)
	}
	return nil
}

// Stored rows passed validation when written, so the value constructors
// cannot fail here.
func reconstructAppointment(s *shared.AppointmentSnapshot) *appointment.Appointment {
	duration, _ := appointment.NewDuration(s.DurationMinutes)
	service, _ := appointment.NewServiceLabel(s.Service)
	notes, _ := appointment.NewNotes(s.Notes)
	return appointment.ReconstructAppointment(
		s.ID, s.OwnerID, s.PetID, s.Start, duration,
		appointment.Status(s.Status), service, notes, s.CreatedAt, s.UpdatedAt,
	)
}

type appointmentPayload struct {
	ID              uuid.UUID `json:"id"`
	OwnerID         uuid.UUID `json:"owner_id"`
	PetID           uuid.UUID `json:"pet_id"`
	StartAt         time.Time `json:"start_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Service         string    `json:"service,omitempty"`
}

func appointmentEvent(eventType string, apt *appointment.Appointment) shared.OutboxEvent {
	return shared.OutboxEvent{
		AggregateType: shared.AggregateAppointment,
		AggregateID:   apt.ID(),
		EventType:     eventType,
		Payload: appointmentPayload{
			ID:              apt.ID(),
			OwnerID:         apt.OwnerID(),
			PetID:           apt.PetID(),
			StartAt:         apt.Start(),
			DurationMinutes: apt.Duration().Minutes(),
			Status:          apt.Status().String(),
			Service:         apt.Service().String(),
		},
		OccurredAt: apt.UpdatedAt(),
	}
}

// markNotFound attaches sentinel to repository NOT_FOUND errors and passes
// anything else through.
func markNotFound(err, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}

type noopAppointmentMetrics struct{}

func (noopAppointmentMetrics) ObserveConflictCheck(string, int) {}
func (noopAppointmentMetrics) IncAppointmentWrite(string)       {}
