package queries

//go:generate mockgen -source=appointment.go -destination=../../../tests/mock/queries/appointment.go -package=queriesmock

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

const (
	DefaultRangeDays = 7
	MaxRangeDays     = 62
)

var (
	ErrAppointmentNotFound = errs.New("appointment not found")
	ErrInvalidRange        = errs.New("invalid date range")
	ErrRangeTooWide        = errs.New("date range exceeds 62 days")
)

// RangeFilter bounds are optional. A missing From defaults to the start of
// today in the business time zone; a missing To defaults to From + 7 days.
type RangeFilter struct {
	From   *time.Time
	To     *time.Time
	Status string
}

// ConflictProbe is a prospective booking to test against the schedule.
type ConflictProbe struct {
	Start           time.Time
	DurationMinutes int
	ExcludeID       *uuid.UUID
}

type AppointmentReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentView, error)
	FindInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, status string) ([]*AppointmentView, error)
}

// ScheduleExporter renders a schedule as a spreadsheet.
type ScheduleExporter interface {
	Render(views []*AppointmentView, loc *time.Location) ([]byte, error)
}

type AppointmentQueries interface {
	Range(ctx context.Context, ownerID uuid.UUID, filter RangeFilter) ([]*AppointmentView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentView, error)
	Export(ctx context.Context, ownerID uuid.UUID, filter RangeFilter) ([]byte, error)
	CheckConflict(ctx context.Context, ownerID uuid.UUID, probe ConflictProbe) (*ConflictView, error)
}

type appointmentQueriesImpl struct {
	readStore AppointmentReadStore
	exporter  ScheduleExporter
	uow       shared.UnitOfWork
	observer  appointment.CheckObserver
	clock     clock.Clock
	location  *time.Location
}

func NewAppointmentQueries(
	readStore AppointmentReadStore,
	exporter ScheduleExporter,
	uow shared.UnitOfWork,
	observer appointment.CheckObserver,
	clk clock.Clock,
	loc *time.Location,
) AppointmentQueries {
	return &appointmentQueriesImpl{
		readStore: readStore,
		exporter:  exporter,
		uow:       uow,
		observer:  observer,
		clock:     clk,
		location:  loc,
	}
}

func (q *appointmentQueriesImpl) Range(ctx context.Context, ownerID uuid.UUID, filter RangeFilter) ([]*AppointmentView, error) {
	from, to, err := q.window(filter)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" {
		if _, err := appointment.NewStatus(filter.Status); err != nil {
			return nil, err
		}
	}
	return q.readStore.FindInRange(ctx, ownerID, from, to, filter.Status)
}

func (q *appointmentQueriesImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentView, error) {
	view, err := q.readStore.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrAppointmentNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *appointmentQueriesImpl) Export(ctx context.Context, ownerID uuid.UUID, filter RangeFilter) ([]byte, error) {
	views, err := q.Range(ctx, ownerID, filter)
	if err != nil {
		return nil, err
	}
	return q.exporter.Render(views, q.location)
}

// CheckConflict runs the checker without taking the schedule lock, so the
// answer may be stale by the time the booking is submitted.
func (q *appointmentQueriesImpl) CheckConflict(ctx context.Context, ownerID uuid.UUID, probe ConflictProbe) (*ConflictView, error) {
	if _, err := appointment.NewDuration(probe.DurationMinutes); err != nil {
		return nil, err
	}

	checker := appointment.NewConflictChecker(q.uow.CommandReads(), q.observer)
	conflict, err := checker.Check(ctx, appointment.ConflictQuery{
		OwnerID:         ownerID,
		Start:           probe.Start,
		DurationMinutes: probe.DurationMinutes,
		ExcludeID:       probe.ExcludeID,
	})
	if err != nil {
		return nil, err
	}
	if conflict == nil {
		return &ConflictView{}, nil
	}

	return &ConflictView{
		Conflict: &ConflictSummary{
			AppointmentID: conflict.ID,
			PetName:       conflict.PetName,
			StartAt:       conflict.Start,
			EndAt:         conflict.End(),
		},
		Message: appointment.NewConflictError(*conflict, q.location).Error(),
	}, nil
}

func (q *appointmentQueriesImpl) window(filter RangeFilter) (time.Time, time.Time, error) {
	var from time.Time
	if filter.From != nil {
		from = *filter.From
	} else {
		now := q.clock.Now().In(q.location)
		from = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, q.location)
	}

	to := from.AddDate(0, 0, DefaultRangeDays)
	if filter.To != nil {
		to = *filter.To
	}

	if !to.After(from) {
		return time.Time{}, time.Time{}, ErrInvalidRange
	}
	if to.Sub(from) > MaxRangeDays*24*time.Hour {
		return time.Time{}, time.Time{}, ErrRangeTooWide
	}
	return from, to, nil
}
