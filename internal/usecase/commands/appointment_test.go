//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/ptr"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/shared"
	"groomer-crm/tests/common/builder"
	commandsmock "groomer-crm/tests/mock/commands"
	sharedmock "groomer-crm/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	uow      *sharedmock.MockUnitOfWork
	tx       *sharedmock.MockTx
	reads    *sharedmock.MockCommandReads
	repo     *sharedmock.MockAppointmentRepository
	outbox   *sharedmock.MockOutboxRepository
	metrics  *commandsmock.MockAppointmentMetrics
	ownerID  uuid.UUID
	petID    uuid.UUID
	commands commands.AppointmentCommands
}

func (s *AppointmentCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.tx = sharedmock.NewMockTx(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	s.repo = sharedmock.NewMockAppointmentRepository(s.ctrl)
	s.outbox = sharedmock.NewMockOutboxRepository(s.ctrl)
	s.metrics = commandsmock.NewMockAppointmentMetrics(s.ctrl)
	s.ownerID = uuid.New()
	s.petID = uuid.New()

	s.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, s.tx)
		}).AnyTimes()
	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().Reads().Return(s.reads).AnyTimes()
	s.tx.EXPECT().DB().Return(nil).AnyTimes()
	s.tx.EXPECT().Appointments().Return(s.repo).AnyTimes()
	s.tx.EXPECT().Outbox().Return(s.outbox).AnyTimes()
	s.metrics.EXPECT().ObserveConflictCheck(gomock.Any(), gomock.Any()).AnyTimes()

	s.commands = commands.NewAppointmentCommands(s.uow, clock.NewMockClock(builder.DefaultNow), s.metrics, time.UTC)
}

func (s *AppointmentCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppointmentCommandsSuite(t *testing.T) {
	suite.Run(t, new(AppointmentCommandsTestSuite))
}

func (s *AppointmentCommandsTestSuite) createRequest() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		PetID:           s.petID,
		Date:            "2030-03-15",
		Time:            "14:00",
		DurationMinutes: ptr.Of(60),
		Service:         "Full Groom",
	}
}

func (s *AppointmentCommandsTestSuite) expectPetFound() {
	s.reads.EXPECT().PetByID(gomock.Any(), s.ownerID, s.petID).
		Return(&shared.PetSnapshot{ID: s.petID, OwnerID: s.ownerID, Name: "Max"}, nil)
}

func (s *AppointmentCommandsTestSuite) TestCreate() {
	s.Run("success: locks the schedule, checks, writes and appends an outbox event", func() {
		var created *appointment.Appointment
		gomock.InOrder(
			s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil),
			s.reads.EXPECT().PetByID(gomock.Any(), s.ownerID, s.petID).
				Return(&shared.PetSnapshot{ID: s.petID, OwnerID: s.ownerID}, nil),
			s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Nil()).Return(nil, nil),
			s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, apt *appointment.Appointment) error {
					created = apt
					return nil
				}),
			s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, _ any, evt shared.OutboxEvent) error {
					s.Equal(shared.EventAppointmentCreated, evt.EventType)
					s.Equal(shared.AggregateAppointment, evt.AggregateType)
					return nil
				}),
		)
		s.metrics.EXPECT().IncAppointmentWrite("create")

		result, err := s.commands.Create(context.Background(), s.ownerID, s.createRequest())

		s.Require().NoError(err)
		s.Require().NotNil(created)
		s.Equal(created.ID(), result.AppointmentID)
		s.Equal(time.Date(2030, 3, 15, 14, 0, 0, 0, time.UTC), created.Start())
		s.Equal(appointment.StatusScheduled, created.Status())
	})

	s.Run("error: overlapping scheduled appointment is reported as a conflict", func() {
		existing := builder.NewAppointmentBuilder().
			WithOwnerID(s.ownerID).
			WithStart(time.Date(2030, 3, 15, 13, 30, 0, 0, time.UTC)).
			BuildBooking()

		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.expectPetFound()
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Nil()).
			Return([]appointment.Booking{existing}, nil)

		_, err := s.commands.Create(context.Background(), s.ownerID, s.createRequest())

		s.Require().Error(err)
		s.True(errs.Is(err, commands.ErrAppointmentConflict))
		var conflictErr *appointment.ConflictError
		s.Require().True(errors.As(err, &conflictErr))
		s.Equal(existing.ID, conflictErr.Conflict.ID)
		s.Contains(err.Error(), "This time slot conflicts with Max's appointment at 1:30 PM")
	})

	s.Run("success: back-to-back appointment is not a conflict", func() {
		before := builder.NewAppointmentBuilder().
			WithOwnerID(s.ownerID).
			WithStart(time.Date(2030, 3, 15, 13, 0, 0, 0, time.UTC)).
			BuildBooking()

		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.expectPetFound()
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Nil()).
			Return([]appointment.Booking{before}, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().IncAppointmentWrite("create")

		_, err := s.commands.Create(context.Background(), s.ownerID, s.createRequest())
		s.NoError(err)
	})

	s.Run("error: pet of another owner is not found", func() {
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().PetByID(gomock.Any(), s.ownerID, s.petID).
			Return(nil, infra.WrapRepoErr("pet not found", nil, infra.KindNotFound))

		_, err := s.commands.Create(context.Background(), s.ownerID, s.createRequest())
		s.True(errs.Is(err, commands.ErrPetNotFound))
	})

	s.Run("success: missing duration falls back to the owner's default", func() {
		req := s.createRequest()
		req.DurationMinutes = nil

		s.reads.EXPECT().SettingsByOwner(gomock.Any(), s.ownerID).
			Return(&shared.SettingsSnapshot{OwnerID: s.ownerID, DefaultDurationMinutes: 90}, nil)
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.expectPetFound()
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Nil()).Return(nil, nil)
		s.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, apt *appointment.Appointment) error {
				s.Equal(90, apt.Duration().Minutes())
				return nil
			})
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().IncAppointmentWrite("create")

		_, err := s.commands.Create(context.Background(), s.ownerID, req)
		s.NoError(err)
	})

	s.Run("error: candidate read failure aborts without writing", func() {
		dbErr := infra.WrapRepoErr("failed to list candidates", errors.New("connection reset"))
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.expectPetFound()
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Nil()).Return(nil, dbErr)

		_, err := s.commands.Create(context.Background(), s.ownerID, s.createRequest())
		s.True(infra.IsKind(err, infra.KindDBFailure))
	})
}

func (s *AppointmentCommandsTestSuite) TestCreateValidation() {
	testCases := []struct {
		name   string
		mutate func(r *commands.CreateAppointmentRequest)
		want   error
	}{
		{name: "日付の形式が不正", mutate: func(r *commands.CreateAppointmentRequest) { r.Date = "15/03/2030" }, want: appointment.ErrInvalidStartTime},
		{name: "時刻の形式が不正", mutate: func(r *commands.CreateAppointmentRequest) { r.Time = "2pm" }, want: appointment.ErrInvalidStartTime},
		{name: "所要時間が短すぎる", mutate: func(r *commands.CreateAppointmentRequest) { r.DurationMinutes = ptr.Of(14) }, want: appointment.ErrInvalidDuration},
		{name: "所要時間が長すぎる", mutate: func(r *commands.CreateAppointmentRequest) { r.DurationMinutes = ptr.Of(481) }, want: appointment.ErrInvalidDuration},
		{name: "過去の開始時刻", mutate: func(r *commands.CreateAppointmentRequest) { r.Date = "2030-03-13" }, want: appointment.ErrStartInPast},
		{name: "ペット未指定", mutate: func(r *commands.CreateAppointmentRequest) { r.PetID = uuid.Nil }, want: appointment.ErrMissingPet},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			req := s.createRequest()
			tc.mutate(&req)

			_, err := s.commands.Create(context.Background(), s.ownerID, req)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *AppointmentCommandsTestSuite) TestUpdate() {
	s.Run("success: moving an appointment excludes itself from the check", func() {
		existing := builder.NewAppointmentBuilder().WithOwnerID(s.ownerID).WithPetID(s.petID)
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, existing.ID).Return(existing.BuildSnapshot(), nil)
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ time.Time, excludeID *uuid.UUID) ([]appointment.Booking, error) {
				s.Require().NotNil(excludeID)
				s.Equal(existing.ID, *excludeID)
				return []appointment.Booking{existing.BuildBooking()}, nil
			})
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, apt *appointment.Appointment) error {
				s.Equal(time.Date(2030, 3, 15, 16, 0, 0, 0, time.UTC), apt.Start())
				return nil
			})
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().IncAppointmentWrite("update")

		_, err := s.commands.Update(context.Background(), s.ownerID, existing.ID, commands.UpdateAppointmentRequest{
			Date: "2030-03-15",
			Time: "16:00",
		})
		s.NoError(err)
	})

	s.Run("success: cancelling skips the conflict check", func() {
		existing := builder.NewAppointmentBuilder().WithOwnerID(s.ownerID).WithPetID(s.petID)
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, existing.ID).Return(existing.BuildSnapshot(), nil)
		s.reads.EXPECT().ScheduledSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().IncAppointmentWrite("update")

		_, err := s.commands.Update(context.Background(), s.ownerID, existing.ID, commands.UpdateAppointmentRequest{
			Status: string(appointment.StatusCancelled),
		})
		s.NoError(err)
	})

	s.Run("success: past appointment stays editable while its start is unchanged", func() {
		past := builder.NewAppointmentBuilder().
			WithOwnerID(s.ownerID).
			WithPetID(s.petID).
			WithStart(builder.DefaultNow.Add(-48 * time.Hour))
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, past.ID).Return(past.BuildSnapshot(), nil)
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).Return(nil, nil)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		s.metrics.EXPECT().IncAppointmentWrite("update")

		_, err := s.commands.Update(context.Background(), s.ownerID, past.ID, commands.UpdateAppointmentRequest{
			Notes: ptr.Of("Owner asked for a shorter cut"),
		})
		s.NoError(err)
	})

	s.Run("error: unknown appointment", func() {
		id := uuid.New()
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, id).
			Return(nil, infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		_, err := s.commands.Update(context.Background(), s.ownerID, id, commands.UpdateAppointmentRequest{Status: "completed"})
		s.True(errs.Is(err, commands.ErrAppointmentNotFound))
	})

	s.Run("error: date without time is rejected before any write", func() {
		existing := builder.NewAppointmentBuilder().WithOwnerID(s.ownerID).WithPetID(s.petID)
		s.tx.EXPECT().LockOwnerSchedule(gomock.Any(), s.ownerID).Return(nil)
		s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, existing.ID).Return(existing.BuildSnapshot(), nil)
		s.reads.EXPECT().ScheduledSince(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := s.commands.Update(context.Background(), s.ownerID, existing.ID, commands.UpdateAppointmentRequest{Date: "2030-03-15"})
		s.ErrorIs(err, appointment.ErrInvalidStartTime)
	})
}

func (s *AppointmentCommandsTestSuite) TestUpdateStatus() {
	existing := builder.NewAppointmentBuilder().WithOwnerID(s.ownerID).AsCancelled()

	s.reads.EXPECT().AppointmentByID(gomock.Any(), s.ownerID, existing.ID).Return(existing.BuildSnapshot(), nil)
	s.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ any, apt *appointment.Appointment) error {
			s.Equal(appointment.StatusScheduled, apt.Status())
			return nil
		})
	s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	s.metrics.EXPECT().IncAppointmentWrite("status")

	err := s.commands.UpdateStatus(context.Background(), s.ownerID, existing.ID, "scheduled")
	s.NoError(err)

	s.Run("error: invalid status never opens a transaction", func() {
		err := s.commands.UpdateStatus(context.Background(), s.ownerID, existing.ID, "done")
		s.ErrorIs(err, appointment.ErrInvalidStatus)
	})
}

func (s *AppointmentCommandsTestSuite) TestDelete() {
	s.Run("success", func() {
		id := uuid.New()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), s.ownerID, id).Return(nil)
		s.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ any, evt shared.OutboxEvent) error {
				s.Equal(shared.EventAppointmentDeleted, evt.EventType)
				s.Equal(id, evt.AggregateID)
				return nil
			})
		s.metrics.EXPECT().IncAppointmentWrite("delete")

		s.NoError(s.commands.Delete(context.Background(), s.ownerID, id))
	})

	s.Run("error: not found", func() {
		id := uuid.New()
		s.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), s.ownerID, id).
			Return(infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound))

		err := s.commands.Delete(context.Background(), s.ownerID, id)
		s.True(errs.Is(err, commands.ErrAppointmentNotFound))
	})
}

func TestNewAppointmentCommands_NilMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)

	uc := commands.NewAppointmentCommands(uow, clock.NewMockClock(builder.DefaultNow), nil, time.UTC)
	require.NotNil(t, uc)

	_, err := uc.Create(context.Background(), uuid.New(), commands.CreateAppointmentRequest{Date: "bad"})
	assert.ErrorIs(t, err, appointment.ErrInvalidStartTime)
}
