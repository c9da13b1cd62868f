//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/tests/common/builder"
	commandsmock "groomer-crm/tests/mock/commands"
	queriesmock "groomer-crm/tests/mock/queries"
	sharedmock "groomer-crm/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	readStore *queriesmock.MockAppointmentReadStore
	exporter  *queriesmock.MockScheduleExporter
	uow       *sharedmock.MockUnitOfWork
	reads     *sharedmock.MockCommandReads
	loc       *time.Location
	ownerID   uuid.UUID
	queries   queries.AppointmentQueries
}

func (s *AppointmentQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.readStore = queriesmock.NewMockAppointmentReadStore(s.ctrl)
	s.exporter = queriesmock.NewMockScheduleExporter(s.ctrl)
	s.uow = sharedmock.NewMockUnitOfWork(s.ctrl)
	s.reads = sharedmock.NewMockCommandReads(s.ctrl)
	observer := commandsmock.NewMockAppointmentMetrics(s.ctrl)
	s.ownerID = uuid.New()

	loc, err := time.LoadLocation("America/New_York")
	s.Require().NoError(err)
	s.loc = loc

	s.uow.EXPECT().CommandReads().Return(s.reads).AnyTimes()
	observer.EXPECT().ObserveConflictCheck(gomock.Any(), gomock.Any()).AnyTimes()

	// 2030-03-14 12:00 UTC is 08:00 in New York
	s.queries = queries.NewAppointmentQueries(s.readStore, s.exporter, s.uow, observer, clock.NewMockClock(builder.DefaultNow), s.loc)
}

func (s *AppointmentQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAppointmentQueriesSuite(t *testing.T) {
	suite.Run(t, new(AppointmentQueriesTestSuite))
}

func (s *AppointmentQueriesTestSuite) TestRange() {
	s.Run("範囲未指定は業務タイムゾーンの今日から7日間", func() {
		wantFrom := time.Date(2030, 3, 14, 0, 0, 0, 0, s.loc)
		wantTo := wantFrom.AddDate(0, 0, queries.DefaultRangeDays)
		views := []*queries.AppointmentView{builder.NewAppointmentBuilder().BuildView()}

		s.readStore.EXPECT().
			FindInRange(gomock.Any(), s.ownerID, wantFrom, wantTo, "").
			Return(views, nil).Times(1)

		got, err := s.queries.Range(context.Background(), s.ownerID, queries.RangeFilter{})
		s.Require().NoError(err)
		s.Equal(views, got)
	})

	s.Run("from のみ指定は7日間", func() {
		from := time.Date(2030, 4, 1, 0, 0, 0, 0, s.loc)
		s.readStore.EXPECT().
			FindInRange(gomock.Any(), s.ownerID, from, from.AddDate(0, 0, 7), "scheduled").
			Return(nil, nil).Times(1)

		_, err := s.queries.Range(context.Background(), s.ownerID, queries.RangeFilter{From: &from, Status: "scheduled"})
		s.Require().NoError(err)
	})

	tests := []struct {
		name   string
		filter func() queries.RangeFilter
		errIs  error
	}{
		{
			name: "to が from 以前はエラー",
			filter: func() queries.RangeFilter {
				from := time.Date(2030, 4, 2, 0, 0, 0, 0, s.loc)
				to := from
				return queries.RangeFilter{From: &from, To: &to}
			},
			errIs: queries.ErrInvalidRange,
		},
		{
			name: "62日を超える範囲はエラー",
			filter: func() queries.RangeFilter {
				from := time.Date(2030, 4, 1, 0, 0, 0, 0, s.loc)
				to := from.AddDate(0, 0, 63)
				return queries.RangeFilter{From: &from, To: &to}
			},
			errIs: queries.ErrRangeTooWide,
		},
		{
			name: "不正なステータスはエラー",
			filter: func() queries.RangeFilter {
				return queries.RangeFilter{Status: "pending"}
			},
			errIs: appointment.ErrInvalidStatus,
		},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.queries.Range(context.Background(), s.ownerID, tt.filter())
			s.ErrorIs(err, tt.errIs)
		})
	}
}

func (s *AppointmentQueriesTestSuite) TestGet() {
	s.Run("見つからない場合はErrAppointmentNotFound", func() {
		id := uuid.New()
		s.readStore.EXPECT().FindByID(gomock.Any(), s.ownerID, id).
			Return(nil, infra.WrapRepoErr("find appointment", errors.New("no rows"), infra.KindNotFound)).Times(1)

		_, err := s.queries.Get(context.Background(), s.ownerID, id)
		s.True(errs.Is(err, queries.ErrAppointmentNotFound))
	})

	s.Run("DB障害はそのまま返す", func() {
		id := uuid.New()
		dbErr := infra.WrapRepoErr("find appointment", errors.New("connection reset"), infra.KindDBFailure)
		s.readStore.EXPECT().FindByID(gomock.Any(), s.ownerID, id).Return(nil, dbErr).Times(1)

		_, err := s.queries.Get(context.Background(), s.ownerID, id)
		s.Require().Error(err)
		s.False(errs.Is(err, queries.ErrAppointmentNotFound))
	})
}

func (s *AppointmentQueriesTestSuite) TestExport() {
	views := []*queries.AppointmentView{builder.NewAppointmentBuilder().BuildView()}
	s.readStore.EXPECT().FindInRange(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any(), "").Return(views, nil).Times(1)
	s.exporter.EXPECT().Render(views, s.loc).Return([]byte("xlsx"), nil).Times(1)

	out, err := s.queries.Export(context.Background(), s.ownerID, queries.RangeFilter{})
	s.Require().NoError(err)
	s.Equal([]byte("xlsx"), out)
}

func (s *AppointmentQueriesTestSuite) TestCheckConflict() {
	start := time.Date(2030, 3, 20, 10, 0, 0, 0, s.loc)

	s.Run("空き枠", func() {
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), (*uuid.UUID)(nil)).
			Return(nil, nil).Times(1)

		view, err := s.queries.CheckConflict(context.Background(), s.ownerID, queries.ConflictProbe{Start: start, DurationMinutes: 60})
		s.Require().NoError(err)
		s.Nil(view.Conflict)
		s.Empty(view.Message)
	})

	s.Run("重なる予約を返す", func() {
		existing := appointment.Booking{
			ID:              uuid.New(),
			OwnerID:         s.ownerID,
			PetID:           uuid.New(),
			PetName:         "Bella",
			Start:           start.Add(-30 * time.Minute),
			DurationMinutes: 60,
			Status:          appointment.StatusScheduled,
		}
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), gomock.Any()).
			Return([]appointment.Booking{existing}, nil).Times(1)

		view, err := s.queries.CheckConflict(context.Background(), s.ownerID, queries.ConflictProbe{Start: start, DurationMinutes: 30})
		s.Require().NoError(err)
		s.Require().NotNil(view.Conflict)
		s.Equal(existing.ID, view.Conflict.AppointmentID)
		s.True(view.Conflict.EndAt.Equal(start.Add(30 * time.Minute)))
		s.Equal("This time slot conflicts with Bella's appointment at 9:30 AM", view.Message)
	})

	s.Run("自分自身は除外IDとして渡される", func() {
		self := uuid.New()
		s.reads.EXPECT().ScheduledSince(gomock.Any(), s.ownerID, gomock.Any(), &self).
			Return(nil, nil).Times(1)

		_, err := s.queries.CheckConflict(context.Background(), s.ownerID, queries.ConflictProbe{Start: start, DurationMinutes: 60, ExcludeID: &self})
		s.Require().NoError(err)
	})

	s.Run("所要時間が範囲外", func() {
		_, err := s.queries.CheckConflict(context.Background(), s.ownerID, queries.ConflictProbe{Start: start, DurationMinutes: 5})
		s.ErrorIs(err, appointment.ErrInvalidDuration)
	})
}
