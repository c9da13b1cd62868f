//go:build unit

package appointment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memorySource filters the way the SQL candidate query does.
type memorySource struct {
	bookings  []appointment.Booking
	err       error
	lastFrom  time.Time
	callCount int
}

func (m *memorySource) ScheduledSince(_ context.Context, ownerID uuid.UUID, from time.Time, excludeID *uuid.UUID) ([]appointment.Booking, error) {
	m.callCount++
	m.lastFrom = from
	if m.err != nil {
		return nil, m.err
	}
	var out []appointment.Booking
	for _, b := range m.bookings {
		if b.OwnerID != ownerID || b.Status != appointment.StatusScheduled {
			continue
		}
		if excludeID != nil && b.ID == *excludeID {
			continue
		}
		if b.Start.Before(from) {
			continue
		}
		out = append(out, b)
	}
	return out, nil
}

type recordingObserver struct {
	results    []string
	candidates []int
}

func (r *recordingObserver) ObserveConflictCheck(result string, candidates int) {
	r.results = append(r.results, result)
	r.candidates = append(r.candidates, candidates)
}

var (
	tenant1 = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	tenant2 = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	day     = time.Date(2030, 3, 14, 0, 0, 0, 0, time.UTC)
)

func at(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func booking(owner uuid.UUID, start time.Time, minutes int, mutate ...func(*builder.AppointmentBuilder)) appointment.Booking {
	b := builder.NewAppointmentBuilder().WithOwnerID(owner).WithStart(start).WithDurationMinutes(minutes)
	for _, m := range mutate {
		b.With(m)
	}
	return b.BuildBooking()
}

func query(owner uuid.UUID, start time.Time, minutes int) appointment.ConflictQuery {
	return appointment.ConflictQuery{OwnerID: owner, Start: start, DurationMinutes: minutes}
}

func check(t *testing.T, bookings []appointment.Booking, q appointment.ConflictQuery) *appointment.Booking {
	t.Helper()
	checker := appointment.NewConflictChecker(&memorySource{bookings: bookings}, nil)
	found, err := checker.Check(context.Background(), q)
	require.NoError(t, err)
	return found
}

func TestConflictChecker_Scenarios(t *testing.T) {
	t.Run("部分的に重なる予約は競合", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 30), 60))

		require.NotNil(t, found)
		assert.Equal(t, existing.ID, found.ID)
	})

	t.Run("連続する予約は競合しない", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(11, 0), 60))

		assert.Nil(t, found)
	})

	t.Run("キャンセル済みの予約はブロックしない", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60, func(b *builder.AppointmentBuilder) {
			b.Status = appointment.StatusCancelled
		})

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 0), 60))

		assert.Nil(t, found)
	})

	t.Run("別テナントの予約とは競合しない", func(t *testing.T) {
		existing := booking(tenant2, at(10, 0), 60)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 0), 60))

		assert.Nil(t, found)
	})

	t.Run("更新時は自分自身を除外する", func(t *testing.T) {
		self := booking(tenant1, at(10, 0), 60)
		q := query(tenant1, at(10, 30), 60)
		q.ExcludeID = &self.ID

		found := check(t, []appointment.Booking{self}, q)

		assert.Nil(t, found)
	})

	t.Run("既存予約を包含する候補は競合", func(t *testing.T) {
		existing := booking(tenant1, at(9, 0), 60)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(8, 30), 120))

		require.NotNil(t, found)
		assert.Equal(t, existing.ID, found.ID)
	})
}

func TestConflictChecker_Properties(t *testing.T) {
	t.Run("symmetry", func(t *testing.T) {
		pairs := []struct {
			name           string
			aStart, bStart time.Time
			aMin, bMin     int
		}{
			{name: "partial overlap", aStart: at(10, 0), aMin: 60, bStart: at(10, 30), bMin: 60},
			{name: "back to back", aStart: at(10, 0), aMin: 60, bStart: at(11, 0), bMin: 30},
			{name: "containment", aStart: at(9, 0), aMin: 240, bStart: at(10, 0), bMin: 15},
			{name: "disjoint", aStart: at(8, 0), aMin: 30, bStart: at(14, 0), bMin: 30},
			{name: "identical", aStart: at(12, 0), aMin: 45, bStart: at(12, 0), bMin: 45},
		}
		for _, p := range pairs {
			t.Run(p.name, func(t *testing.T) {
				a := booking(tenant1, p.aStart, p.aMin)
				b := booking(tenant1, p.bStart, p.bMin)

				ab := check(t, []appointment.Booking{a}, query(tenant1, p.bStart, p.bMin)) != nil
				ba := check(t, []appointment.Booking{b}, query(tenant1, p.aStart, p.aMin)) != nil

				assert.Equal(t, ab, ba)
			})
		}
	})

	t.Run("既存予約の内側に収まる候補は競合", func(t *testing.T) {
		existing := booking(tenant1, at(9, 0), 180)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 0), 30))

		require.NotNil(t, found)
		assert.Equal(t, existing.ID, found.ID)
	})

	t.Run("直前で終わる予約は競合しない", func(t *testing.T) {
		existing := booking(tenant1, at(9, 0), 60)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(8, 0), 60))

		assert.Nil(t, found)
	})

	t.Run("完了済みの予約はブロックしない", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60, func(b *builder.AppointmentBuilder) {
			b.Status = appointment.StatusCompleted
		})

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 15), 30))

		assert.Nil(t, found)
	})

	t.Run("最大長の予約は前日から跨いでも検出される", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0).Add(-appointment.MaxDurationMinutes*time.Minute+time.Minute), appointment.MaxDurationMinutes)

		found := check(t, []appointment.Booking{existing}, query(tenant1, at(10, 0), 15))

		require.NotNil(t, found)
		assert.Equal(t, existing.ID, found.ID)
	})

	t.Run("最初に見つかった競合を返す", func(t *testing.T) {
		first := booking(tenant1, at(10, 0), 60)
		second := booking(tenant1, at(10, 30), 60)

		found := check(t, []appointment.Booking{first, second}, query(tenant1, at(10, 15), 60))

		require.NotNil(t, found)
		assert.Equal(t, first.ID, found.ID)
	})
}

func TestConflictChecker_Window(t *testing.T) {
	t.Run("lookback exceeds the maximum duration", func(t *testing.T) {
		assert.Greater(t, appointment.Lookback, time.Duration(appointment.MaxDurationMinutes)*time.Minute)
	})

	t.Run("candidates are read from start minus lookback", func(t *testing.T) {
		src := &memorySource{}
		checker := appointment.NewConflictChecker(src, nil)

		_, err := checker.Check(context.Background(), query(tenant1, at(10, 0), 60))

		require.NoError(t, err)
		assert.Equal(t, at(10, 0).Add(-appointment.Lookback), src.lastFrom)
	})
}

func TestConflictChecker_Failures(t *testing.T) {
	t.Run("候補取得の失敗はそのまま返す", func(t *testing.T) {
		storeErr := errors.New("connection reset")
		obs := &recordingObserver{}
		checker := appointment.NewConflictChecker(&memorySource{err: storeErr}, obs)

		found, err := checker.Check(context.Background(), query(tenant1, at(10, 0), 60))

		assert.Nil(t, found)
		assert.Same(t, storeErr, err)
		assert.Equal(t, []string{appointment.CheckResultError}, obs.results)
	})

	t.Run("長さ0以下の入力はパニックせず競合なし", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60)
		src := &memorySource{bookings: []appointment.Booking{existing}}
		checker := appointment.NewConflictChecker(src, nil)

		for _, minutes := range []int{0, -30} {
			found, err := checker.Check(context.Background(), query(tenant1, at(10, 30), minutes))
			require.NoError(t, err)
			assert.Nil(t, found)
		}
		assert.Zero(t, src.callCount)
	})

	t.Run("結果をオブザーバーに通知する", func(t *testing.T) {
		existing := booking(tenant1, at(10, 0), 60)
		obs := &recordingObserver{}
		checker := appointment.NewConflictChecker(&memorySource{bookings: []appointment.Booking{existing}}, obs)

		_, err := checker.Check(context.Background(), query(tenant1, at(10, 30), 60))
		require.NoError(t, err)
		_, err = checker.Check(context.Background(), query(tenant1, at(12, 0), 60))
		require.NoError(t, err)

		assert.Equal(t, []string{appointment.CheckResultConflict, appointment.CheckResultClear}, obs.results)
		assert.Equal(t, []int{1, 1}, obs.candidates)
	})
}

func TestFindConflict(t *testing.T) {
	t.Run("reapplies owner, status and exclusion filters on raw candidates", func(t *testing.T) {
		self := booking(tenant1, at(10, 0), 60)
		otherTenant := booking(tenant2, at(10, 0), 60)
		cancelled := booking(tenant1, at(10, 0), 60, func(b *builder.AppointmentBuilder) {
			b.Status = appointment.StatusCancelled
		})
		q := query(tenant1, at(10, 0), 60)
		q.ExcludeID = &self.ID

		assert.Nil(t, appointment.FindConflict(q, []appointment.Booking{self, otherTenant, cancelled}))
	})

	t.Run("nil candidates", func(t *testing.T) {
		assert.Nil(t, appointment.FindConflict(query(tenant1, at(10, 0), 60), nil))
	})

	t.Run("長さ0の既存予約も候補の内側なら競合", func(t *testing.T) {
		point := booking(tenant1, at(10, 30), 0)

		found := appointment.FindConflict(query(tenant1, at(10, 0), 60), []appointment.Booking{point})

		require.NotNil(t, found)
		assert.Equal(t, point.ID, found.ID)
	})

	t.Run("長さ0の既存予約が候補の端にあるなら競合しない", func(t *testing.T) {
		edges := []appointment.Booking{booking(tenant1, at(10, 0), 0), booking(tenant1, at(11, 0), 0)}

		assert.Nil(t, appointment.FindConflict(query(tenant1, at(10, 0), 60), edges))
	})
}

func TestConflictError(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	conflict := booking(tenant1, time.Date(2030, 3, 14, 5, 30, 0, 0, time.UTC), 60, func(b *builder.AppointmentBuilder) {
		b.PetName = "Biscuit"
	})

	e := appointment.NewConflictError(conflict, tokyo)

	assert.Equal(t, "This time slot conflicts with Biscuit's appointment at 2:30 PM", e.Error())
	assert.Equal(t, "This time slot conflicts with Biscuit's appointment at 5:30 AM", appointment.NewConflictError(conflict, nil).Error())
}
