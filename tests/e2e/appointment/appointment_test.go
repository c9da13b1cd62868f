//go:build e2e

package appointment_test

import (
	"fmt"
	"net/http"
	gohttptest "net/http/httptest"
	"sync"
	"testing"
	"time"

	"groomer-crm/internal/handler/dto/request"
	"groomer-crm/internal/handler/dto/response"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/tests/common/authtest"
	"groomer-crm/tests/common/dbtest"
	"groomer-crm/tests/common/httptest"
	"groomer-crm/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	appointmentsURL  = "/api/appointments"
	appointmentURL   = "/api/appointments/%s"
	statusURL        = "/api/appointments/%s/status"
	checkConflictURL = "/api/appointments/check-conflict?date=%s&time=%s&duration_minutes=%d"
)

type AppointmentSuite struct {
	e2e.SharedSuite
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AppointmentSuite))
}

type groomer struct {
	id    uuid.UUID
	token string
	bella uuid.UUID
	max   uuid.UUID
}

// newGroomer signs in a fresh account that owns one client with two pets.
func (s *AppointmentSuite) newGroomer(email string) groomer {
	t := s.T()
	ownerID, token := authtest.CreateAndLogin(t, s.DB, s.Router, email)
	clientID := dbtest.CreateTestClient(t, s.DB, ownerID, "Sarah", "Johnson")
	return groomer{
		id:    ownerID,
		token: token,
		bella: dbtest.CreateTestPet(t, s.DB, ownerID, clientID, "Bella", "Dog"),
		max:   dbtest.CreateTestPet(t, s.DB, ownerID, clientID, "Max", "Dog"),
	}
}

// the test config runs in UTC, so local wall-clock equals UTC
func nextWeek() string {
	return time.Now().UTC().AddDate(0, 0, 7).Format("2006-01-02")
}

func at(date, clock string) time.Time {
	t, _ := time.Parse("2006-01-02 15:04", date+" "+clock)
	return t
}

func minutes(n int) *int { return &n }

func (s *AppointmentSuite) create(g groomer, petID uuid.UUID, date, clock string, duration int) *gohttptest.ResponseRecorder {
	reqBody := request.CreateAppointmentRequest{
		PetID:           petID,
		Date:            date,
		Time:            clock,
		DurationMinutes: minutes(duration),
		Service:         "Full Groom",
	}
	return httptest.PerformRequest(s.T(), s.Router, http.MethodPost, appointmentsURL, reqBody, g.token)
}

func (s *AppointmentSuite) TestCreateConflicts() {
	s.Run("重なる予約は409で既存予約の詳細を返す", func() {
		t := s.T()
		g := s.newGroomer("overlap@example.com")
		date := nextWeek()

		first := s.create(g, g.bella, date, "10:00", 60)
		require.Equal(t, http.StatusCreated, first.Code, first.Body.String())
		var created response.AppointmentResponse
		httptest.DecodeJSON(t, first, &created)
		require.Equal(t, "scheduled", created.Status)
		require.True(t, created.EndAt.Equal(at(date, "11:00")))

		second := s.create(g, g.max, date, "10:30", 60)
		httptest.AssertErrorResponse(t, second, http.StatusConflict, "conflicts with Bella's appointment at 10:00 AM")
		detail := httptest.AssertConflict(t, second, "Bella")
		require.Equal(t, created.ID, detail.ConflictingAppointmentID)

		require.Equal(t, 1, dbtest.CountAppointments(t, s.DB, g.id))
	})

	s.Run("終了時刻ちょうどに始まる予約は競合しない", func() {
		t := s.T()
		g := s.newGroomer("adjacent@example.com")
		date := nextWeek()

		require.Equal(t, http.StatusCreated, s.create(g, g.bella, date, "10:00", 60).Code)
		require.Equal(t, http.StatusCreated, s.create(g, g.max, date, "11:00", 30).Code)
		require.Equal(t, http.StatusCreated, s.create(g, g.max, date, "09:00", 60).Code)
	})

	s.Run("キャンセル済みの予約は枠を塞がない", func() {
		t := s.T()
		g := s.newGroomer("cancelled@example.com")
		date := nextWeek()

		first := s.create(g, g.bella, date, "14:00", 90)
		require.Equal(t, http.StatusCreated, first.Code)
		var created response.AppointmentResponse
		httptest.DecodeJSON(t, first, &created)

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, fmt.Sprintf(statusURL, created.ID),
			request.UpdateStatusRequest{Status: "cancelled"}, g.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		require.Equal(t, http.StatusCreated, s.create(g, g.max, date, "14:30", 60).Code)
	})

	s.Run("他テナントの予約とは競合しない", func() {
		t := s.T()
		a := s.newGroomer("tenant-a@example.com")
		b := s.newGroomer("tenant-b@example.com")
		date := nextWeek()

		first := s.create(a, a.bella, date, "09:00", 120)
		require.Equal(t, http.StatusCreated, first.Code)
		var created response.AppointmentResponse
		httptest.DecodeJSON(t, first, &created)

		require.Equal(t, http.StatusCreated, s.create(b, b.bella, date, "09:30", 60).Code)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(appointmentURL, created.ID), nil, b.token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "")
	})

	s.Run("他テナントのペットでは予約できない", func() {
		t := s.T()
		a := s.newGroomer("pet-owner@example.com")
		b := s.newGroomer("intruder@example.com")

		res := s.create(b, a.bella, nextWeek(), "12:00", 60)
		require.Equal(t, http.StatusNotFound, res.Code, res.Body.String())
	})
}

func (s *AppointmentSuite) TestConcurrentCreate() {
	s.Run("同じ枠への同時予約は一件だけ成功する", func() {
		t := s.T()
		g := s.newGroomer("race@example.com")
		date := nextWeek()

		const attempts = 8
		codes := make([]int, attempts)
		var wg sync.WaitGroup
		for i := range attempts {
			wg.Add(1)
			go func() {
				defer wg.Done()
				petID := g.bella
				if i%2 == 1 {
					petID = g.max
				}
				reqBody := request.CreateAppointmentRequest{
					PetID: petID, Date: date, Time: "15:00", DurationMinutes: minutes(60),
				}
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, g.token)
				codes[i] = w.Code
			}()
		}
		wg.Wait()

		created, conflicted := 0, 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				created++
			case http.StatusConflict:
				conflicted++
			}
		}
		require.Equal(t, 1, created, "codes: %v", codes)
		require.Equal(t, attempts-1, conflicted, "codes: %v", codes)
		require.Equal(t, 1, dbtest.CountAppointments(t, s.DB, g.id))
	})
}

func (s *AppointmentSuite) TestUpdate() {
	s.Run("自分自身とは競合せず時間を延長できる", func() {
		t := s.T()
		g := s.newGroomer("extend@example.com")
		date := nextWeek()

		first := s.create(g, g.bella, date, "10:00", 60)
		require.Equal(t, http.StatusCreated, first.Code)
		var created response.AppointmentResponse
		httptest.DecodeJSON(t, first, &created)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(appointmentURL, created.ID),
			request.UpdateAppointmentRequest{DurationMinutes: minutes(90)}, g.token)
		var updated response.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, 90, updated.DurationMinutes)
	})

	s.Run("他の予約に重なる移動は409", func() {
		t := s.T()
		g := s.newGroomer("move@example.com")
		date := nextWeek()

		require.Equal(t, http.StatusCreated, s.create(g, g.bella, date, "10:00", 60).Code)
		second := s.create(g, g.max, date, "13:00", 60)
		require.Equal(t, http.StatusCreated, second.Code)
		var moving response.AppointmentResponse
		httptest.DecodeJSON(t, second, &moving)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, fmt.Sprintf(appointmentURL, moving.ID),
			request.UpdateAppointmentRequest{Date: date, Time: "10:45"}, g.token)
		httptest.AssertConflict(t, w, "Bella")
	})
}

func (s *AppointmentSuite) TestCheckConflict() {
	s.Run("空き枠と埋まった枠を判定する", func() {
		t := s.T()
		g := s.newGroomer("dry-run@example.com")
		date := nextWeek()
		existing := dbtest.CreateTestAppointment(t, s.DB, g.id, g.bella, at(date, "10:00"), 60, "scheduled")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(checkConflictURL, date, "10:30", 30), nil, g.token)
		var busy queries.ConflictView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &busy)
		require.NotNil(t, busy.Conflict)

		want := queries.ConflictSummary{
			AppointmentID: existing,
			PetName:       "Bella",
			StartAt:       at(date, "10:00"),
			EndAt:         at(date, "11:00"),
		}
		if diff := cmp.Diff(want, *busy.Conflict, cmpopts.EquateApproxTime(time.Second)); diff != "" {
			t.Errorf("conflict mismatch (-want +got):\n%s", diff)
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(checkConflictURL, date, "11:00", 30), nil, g.token)
		var free queries.ConflictView
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &free)
		require.Nil(t, free.Conflict)
	})
}

func (s *AppointmentSuite) TestListRange() {
	s.Run("期間内の予約を開始時刻順に返す", func() {
		t := s.T()
		g := s.newGroomer("list@example.com")
		date := nextWeek()
		dbtest.CreateTestAppointment(t, s.DB, g.id, g.max, at(date, "13:00"), 60, "scheduled")
		dbtest.CreateTestAppointment(t, s.DB, g.id, g.bella, at(date, "09:00"), 60, "completed")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"?from="+date+"&to="+date, nil, g.token)
		var views []response.AppointmentResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &views)
		require.Len(t, views, 2)
		require.Equal(t, "Bella", views[0].PetName)
		require.Equal(t, "Max", views[1].PetName)
		require.Equal(t, "Sarah Johnson", views[0].ClientName)
	})
}
