package api

import (
	"fmt"
	"net/http"
	"time"

	"groomer-crm/internal/domain/appointment"
	reqdto "groomer-crm/internal/handler/dto/request"
	resdto "groomer-crm/internal/handler/dto/response"
	"groomer-crm/internal/handler/middleware"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type AppointmentHandler struct {
	commands commands.AppointmentCommands
	queries  queries.AppointmentQueries
	loc      *time.Location
}

func NewAppointmentHandler(commands commands.AppointmentCommands, queries queries.AppointmentQueries, loc *time.Location) *AppointmentHandler {
	return &AppointmentHandler{commands: commands, queries: queries, loc: loc}
}

// @Summary List appointments
// @Description Appointments starting in [from, to). Defaults to the next 7 days from today.
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param from query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param to query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param status query string false "scheduled | completed | cancelled"
// @Success 200 {array} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Router /api/appointments [get]
func (h *AppointmentHandler) List(c *gin.Context) {
	ownerID, filter, ok := h.bindRange(c)
	if !ok {
		return
	}

	views, err := h.queries.Range(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondViews(c, views)
}

// @Summary Export schedule
// @Description Download the appointments in range as an Excel workbook
// @Tags appointments
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param from query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param to query string false "RFC 3339 timestamp or YYYY-MM-DD"
// @Param status query string false "scheduled | completed | cancelled"
// @Success 200 {file} binary
// @Router /api/appointments/export [get]
func (h *AppointmentHandler) Export(c *gin.Context) {
	ownerID, filter, ok := h.bindRange(c)
	if !ok {
		return
	}

	data, err := h.queries.Export(c.Request.Context(), ownerID, filter)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("schedule-%s.xlsx", time.Now().In(h.loc).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// @Summary Check a slot
// @Description Dry-run of the conflict check the booking form calls before submitting
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param date query string true "YYYY-MM-DD"
// @Param time query string true "HH:MM"
// @Param duration_minutes query int true "15-480"
// @Param exclude_id query string false "Appointment being edited"
// @Success 200 {object} queries.ConflictView
// @Failure 400 {object} httperr.Response
// @Router /api/appointments/check-conflict [get]
func (h *AppointmentHandler) CheckConflict(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var q reqdto.ConflictQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return
	}
	start, err := appointment.ParseLocalStart(q.Date, q.Time, h.loc)
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.queries.CheckConflict(c.Request.Context(), ownerID, q.ToProbe(start))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Get appointment
// @Tags appointments
// @Security BearerAuth
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [get]
func (h *AppointmentHandler) Get(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}
	h.respondOne(c, http.StatusOK, ownerID, id)
}

// @Summary Book appointment
// @Description Rejected with 409 when the slot overlaps another scheduled appointment
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateAppointmentRequest true "Appointment"
// @Success 201 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.ConflictDetail}
// @Router /api/appointments [post]
func (h *AppointmentHandler) Create(c *gin.Context) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return
	}

	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.commands.Create(c.Request.Context(), ownerID, req.ToCommand())
	if err != nil {
		respondError(c, err)
		return
	}
	h.respondOne(c, http.StatusCreated, ownerID, result.AppointmentID)
}

// @Summary Update appointment
// @Description Partial update. A scheduled result is re-checked for conflicts excluding itself.
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateAppointmentRequest true "Changes"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response{detail=resdto.ConflictDetail}
// @Router /api/appointments/{id} [put]
func (h *AppointmentHandler) Update(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if _, err := h.commands.Update(c.Request.Context(), ownerID, id, req.ToCommand()); err != nil {
		respondError(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, ownerID, id)
}

// @Summary Change appointment status
// @Tags appointments
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body reqdto.UpdateStatusRequest true "Status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id}/status [patch]
func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	var req reqdto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.UpdateStatus(c.Request.Context(), ownerID, id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	h.respondOne(c, http.StatusOK, ownerID, id)
}

// @Summary Delete appointment
// @Tags appointments
// @Security BearerAuth
// @Param id path string true "Appointment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Router /api/appointments/{id} [delete]
func (h *AppointmentHandler) Delete(c *gin.Context) {
	ownerID, id, ok := ownerAndID(c)
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), ownerID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AppointmentHandler) bindRange(c *gin.Context) (uuid.UUID, queries.RangeFilter, bool) {
	ownerID, ok := middleware.MustUserID(c)
	if !ok {
		return uuid.Nil, queries.RangeFilter{}, false
	}

	var q reqdto.RangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindError(c, err)
		return uuid.Nil, queries.RangeFilter{}, false
	}
	filter, err := q.ToFilter(h.loc)
	if err != nil {
		respondError(c, err)
		return uuid.Nil, queries.RangeFilter{}, false
	}
	return ownerID, filter, true
}

func (h *AppointmentHandler) respondOne(c *gin.Context, status int, ownerID, id uuid.UUID) {
	view, err := h.queries.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromAppointmentView(view, h.loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, res)
}

func (h *AppointmentHandler) respondViews(c *gin.Context, views []*queries.AppointmentView) {
	res, err := resdto.FromAppointmentViews(views, h.loc)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
