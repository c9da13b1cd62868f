package request

import (
	"errors"
	"time"

	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

var ErrInvalidDateParam = errors.New("from/to must be RFC 3339 or YYYY-MM-DD")

type CreateAppointmentRequest struct {
	PetID           uuid.UUID `json:"pet_id" binding:"required"`
	Date            string    `json:"date" binding:"required,datetime=2006-01-02"`
	Time            string    `json:"time" binding:"required,datetime=15:04"`
	DurationMinutes *int      `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	Service         string    `json:"service" binding:"max=100"`
	Notes           string    `json:"notes" binding:"max=1000"`
}

func (r *CreateAppointmentRequest) ToCommand() commands.CreateAppointmentRequest {
	return commands.CreateAppointmentRequest{
		PetID:           r.PetID,
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: r.DurationMinutes,
		Service:         r.Service,
		Notes:           r.Notes,
	}
}

// UpdateAppointmentRequest only changes the fields that are present. Date and
// time move the appointment together.
type UpdateAppointmentRequest struct {
	PetID           *uuid.UUID `json:"pet_id"`
	Date            string     `json:"date" binding:"required_with=Time,omitempty,datetime=2006-01-02"`
	Time            string     `json:"time" binding:"required_with=Date,omitempty,datetime=15:04"`
	DurationMinutes *int       `json:"duration_minutes" binding:"omitempty,min=15,max=480"`
	Status          string     `json:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
	Service         *string    `json:"service" binding:"omitempty,max=100"`
	Notes           *string    `json:"notes" binding:"omitempty,max=1000"`
}

func (r *UpdateAppointmentRequest) ToCommand() commands.UpdateAppointmentRequest {
	cmd := commands.UpdateAppointmentRequest{
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: r.DurationMinutes,
		Status:          r.Status,
		Service:         r.Service,
		Notes:           r.Notes,
	}
	if r.PetID != nil {
		cmd.PetID = *r.PetID
	}
	return cmd
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=scheduled completed cancelled"`
}

type RangeQuery struct {
	From   string `form:"from"`
	To     string `form:"to"`
	Status string `form:"status" binding:"omitempty,oneof=scheduled completed cancelled"`
}

// ToFilter reads date-only bounds as midnight in loc.
func (q *RangeQuery) ToFilter(loc *time.Location) (queries.RangeFilter, error) {
	filter := queries.RangeFilter{Status: q.Status}
	if q.From != "" {
		from, err := parseBound(q.From, loc)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := parseBound(q.To, loc)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	return filter, nil
}

func parseBound(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(dateLayout, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDateParam
}

type ConflictQuery struct {
	Date            string `form:"date" binding:"required,datetime=2006-01-02"`
	Time            string `form:"time" binding:"required,datetime=15:04"`
	DurationMinutes int    `form:"duration_minutes" binding:"required,min=15,max=480"`
	ExcludeID       string `form:"exclude_id" binding:"omitempty,uuid"`
}

func (q *ConflictQuery) ToProbe(start time.Time) queries.ConflictProbe {
	probe := queries.ConflictProbe{
		Start:           start,
		DurationMinutes: q.DurationMinutes,
	}
	if id, err := uuid.Parse(q.ExcludeID); err == nil {
		probe.ExcludeID = &id
	}
	return probe
}
