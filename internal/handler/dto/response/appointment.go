package response

import (
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// AppointmentResponse adds the local calendar date and time to the view so
// clients do not have to know the business time zone.
type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	PetID           uuid.UUID `json:"pet_id"`
	PetName         string    `json:"pet_name"`
	PetSpecies      string    `json:"pet_species"`
	PetBreed        string    `json:"pet_breed,omitempty"`
	ClientID        uuid.UUID `json:"client_id"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone,omitempty"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Service         string    `json:"service,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromAppointmentView(v *queries.AppointmentView, loc *time.Location) (*AppointmentResponse, error) {
	var res AppointmentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	local := v.StartAt.In(loc)
	res.Date = local.Format("2006-01-02")
	res.Time = local.Format("15:04")
	return &res, nil
}

func FromAppointmentViews(views []*queries.AppointmentView, loc *time.Location) ([]*AppointmentResponse, error) {
	res := make([]*AppointmentResponse, 0, len(views))
	for _, v := range views {
		r, err := FromAppointmentView(v, loc)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

// ConflictDetail is attached to 409 responses.
type ConflictDetail struct {
	ConflictingAppointmentID uuid.UUID `json:"conflicting_appointment_id"`
	PetName                  string    `json:"pet_name"`
	Start                    time.Time `json:"start"`
}

func FromConflictError(e *appointment.ConflictError) ConflictDetail {
	return ConflictDetail{
		ConflictingAppointmentID: e.Conflict.ID,
		PetName:                  e.Conflict.PetName,
		Start:                    e.LocalStart(),
	}
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

type ToggleResponse struct {
	ID       uuid.UUID `json:"id"`
	IsActive bool      `json:"is_active"`
}
