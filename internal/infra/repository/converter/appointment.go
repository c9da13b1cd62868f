package converter

import (
	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) query.CreateAppointmentParams {
	return query.CreateAppointmentParams{
		ID:              a.ID(),
		OwnerID:         a.OwnerID(),
		PetID:           a.PetID(),
		StartAt:         pgconv.TimeToPgtype(a.Start()),
		DurationMinutes: int32(a.Duration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		Status:          a.Status().String(),
		Service:         pgconv.TextFromString(a.Service().String()),
		Notes:           pgconv.TextFromString(a.Notes().String()),
		CreatedAt:       pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AppointmentToUpdateParams(a *appointment.Appointment) query.UpdateAppointmentParams {
	return query.UpdateAppointmentParams{
		ID:              a.ID(),
		OwnerID:         a.OwnerID(),
		PetID:           a.PetID(),
		StartAt:         pgconv.TimeToPgtype(a.Start()),
		DurationMinutes: int32(a.Duration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		Status:          a.Status().String(),
		Service:         pgconv.TextFromString(a.Service().String()),
		Notes:           pgconv.TextFromString(a.Notes().String()),
		UpdatedAt:       pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}
