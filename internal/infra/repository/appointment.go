package repository

import (
	"context"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db query.DBTX, arg query.CreateAppointmentParams) error
	UpdateAppointment(ctx context.Context, db query.DBTX, arg query.UpdateAppointmentParams) (int64, error)
	DeleteAppointment(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
	db      query.DBTX
}

func NewAppointmentRepository(queries AppointmentWriteQueries, db query.DBTX) *AppointmentRepository {
	return &AppointmentRepository{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentRepository) Create(ctx context.Context, tx query.DBTX, apt *appointment.Appointment) error {
	if err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(apt)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) Update(ctx context.Context, tx query.DBTX, apt *appointment.Appointment) error {
	n, err := r.queries.UpdateAppointment(ctx, tx, converter.AppointmentToUpdateParams(apt))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AppointmentRepository) Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error {
	n, err := r.queries.DeleteAppointment(ctx, tx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete appointment", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
