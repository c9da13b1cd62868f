package readstore

import (
	"context"
	"time"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentViewQueries interface {
	GetAppointmentView(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (query.AppointmentViewRow, error)
	ListAppointmentsInRange(ctx context.Context, db query.DBTX, arg query.ListAppointmentsInRangeParams) ([]query.AppointmentViewRow, error)
}

type AppointmentReadStore struct {
	queries AppointmentViewQueries
	db      query.DBTX
}

func NewAppointmentReadStore(queries AppointmentViewQueries, db query.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *AppointmentReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentView(ctx, r.db, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment view", err)
	}
	return toAppointmentView(row), nil
}

func (r *AppointmentReadStore) FindInRange(ctx context.Context, ownerID uuid.UUID, from, to time.Time, status string) ([]*queries.AppointmentView, error) {
	rows, err := r.queries.ListAppointmentsInRange(ctx, r.db, query.ListAppointmentsInRangeParams{
		OwnerID: ownerID,
		From:    pgconv.TimeToPgtype(from),
		To:      pgconv.TimeToPgtype(to),
		Status:  pgconv.TextFromString(status),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments in range", err)
	}

	views := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toAppointmentView(row))
	}
	return views, nil
}

func toAppointmentView(row query.AppointmentViewRow) *queries.AppointmentView {
	start := pgconv.TimeFromPgtype(row.StartAt)
	return &queries.AppointmentView{
		ID:              row.ID,
		PetID:           row.PetID,
		PetName:         row.PetName,
		PetSpecies:      row.PetSpecies,
		PetBreed:        pgconv.StringFromText(row.PetBreed),
		ClientID:        row.ClientID,
		ClientName:      row.ClientFirstName + " " + row.ClientLastName,
		ClientPhone:     pgconv.StringFromText(row.ClientPhone),
		StartAt:         start,
		EndAt:           start.Add(time.Duration(row.DurationMinutes) * time.Minute),
		DurationMinutes: int(row.DurationMinutes),
		Status:          row.Status,
		Service:         pgconv.StringFromText(row.Service),
		Notes:           pgconv.StringFromText(row.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
