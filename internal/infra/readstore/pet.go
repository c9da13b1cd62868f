package readstore

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type PetViewQueries interface {
	GetPetView(ctx context.Context, db query.DBTX, arg query.GetPetViewParams) (query.PetViewRow, error)
	ListPets(ctx context.Context, db query.DBTX, arg query.ListPetsParams) ([]query.PetViewRow, error)
}

type PetReadStore struct {
	queries PetViewQueries
	db      query.DBTX
	clock   clock.Clock
}

func NewPetReadStore(queries PetViewQueries, db query.DBTX, clk clock.Clock) *PetReadStore {
	return &PetReadStore{
		queries: queries,
		db:      db,
		clock:   clk,
	}
}

func (r *PetReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.PetView, error) {
	row, err := r.queries.GetPetView(ctx, r.db, query.GetPetViewParams{
		OwnerID: ownerID,
		Now:     pgconv.TimeToPgtype(r.clock.Now()),
		ID:      id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("pet not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get pet view", err)
	}
	return toPetView(row), nil
}

func (r *PetReadStore) List(ctx context.Context, ownerID uuid.UUID, clientID *uuid.UUID) ([]*queries.PetView, error) {
	rows, err := r.queries.ListPets(ctx, r.db, query.ListPetsParams{
		OwnerID:  ownerID,
		Now:      pgconv.TimeToPgtype(r.clock.Now()),
		ClientID: pgconv.UUIDPtrToPgtype(clientID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pets", err)
	}
	views := make([]*queries.PetView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toPetView(row))
	}
	return views, nil
}

func toPetView(row query.PetViewRow) *queries.PetView {
	return &queries.PetView{
		ID:                   row.ID,
		ClientID:             row.ClientID,
		ClientName:           row.ClientFirstName + " " + row.ClientLastName,
		Name:                 row.Name,
		Species:              row.Species,
		Breed:                pgconv.StringFromText(row.Breed),
		Age:                  pgconv.IntPtrFromInt4(row.Age),
		Notes:                pgconv.StringFromText(row.Notes),
		UpcomingAppointments: int(row.UpcomingCount),
		CreatedAt:            pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:            pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
