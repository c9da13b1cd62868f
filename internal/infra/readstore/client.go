package readstore

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type ClientReadQueries interface {
	GetClient(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (query.Client, error)
	ListClientsWithPetCount(ctx context.Context, db query.DBTX, ownerID uuid.UUID) ([]query.ListClientsWithPetCountRow, error)
}

type ClientReadStore struct {
	queries ClientReadQueries
	db      query.DBTX
}

func NewClientReadStore(queries ClientReadQueries, db query.DBTX) *ClientReadStore {
	return &ClientReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ClientReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.ClientView, error) {
	row, err := r.queries.GetClient(ctx, r.db, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("client not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get client", err)
	}
	return toClientView(row, 0), nil
}

func (r *ClientReadStore) List(ctx context.Context, ownerID uuid.UUID) ([]*queries.ClientView, error) {
	rows, err := r.queries.ListClientsWithPetCount(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list clients", err)
	}
	views := make([]*queries.ClientView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toClientView(row.Client, int(row.PetCount)))
	}
	return views, nil
}

func toClientView(c query.Client, petCount int) *queries.ClientView {
	return &queries.ClientView{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     pgconv.StringFromText(c.Email),
		Phone:     pgconv.StringFromText(c.Phone),
		PetCount:  petCount,
		CreatedAt: pgconv.TimeFromPgtype(c.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(c.UpdatedAt),
	}
}
