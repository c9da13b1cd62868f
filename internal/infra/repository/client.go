package repository

import (
	"context"

	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ClientWriteQueries interface {
	CreateClient(ctx context.Context, db query.DBTX, arg query.CreateClientParams) error
	UpdateClient(ctx context.Context, db query.DBTX, arg query.UpdateClientParams) (int64, error)
	DeleteClient(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (int64, error)
}

type ClientRepository struct {
	queries ClientWriteQueries
	db      query.DBTX
}

func NewClientRepository(queries ClientWriteQueries, db query.DBTX) *ClientRepository {
	return &ClientRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ClientRepository) Create(ctx context.Context, tx query.DBTX, c *client.Client) error {
	if err := r.queries.CreateClient(ctx, tx, converter.ClientToCreateParams(c)); err != nil {
		return infra.WrapRepoErr("failed to create client", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, tx query.DBTX, c *client.Client) error {
	n, err := r.queries.UpdateClient(ctx, tx, converter.ClientToUpdateParams(c))
	if err != nil {
		return infra.WrapRepoErr("failed to update client", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}

// Delete cascades to the client's pets and their appointments.
func (r *ClientRepository) Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error {
	n, err := r.queries.DeleteClient(ctx, tx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete client", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("client not found", nil, infra.KindNotFound)
	}
	return nil
}
