package repository

import (
	"context"

	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type ServiceWriteQueries interface {
	CreateService(ctx context.Context, db query.DBTX, arg query.CreateServiceParams) error
	UpdateService(ctx context.Context, db query.DBTX, arg query.UpdateServiceParams) (int64, error)
	DeleteService(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (int64, error)
}

type ServiceRepository struct {
	queries ServiceWriteQueries
	db      query.DBTX
}

func NewServiceRepository(queries ServiceWriteQueries, db query.DBTX) *ServiceRepository {
	return &ServiceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceRepository) Create(ctx context.Context, tx query.DBTX, s *catalog.Service) error {
	if err := r.queries.CreateService(ctx, tx, converter.ServiceToCreateParams(s)); err != nil {
		return infra.WrapRepoErr("failed to create service", err)
	}
	return nil
}

func (r *ServiceRepository) Update(ctx context.Context, tx query.DBTX, s *catalog.Service) error {
	n, err := r.queries.UpdateService(ctx, tx, converter.ServiceToUpdateParams(s))
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error {
	n, err := r.queries.DeleteService(ctx, tx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete service", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}
