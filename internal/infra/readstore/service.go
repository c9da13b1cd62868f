package readstore

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceReadQueries interface {
	GetService(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (query.Service, error)
	ListServices(ctx context.Context, db query.DBTX, arg query.ListServicesParams) ([]query.Service, error)
}

type ServiceReadStore struct {
	queries ServiceReadQueries
	db      query.DBTX
}

func NewServiceReadStore(queries ServiceReadQueries, db query.DBTX) *ServiceReadStore {
	return &ServiceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ServiceReadStore) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*queries.ServiceView, error) {
	row, err := r.queries.GetService(ctx, r.db, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get service", err)
	}
	return toServiceView(row), nil
}

func (r *ServiceReadStore) List(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*queries.ServiceView, error) {
	rows, err := r.queries.ListServices(ctx, r.db, query.ListServicesParams{OwnerID: ownerID, ActiveOnly: activeOnly})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	views := make([]*queries.ServiceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, toServiceView(row))
	}
	return views, nil
}

func toServiceView(s query.Service) *queries.ServiceView {
	return &queries.ServiceView{
		ID:              s.ID,
		Name:            s.Name,
		DurationMinutes: int(s.DurationMinutes),
		PriceCents:      pgconv.IntPtrFromInt4(s.PriceCents),
		Description:     pgconv.StringFromText(s.Description),
		IsActive:        s.IsActive,
		SortOrder:       int(s.SortOrder),
		CreatedAt:       pgconv.TimeFromPgtype(s.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(s.UpdatedAt),
	}
}
