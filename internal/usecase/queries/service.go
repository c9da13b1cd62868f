package queries

//go:generate mockgen -source=service.go -destination=../../../tests/mock/queries/service.go -package=queriesmock

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ServiceView, error)
	List(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*ServiceView, error)
}

type ServiceQueries interface {
	List(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*ServiceView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*ServiceView, error)
}

type serviceQueriesImpl struct {
	readStore ServiceReadStore
}

func NewServiceQueries(readStore ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{readStore: readStore}
}

func (q *serviceQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, activeOnly bool) ([]*ServiceView, error) {
	return q.readStore.List(ctx, ownerID, activeOnly)
}

func (q *serviceQueriesImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*ServiceView, error) {
	s, err := q.readStore.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrServiceNotFound)
		}
		return nil, err
	}
	return s, nil
}
