package queries

//go:generate mockgen -source=client.go -destination=../../../tests/mock/queries/client.go -package=queriesmock

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrClientNotFound = errs.New("client not found")

type ClientReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientView, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error)
}

type ClientQueries interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*ClientDetailView, error)
}

type clientQueriesImpl struct {
	clients ClientReadStore
	pets    PetReadStore
}

func NewClientQueries(clients ClientReadStore, pets PetReadStore) ClientQueries {
	return &clientQueriesImpl{clients: clients, pets: pets}
}

func (q *clientQueriesImpl) List(ctx context.Context, ownerID uuid.UUID) ([]*ClientView, error) {
	return q.clients.List(ctx, ownerID)
}

func (q *clientQueriesImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*ClientDetailView, error) {
	c, err := q.clients.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrClientNotFound)
		}
		return nil, err
	}

	pets, err := q.pets.List(ctx, ownerID, &id)
	if err != nil {
		return nil, err
	}
	if pets == nil {
		pets = []*PetView{}
	}
	return &ClientDetailView{ClientView: *c, Pets: pets}, nil
}
