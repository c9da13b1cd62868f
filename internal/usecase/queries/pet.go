package queries

//go:generate mockgen -source=pet.go -destination=../../../tests/mock/queries/pet.go -package=queriesmock

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrPetNotFound = errs.New("pet not found")

type PetReadStore interface {
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*PetView, error)
	// List filters by client when clientID is non-nil.
	List(ctx context.Context, ownerID uuid.UUID, clientID *uuid.UUID) ([]*PetView, error)
}

type PetQueries interface {
	List(ctx context.Context, ownerID uuid.UUID, clientID *uuid.UUID) ([]*PetView, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*PetView, error)
}

type petQueriesImpl struct {
	readStore PetReadStore
}

func NewPetQueries(readStore PetReadStore) PetQueries {
	return &petQueriesImpl{readStore: readStore}
}

func (q *petQueriesImpl) List(ctx context.Context, ownerID uuid.UUID, clientID *uuid.UUID) ([]*PetView, error) {
	return q.readStore.List(ctx, ownerID, clientID)
}

func (q *petQueriesImpl) Get(ctx context.Context, ownerID, id uuid.UUID) (*PetView, error) {
	p, err := q.readStore.FindByID(ctx, ownerID, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPetNotFound)
		}
		return nil, err
	}
	return p, nil
}
