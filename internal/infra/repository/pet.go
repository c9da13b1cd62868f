package repository

import (
	"context"

	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository/converter"

	"github.com/google/uuid"
)

type PetWriteQueries interface {
	CreatePet(ctx context.Context, db query.DBTX, arg query.CreatePetParams) error
	UpdatePet(ctx context.Context, db query.DBTX, arg query.UpdatePetParams) (int64, error)
	DeletePet(ctx context.Context, db query.DBTX, arg query.OwnedIDParams) (int64, error)
}

type PetRepository struct {
	queries PetWriteQueries
	db      query.DBTX
}

func NewPetRepository(queries PetWriteQueries, db query.DBTX) *PetRepository {
	return &PetRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PetRepository) Create(ctx context.Context, tx query.DBTX, p *pet.Pet) error {
	if err := r.queries.CreatePet(ctx, tx, converter.PetToCreateParams(p)); err != nil {
		return infra.WrapRepoErr("failed to create pet", err)
	}
	return nil
}

func (r *PetRepository) Update(ctx context.Context, tx query.DBTX, p *pet.Pet) error {
	n, err := r.queries.UpdatePet(ctx, tx, converter.PetToUpdateParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to update pet", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *PetRepository) Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error {
	n, err := r.queries.DeletePet(ctx, tx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete pet", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("pet not found", nil, infra.KindNotFound)
	}
	return nil
}
