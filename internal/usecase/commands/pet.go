package commands

//go:generate mockgen -source=pet.go -destination=../../../tests/mock/commands/pet.go -package=commandsmock

import (
	"context"

	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type PetCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, p pet.Profile) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p pet.Profile) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type petCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewPetCommands(uow shared.UnitOfWork, clk clock.Clock) PetCommands {
	return &petCommandsImpl{uow: uow, clock: clk}
}

func (uc *petCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, p pet.Profile) (uuid.UUID, error) {
	pt, err := pet.NewPet(ownerID, p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Reads().ClientByID(ctx, ownerID, pt.ClientID()); err != nil {
			return markNotFound(err, ErrClientNotFound)
		}
		if err := tx.Pets().Create(ctx, tx.DB(), pt); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
			AggregateType: shared.AggregatePet,
			AggregateID:   pt.ID(),
			EventType:     shared.EventPetCreated,
			Payload: map[string]any{
				"id":        pt.ID(),
				"owner_id":  ownerID,
				"client_id": pt.ClientID(),
				"name":      pt.Name(),
				"species":   pt.Species(),
			},
			OccurredAt: pt.CreatedAt(),
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return pt.ID(), nil
}

func (uc *petCommandsImpl) Update(ctx context.Context, ownerID, id uuid.UUID, p pet.Profile) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().PetByID(ctx, ownerID, id)
		if err != nil {
			return markNotFound(err, ErrPetNotFound)
		}
		if p.ClientID != snap.ClientID {
			if _, err := tx.Reads().ClientByID(ctx, ownerID, p.ClientID); err != nil {
				return markNotFound(err, ErrClientNotFound)
			}
		}

		pt := pet.ReconstructPet(snap.ID, snap.OwnerID, pet.Profile{
			ClientID: snap.ClientID,
			Name:     snap.Name,
			Species:  snap.Species,
			Breed:    snap.Breed,
			Age:      snap.Age,
			Notes:    snap.Notes,
		}, snap.CreatedAt, snap.UpdatedAt)
		if err := pt.Update(p, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Pets().Update(ctx, tx.DB(), pt); err != nil {
			return markNotFound(err, ErrPetNotFound)
		}
		return nil
	})
}

// Delete removes the pet and its appointments.
func (uc *petCommandsImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Pets().Delete(ctx, tx.DB(), ownerID, id); err != nil {
			return markNotFound(err, ErrPetNotFound)
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
			AggregateType: shared.AggregatePet,
			AggregateID:   id,
			EventType:     shared.EventPetDeleted,
			Payload:       map[string]uuid.UUID{"id": id, "owner_id": ownerID},
			OccurredAt:    uc.clock.Now(),
		})
	})
}
