package commands

//go:generate mockgen -source=client.go -destination=../../../tests/mock/commands/client.go -package=commandsmock

import (
	"context"

	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrClientNotFound = errs.New("client not found")
	ErrPlanLimit      = errs.New("plan limit reached")
)

type ClientCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, p client.Profile) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, p client.Profile) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type clientCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClientCommands(uow shared.UnitOfWork, clk clock.Clock) ClientCommands {
	return &clientCommandsImpl{uow: uow, clock: clk}
}

func (uc *clientCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, p client.Profile) (uuid.UUID, error) {
	c, err := client.NewClient(ownerID, p, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		owner, err := tx.Reads().UserByID(ctx, ownerID)
		if err != nil {
			return markNotFound(err, ErrUserNotFound)
		}
		count, err := tx.Reads().CountClients(ctx, ownerID)
		if err != nil {
			return err
		}
		if err := client.CheckPlanLimit(user.Plan(owner.Plan), count); err != nil {
			return errs.Mark(err, ErrPlanLimit)
		}

		if err := tx.Clients().Create(ctx, tx.DB(), c); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
			AggregateType: shared.AggregateClient,
			AggregateID:   c.ID(),
			EventType:     shared.EventClientCreated,
			Payload: map[string]any{
				"id":       c.ID(),
				"owner_id": ownerID,
				"name":     c.FullName(),
			},
			OccurredAt: c.CreatedAt(),
		})
	})
	if err != nil {
		return uuid.Nil, err
	}
	return c.ID(), nil
}

func (uc *clientCommandsImpl) Update(ctx context.Context, ownerID, id uuid.UUID, p client.Profile) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ClientByID(ctx, ownerID, id)
		if err != nil {
			return markNotFound(err, ErrClientNotFound)
		}
		c := reconstructClient(snap)
		if err := c.Update(p, uc.clock.Now()); err != nil {
			return err
		}
		if err := tx.Clients().Update(ctx, tx.DB(), c); err != nil {
			return markNotFound(err, ErrClientNotFound)
		}
		return nil
	})
}

// Delete removes the client together with its pets and their appointments.
func (uc *clientCommandsImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Clients().Delete(ctx, tx.DB(), ownerID, id); err != nil {
			return markNotFound(err, ErrClientNotFound)
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.OutboxEvent{
			AggregateType: shared.AggregateClient,
			AggregateID:   id,
			EventType:     shared.EventClientDeleted,
			Payload:       map[string]uuid.UUID{"id": id, "owner_id": ownerID},
			OccurredAt:    uc.clock.Now(),
		})
	})
}

func reconstructClient(s *shared.ClientSnapshot) *client.Client {
	var email *user.Email
	if s.Email != "" {
		if e, err := user.NewEmail(s.Email); err == nil {
			email = &e
		}
	}
	return client.ReconstructClient(s.ID, s.OwnerID, s.FirstName, s.LastName, email, s.Phone, s.CreatedAt, s.UpdatedAt)
}
