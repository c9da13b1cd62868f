package commands

//go:generate mockgen -source=profile.go -destination=../../../tests/mock/commands/profile.go -package=commandsmock

import (
	"context"

	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type ProfileCommands interface {
	Rename(ctx context.Context, userID uuid.UUID, name string) error
}

type profileCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewProfileCommands(uow shared.UnitOfWork, clk clock.Clock) ProfileCommands {
	return &profileCommandsImpl{uow: uow, clock: clk}
}

func (uc *profileCommandsImpl) Rename(ctx context.Context, userID uuid.UUID, name string) error {
	n, err := user.NewName(name)
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().UserByID(ctx, userID)
		if err != nil {
			return markNotFound(err, ErrUserNotFound)
		}
		email, err := user.NewEmail(snap.Email)
		if err != nil {
			return err
		}
		u := user.ReconstructUser(snap.ID, n, email, snap.PasswordHash, user.Plan(snap.Plan), snap.LastLoginAt, snap.CreatedAt, snap.UpdatedAt)
		u.Rename(n, uc.clock.Now())
		return markNotFound(tx.Users().UpdateName(ctx, tx.DB(), u), ErrUserNotFound)
	})
}
