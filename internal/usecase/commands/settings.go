package commands

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/commands/settings.go -package=commandsmock

import (
	"context"

	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettingsCommands interface {
	Save(ctx context.Context, ownerID uuid.UUID, v settings.Values) error
}

type settingsCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewSettingsCommands(uow shared.UnitOfWork, clk clock.Clock) SettingsCommands {
	return &settingsCommandsImpl{uow: uow, clock: clk}
}

func (uc *settingsCommandsImpl) Save(ctx context.Context, ownerID uuid.UUID, v settings.Values) error {
	s, err := settings.New(ownerID, v, uc.clock.Now())
	if err != nil {
		return err
	}
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Upsert(ctx, tx.DB(), s)
	})
}
