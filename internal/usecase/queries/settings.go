package queries

//go:generate mockgen -source=settings.go -destination=../../../tests/mock/queries/settings.go -package=queriesmock

import (
	"context"

	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettingsReadStore interface {
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (*SettingsView, error)
}

type SettingsQueries interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*SettingsView, error)
}

type settingsQueriesImpl struct {
	readStore SettingsReadStore
	uow       shared.UnitOfWork
	clock     clock.Clock
}

func NewSettingsQueries(readStore SettingsReadStore, uow shared.UnitOfWork, clk clock.Clock) SettingsQueries {
	return &settingsQueriesImpl{readStore: readStore, uow: uow, clock: clk}
}

// Get stores the defaults on first read for accounts created before signup
// seeded them.
func (q *settingsQueriesImpl) Get(ctx context.Context, ownerID uuid.UUID) (*SettingsView, error) {
	view, err := q.readStore.FindByOwner(ctx, ownerID)
	if err == nil {
		return view, nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return nil, err
	}

	defaults := settings.Defaults(ownerID, q.clock.Now())
	err = q.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Settings().Upsert(ctx, tx.DB(), defaults)
	})
	if err != nil {
		return nil, err
	}
	return &SettingsView{
		DefaultDurationMinutes: defaults.DefaultDuration().Minutes(),
		UpdatedAt:              defaults.UpdatedAt(),
	}, nil
}
