package repository

import (
	"context"

	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/infra/repository/converter"
)

type SettingsWriteQueries interface {
	UpsertSettings(ctx context.Context, db query.DBTX, arg query.UpsertSettingsParams) error
}

type SettingsRepository struct {
	queries SettingsWriteQueries
	db      query.DBTX
}

func NewSettingsRepository(queries SettingsWriteQueries, db query.DBTX) *SettingsRepository {
	return &SettingsRepository{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsRepository) Upsert(ctx context.Context, tx query.DBTX, s *settings.Settings) error {
	if err := r.queries.UpsertSettings(ctx, tx, converter.SettingsToUpsertParams(s)); err != nil {
		return infra.WrapRepoErr("failed to save settings", err)
	}
	return nil
}
