package readstore

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type SettingsReadQueries interface {
	GetSettings(ctx context.Context, db query.DBTX, ownerID uuid.UUID) (query.Setting, error)
}

type SettingsReadStore struct {
	queries SettingsReadQueries
	db      query.DBTX
}

func NewSettingsReadStore(queries SettingsReadQueries, db query.DBTX) *SettingsReadStore {
	return &SettingsReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SettingsReadStore) FindByOwner(ctx context.Context, ownerID uuid.UUID) (*queries.SettingsView, error) {
	row, err := r.queries.GetSettings(ctx, r.db, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("settings not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get settings", err)
	}
	return &queries.SettingsView{
		BusinessName:           pgconv.StringFromText(row.BusinessName),
		BusinessEmail:          pgconv.StringFromText(row.BusinessEmail),
		BusinessPhone:          pgconv.StringFromText(row.BusinessPhone),
		DefaultDurationMinutes: int(row.DefaultDurationMinutes),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}
