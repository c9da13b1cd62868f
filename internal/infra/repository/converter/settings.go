package converter

import (
	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
)

func SettingsToUpsertParams(s *settings.Settings) query.UpsertSettingsParams {
	email := pgtype.Text{}
	if s.BusinessEmail() != nil {
		email = pgconv.TextFromString(s.BusinessEmail().Value())
	}
	return query.UpsertSettingsParams{
		OwnerID:                s.OwnerID(),
		BusinessName:           pgconv.TextFromString(s.BusinessName()),
		BusinessEmail:          email,
		BusinessPhone:          pgconv.TextFromString(s.BusinessPhone()),
		DefaultDurationMinutes: int32(s.DefaultDuration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		UpdatedAt:              pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
