package converter

import (
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
)

func ServiceToCreateParams(s *catalog.Service) query.CreateServiceParams {
	return query.CreateServiceParams{
		ID:              s.ID(),
		OwnerID:         s.OwnerID(),
		Name:            s.Name(),
		DurationMinutes: int32(s.Duration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		PriceCents:      pgconv.Int4FromIntPtr(s.PriceCents()),
		Description:     pgconv.TextFromString(s.Description()),
		IsActive:        s.IsActive(),
		SortOrder:       int32(s.SortOrder()),          // #nosec G115
		CreatedAt:       pgconv.TimeToPgtype(s.CreatedAt()),
	}
}

func ServiceToUpdateParams(s *catalog.Service) query.UpdateServiceParams {
	return query.UpdateServiceParams{
		ID:              s.ID(),
		OwnerID:         s.OwnerID(),
		Name:            s.Name(),
		DurationMinutes: int32(s.Duration().Minutes()), // #nosec G115 -- bounded by MaxDurationMinutes
		PriceCents:      pgconv.Int4FromIntPtr(s.PriceCents()),
		Description:     pgconv.TextFromString(s.Description()),
		IsActive:        s.IsActive(),
		SortOrder:       int32(s.SortOrder()),          // #nosec G115
		UpdatedAt:       pgconv.TimeToPgtype(s.UpdatedAt()),
	}
}
