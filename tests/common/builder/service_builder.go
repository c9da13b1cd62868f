//go:build unit || e2e

package builder

import (
	"time"

	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type ServiceBuilder struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      *int
	Description     string
	IsActive        bool
	SortOrder       int
	Now             time.Time
}

func NewServiceBuilder() *ServiceBuilder {
	price := 4500
	return &ServiceBuilder{
		ID:              uuid.New(),
		OwnerID:         uuid.New(),
		Name:            "Bath & Brush",
		DurationMinutes: 60,
		PriceCents:      &price,
		Description:     "Basic bath and brush out",
		IsActive:        true,
		SortOrder:       1,
		Now:             DefaultNow,
	}
}

func (s *ServiceBuilder) With(mutate func(*ServiceBuilder)) *ServiceBuilder {
	mutate(s)
	return s
}

func (s *ServiceBuilder) Definition() catalog.Definition {
	return catalog.Definition{
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		Description:     s.Description,
		IsActive:        s.IsActive,
		SortOrder:       s.SortOrder,
	}
}

// Build methods
func (s *ServiceBuilder) BuildDomain() (*catalog.Service, error) {
	return catalog.NewService(s.OwnerID, s.Definition(), s.Now)
}

func (s *ServiceBuilder) BuildSnapshot() *shared.ServiceSnapshot {
	return &shared.ServiceSnapshot{
		ID:              s.ID,
		OwnerID:         s.OwnerID,
		Name:            s.Name,
		DurationMinutes: s.DurationMinutes,
		PriceCents:      s.PriceCents,
		Description:     s.Description,
		IsActive:        s.IsActive,
		SortOrder:       s.SortOrder,
		CreatedAt:       s.Now,
		UpdatedAt:       s.Now,
	}
}

// Fluent builder methods
func (s *ServiceBuilder) WithOwnerID(ownerID uuid.UUID) *ServiceBuilder {
	s.OwnerID = ownerID
	return s
}

