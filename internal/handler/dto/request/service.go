package request

import (
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/pkg/ptr"
)

type ServiceRequest struct {
	Name            string `json:"name" binding:"required,max=100"`
	DurationMinutes int    `json:"duration_minutes" binding:"required,min=15,max=480"`
	PriceCents      *int   `json:"price_cents" binding:"omitempty,min=0"`
	Description     string `json:"description" binding:"max=500"`
	IsActive        *bool  `json:"is_active"`
	SortOrder       int    `json:"sort_order" binding:"min=0"`
}

// ToDomain treats a missing is_active as active.
func (r *ServiceRequest) ToDomain() catalog.Definition {
	return catalog.Definition{
		Name:            r.Name,
		DurationMinutes: r.DurationMinutes,
		PriceCents:      r.PriceCents,
		Description:     r.Description,
		IsActive:        ptr.Deref(r.IsActive, true),
		SortOrder:       r.SortOrder,
	}
}

type ServiceListQuery struct {
	Active bool `form:"active"`
}
