package catalog

import (
	"time"

	"github.com/google/uuid"
)

func price(cents int) *int { return &cents }

var defaultDefinitions = []Definition{
	{Name: "Bath & Brush", DurationMinutes: 60, PriceCents: price(4500), Description: "Basic bath and brush out", IsActive: true, SortOrder: 1},
	{Name: "Full Groom", DurationMinutes: 120, PriceCents: price(8500), Description: "Complete grooming service including bath, haircut, and styling", IsActive: true, SortOrder: 2},
	{Name: "Haircut", DurationMinutes: 90, PriceCents: price(6500), Description: "Breed-specific haircut and styling", IsActive: true, SortOrder: 3},
	{Name: "Nail Trim", DurationMinutes: 15, PriceCents: price(1500), Description: "Nail trimming and filing", IsActive: true, SortOrder: 4},
	{Name: "Ear Cleaning", DurationMinutes: 15, PriceCents: price(1000), Description: "Ear cleaning and plucking", IsActive: true, SortOrder: 5},
	{Name: "De-shedding Treatment", DurationMinutes: 45, PriceCents: price(4000), Description: "Special treatment to reduce shedding", IsActive: true, SortOrder: 6},
}

// DefaultServices is the starter catalog every new account receives.
func DefaultServices(ownerID uuid.UUID, now time.Time) ([]*Service, error) {
	out := make([]*Service, 0, len(defaultDefinitions))
	for _, d := range defaultDefinitions {
		s, err := NewService(ownerID, d, now)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
