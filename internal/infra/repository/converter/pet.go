package converter

import (
	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
)

func PetToCreateParams(p *pet.Pet) query.CreatePetParams {
	return query.CreatePetParams{
		ID:        p.ID(),
		OwnerID:   p.OwnerID(),
		ClientID:  p.ClientID(),
		Name:      p.Name(),
		Species:   p.Species(),
		Breed:     pgconv.TextFromString(p.Breed()),
		Age:       pgconv.Int4FromIntPtr(p.Age()),
		Notes:     pgconv.TextFromString(p.Notes()),
		CreatedAt: pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

func PetToUpdateParams(p *pet.Pet) query.UpdatePetParams {
	return query.UpdatePetParams{
		ID:        p.ID(),
		OwnerID:   p.OwnerID(),
		ClientID:  p.ClientID(),
		Name:      p.Name(),
		Species:   p.Species(),
		Breed:     pgconv.TextFromString(p.Breed()),
		Age:       pgconv.Int4FromIntPtr(p.Age()),
		Notes:     pgconv.TextFromString(p.Notes()),
		UpdatedAt: pgconv.TimeToPgtype(p.UpdatedAt()),
	}
}
