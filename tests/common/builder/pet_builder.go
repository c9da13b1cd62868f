//go:build unit || e2e

package builder

import (
	"time"

	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type PetBuilder struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	ClientID uuid.UUID
	Name     string
	Species  string
	Breed    string
	Age      *int
	Notes    string
	Now      time.Time
}

func NewPetBuilder() *PetBuilder {
	age := 4
	return &PetBuilder{
		ID:       uuid.New(),
		OwnerID:  uuid.New(),
		ClientID: uuid.New(),
		Name:     "Max",
		Species:  "Dog",
		Breed:    "Golden Retriever",
		Age:      &age,
		Notes:    "",
		Now:      DefaultNow,
	}
}

func (p *PetBuilder) With(mutate func(*PetBuilder)) *PetBuilder {
	mutate(p)
	return p
}

func (p *PetBuilder) Profile() pet.Profile {
	return pet.Profile{
		ClientID: p.ClientID,
		Name:     p.Name,
		Species:  p.Species,
		Breed:    p.Breed,
		Age:      p.Age,
		Notes:    p.Notes,
	}
}

// Build methods
func (p *PetBuilder) BuildDomain() (*pet.Pet, error) {
	return pet.NewPet(p.OwnerID, p.Profile(), p.Now)
}

func (p *PetBuilder) BuildSnapshot() *shared.PetSnapshot {
	return &shared.PetSnapshot{
		ID:        p.ID,
		OwnerID:   p.OwnerID,
		ClientID:  p.ClientID,
		Name:      p.Name,
		Species:   p.Species,
		Breed:     p.Breed,
		Age:       p.Age,
		Notes:     p.Notes,
		CreatedAt: p.Now,
		UpdatedAt: p.Now,
	}
}

// Fluent builder methods
func (p *PetBuilder) WithOwnerID(ownerID uuid.UUID) *PetBuilder {
	p.OwnerID = ownerID
	return p
}

func (p *PetBuilder) WithID(id uuid.UUID) *PetBuilder {
	p.ID = id
	return p
}

