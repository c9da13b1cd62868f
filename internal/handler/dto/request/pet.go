package request

import (
	"groomer-crm/internal/domain/pet"

	"github.com/google/uuid"
)

type PetRequest struct {
	ClientID uuid.UUID `json:"client_id" binding:"required"`
	Name     string    `json:"name" binding:"required,max=100"`
	Species  string    `json:"species" binding:"required,max=100"`
	Breed    string    `json:"breed" binding:"max=100"`
	Age      *int      `json:"age" binding:"omitempty,min=0,max=50"`
	Notes    string    `json:"notes" binding:"max=1000"`
}

func (r *PetRequest) ToDomain() pet.Profile {
	return pet.Profile{
		ClientID: r.ClientID,
		Name:     r.Name,
		Species:  r.Species,
		Breed:    r.Breed,
		Age:      r.Age,
		Notes:    r.Notes,
	}
}

type PetListQuery struct {
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
}

func (q *PetListQuery) ClientFilter() *uuid.UUID {
	if id, err := uuid.Parse(q.ClientID); err == nil {
		return &id
	}
	return nil
}
