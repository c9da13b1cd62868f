//go:build unit || e2e

package builder

import (
	"time"

	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Now       time.Time
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:        uuid.New(),
		OwnerID:   uuid.New(),
		FirstName: "Sarah",
		LastName:  "Johnson",
		Email:     "sarah@example.com",
		Phone:     "555-0100",
		Now:       DefaultNow,
	}
}

func (c *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(c)
	return c
}

func (c *ClientBuilder) Profile() client.Profile {
	return client.Profile{FirstName: c.FirstName, LastName: c.LastName, Email: c.Email, Phone: c.Phone}
}

// Build methods
func (c *ClientBuilder) BuildDomain() (*client.Client, error) {
	return client.NewClient(c.OwnerID, c.Profile(), c.Now)
}

func (c *ClientBuilder) BuildSnapshot() *shared.ClientSnapshot {
	return &shared.ClientSnapshot{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		CreatedAt: c.Now,
		UpdatedAt: c.Now,
	}
}

// Fluent builder methods
func (c *ClientBuilder) WithOwnerID(ownerID uuid.UUID) *ClientBuilder {
	c.OwnerID = ownerID
	return c
}

func (c *ClientBuilder) WithID(id uuid.UUID) *ClientBuilder {
	c.ID = id
	return c
}
