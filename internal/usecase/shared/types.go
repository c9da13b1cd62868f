package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)

type AppointmentSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	Start           time.Time
	DurationMinutes int
	Status          string
	Service         string
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type PetSnapshot struct {
	ID       uuid.UUID
	OwnerID  uuid.UUID
	ClientID uuid.UUID
	Name     string
	Species  string
	Breed    string
	Age      *int
	Notes    string

	CreatedAt time.Time
	UpdatedAt time.Time
}

type ClientSnapshot struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FirstName string
	LastName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ServiceSnapshot struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DurationMinutes int
	PriceCents      *int
	Description     string
	IsActive        bool
	SortOrder       int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type UserSnapshot struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Plan         string
	LastLoginAt  *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type SettingsSnapshot struct {
	OwnerID                uuid.UUID
	BusinessName           string
	BusinessEmail          string
	BusinessPhone          string
	DefaultDurationMinutes int
	UpdatedAt              time.Time
}

// OutboxEvent is written in the same transaction as the change it describes.
// Payload is marshalled to JSON by the repository.
type OutboxEvent struct {
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       any
	OccurredAt    time.Time
}

const (
	AggregateAppointment = "appointment"
	AggregateClient      = "client"
	AggregatePet         = "pet"
)

const (
	EventAppointmentCreated       = "appointment.created"
	EventAppointmentUpdated       = "appointment.updated"
	EventAppointmentStatusChanged = "appointment.status_changed"
	EventAppointmentDeleted       = "appointment.deleted"
	EventClientCreated            = "client.created"
	EventClientDeleted            = "client.deleted"
	EventPetCreated               = "pet.created"
	EventPetDeleted               = "pet.deleted"
)
