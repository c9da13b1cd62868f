package query

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Plan         string
	LastLoginAt  pgtype.Timestamptz
	CreatedAt    pgtype.Timestamptz
	UpdatedAt    pgtype.Timestamptz
}

type Client struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FirstName string
	LastName  string
	Email     pgtype.Text
	Phone     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Pet struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ClientID  uuid.UUID
	Name      string
	Species   string
	Breed     pgtype.Text
	Age       pgtype.Int4
	Notes     pgtype.Text
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Service struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      pgtype.Int4
	Description     pgtype.Text
	IsActive        bool
	SortOrder       int32
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type Setting struct {
	OwnerID                uuid.UUID
	BusinessName           pgtype.Text
	BusinessEmail          pgtype.Text
	BusinessPhone          pgtype.Text
	DefaultDurationMinutes int32
	UpdatedAt              pgtype.Timestamptz
}

type Appointment struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	StartAt         pgtype.Timestamptz
	DurationMinutes int32
	Status          string
	Service         pgtype.Text
	Notes           pgtype.Text
	CreatedAt       pgtype.Timestamptz
	UpdatedAt       pgtype.Timestamptz
}

type OutboxEvent struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
	PublishedAt   pgtype.Timestamptz
	Attempts      int32
	LastError     pgtype.Text
}
