package queries

import (
	"time"

	"github.com/google/uuid"
)

// AppointmentView is an appointment joined with its pet and client, as the
// calendar renders it.
type AppointmentView struct {
	ID              uuid.UUID `json:"id"`
	PetID           uuid.UUID `json:"pet_id"`
	PetName         string    `json:"pet_name"`
	PetSpecies      string    `json:"pet_species"`
	PetBreed        string    `json:"pet_breed,omitempty"`
	ClientID        uuid.UUID `json:"client_id"`
	ClientName      string    `json:"client_name"`
	ClientPhone     string    `json:"client_phone,omitempty"`
	StartAt         time.Time `json:"start_at"`
	EndAt           time.Time `json:"end_at"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          string    `json:"status"`
	Service         string    `json:"service,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ConflictSummary struct {
	AppointmentID uuid.UUID `json:"appointment_id"`
	PetName       string    `json:"pet_name"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
}

// ConflictView is the dry-run answer for the booking form. Conflict is nil
// when the slot is free.
type ConflictView struct {
	Conflict *ConflictSummary `json:"conflict"`
	Message  string           `json:"message,omitempty"`
}

type ClientView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	PetCount  int       `json:"pet_count"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ClientDetailView struct {
	ClientView
	Pets []*PetView `json:"pets"`
}

type PetView struct {
	ID                   uuid.UUID `json:"id"`
	ClientID             uuid.UUID `json:"client_id"`
	ClientName           string    `json:"client_name"`
	Name                 string    `json:"name"`
	Species              string    `json:"species"`
	Breed                string    `json:"breed,omitempty"`
	Age                  *int      `json:"age,omitempty"`
	Notes                string    `json:"notes,omitempty"`
	UpcomingAppointments int       `json:"upcoming_appointments"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

type ServiceView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	DurationMinutes int       `json:"duration_minutes"`
	PriceCents      *int      `json:"price_cents,omitempty"`
	Description     string    `json:"description,omitempty"`
	IsActive        bool      `json:"is_active"`
	SortOrder       int       `json:"sort_order"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type SettingsView struct {
	BusinessName           string    `json:"business_name,omitempty"`
	BusinessEmail          string    `json:"business_email,omitempty"`
	BusinessPhone          string    `json:"business_phone,omitempty"`
	DefaultDurationMinutes int       `json:"default_duration_minutes"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// AuthorizedUserView is the signed-in account as the identity layer sees it.
type AuthorizedUserView struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Plan        string     `json:"plan"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	Usage       *PlanUsage `json:"usage,omitempty"`
}

// PlanUsage is how much of the plan's client allowance is taken.
// ClientLimit is nil on plans without a cap.
type PlanUsage struct {
	Clients     int  `json:"clients"`
	ClientLimit *int `json:"client_limit"`
}
