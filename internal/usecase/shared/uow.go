package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/domain/pet"
	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra/query"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Appointments() AppointmentRepository
	Clients() ClientRepository
	Pets() PetRepository
	Services() ServiceRepository
	Settings() SettingsRepository
	Users() UserRepository
	Outbox() OutboxRepository
	Reads() CommandReads
	// LockOwnerSchedule blocks until no other transaction holds the owner's
	// schedule lock. Held until commit or rollback.
	LockOwnerSchedule(ctx context.Context, ownerID uuid.UUID) error
	DB() query.DBTX
}

// CommandReads are the reads a command needs to validate itself. Every
// lookup is owner scoped; a row of another owner is reported as not found.
// It is also the conflict checker's candidate source.
type CommandReads interface {
	appointment.CandidateSource

	AppointmentByID(ctx context.Context, ownerID, id uuid.UUID) (*AppointmentSnapshot, error)
	PetByID(ctx context.Context, ownerID, id uuid.UUID) (*PetSnapshot, error)
	ClientByID(ctx context.Context, ownerID, id uuid.UUID) (*ClientSnapshot, error)
	ServiceByID(ctx context.Context, ownerID, id uuid.UUID) (*ServiceSnapshot, error)
	ServiceNameTaken(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error)
	CountClients(ctx context.Context, ownerID uuid.UUID) (int, error)
	UserByID(ctx context.Context, id uuid.UUID) (*UserSnapshot, error)
	UserByEmail(ctx context.Context, email string) (*UserSnapshot, error)
	// SettingsByOwner returns nil without error when the owner never saved settings.
	SettingsByOwner(ctx context.Context, ownerID uuid.UUID) (*SettingsSnapshot, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx query.DBTX, apt *appointment.Appointment) error
	Update(ctx context.Context, tx query.DBTX, apt *appointment.Appointment) error
	Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error
}

type ClientRepository interface {
	Create(ctx context.Context, tx query.DBTX, c *client.Client) error
	Update(ctx context.Context, tx query.DBTX, c *client.Client) error
	Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error
}

type PetRepository interface {
	Create(ctx context.Context, tx query.DBTX, p *pet.Pet) error
	Update(ctx context.Context, tx query.DBTX, p *pet.Pet) error
	Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error
}

type ServiceRepository interface {
	Create(ctx context.Context, tx query.DBTX, s *catalog.Service) error
	Update(ctx context.Context, tx query.DBTX, s *catalog.Service) error
	Delete(ctx context.Context, tx query.DBTX, ownerID, id uuid.UUID) error
}

type SettingsRepository interface {
	Upsert(ctx context.Context, tx query.DBTX, s *settings.Settings) error
}

type UserRepository interface {
	Create(ctx context.Context, tx query.DBTX, u *user.User) error
	UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID, at time.Time) error
	UpdateName(ctx context.Context, tx query.DBTX, u *user.User) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx query.DBTX, evt OutboxEvent) error
}
