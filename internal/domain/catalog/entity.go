package catalog

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"groomer-crm/internal/domain/appointment"

	"github.com/google/uuid"
)

var (
	ErrInvalidName        = errors.New("service name must be between 1 and 100 characters")
	ErrNegativePrice      = errors.New("price cannot be negative")
	ErrDescriptionTooLong = errors.New("description must be 500 characters or fewer")
	ErrMissingOwner       = errors.New("owner is required")
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

type Definition struct {
	Name            string
	DurationMinutes int
	PriceCents      *int
	Description     string
	IsActive        bool
	SortOrder       int
}

type Service struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	duration    appointment.Duration
	priceCents  *int
	description string
	isActive    bool
	sortOrder   int
	createdAt   time.Time
	updatedAt   time.Time
}

func NewService(ownerID uuid.UUID, d Definition, now time.Time) (*Service, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	s := &Service{id: uuid.New(), ownerID: ownerID, createdAt: now}
	if err := s.apply(d, now); err != nil {
		return nil, err
	}
	return s, nil
}

func ReconstructService(
	id, ownerID uuid.UUID,
	name string,
	duration appointment.Duration,
	priceCents *int,
	description string,
	isActive bool,
	sortOrder int,
	createdAt, updatedAt time.Time,
) *Service {
	return &Service{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		duration:    duration,
		priceCents:  priceCents,
		description: description,
		isActive:    isActive,
		sortOrder:   sortOrder,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

func (s *Service) Update(d Definition, now time.Time) error {
	return s.apply(d, now)
}

func (s *Service) Toggle(now time.Time) {
	s.isActive = !s.isActive
	s.updatedAt = now
}

func (s *Service) apply(d Definition, now time.Time) error {
	name := strings.TrimSpace(d.Name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return ErrInvalidName
	}
	duration, err := appointment.NewDuration(d.DurationMinutes)
	if err != nil {
		return err
	}
	if d.PriceCents != nil && *d.PriceCents < 0 {
		return ErrNegativePrice
	}
	desc := strings.TrimSpace(d.Description)
	if utf8.RuneCountInString(desc) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}

	s.name = name
	s.duration = duration
	s.priceCents = d.PriceCents
	s.description = desc
	s.isActive = d.IsActive
	s.sortOrder = d.SortOrder
	s.updatedAt = now
	return nil
}

func (s *Service) ID() uuid.UUID                  { return s.id }
func (s *Service) OwnerID() uuid.UUID             { return s.ownerID }
func (s *Service) Name() string                   { return s.name }
func (s *Service) Duration() appointment.Duration { return s.duration }
func (s *Service) PriceCents() *int               { return s.priceCents }
func (s *Service) Description() string            { return s.description }
func (s *Service) IsActive() bool                 { return s.isActive }
func (s *Service) SortOrder() int                 { return s.sortOrder }
func (s *Service) CreatedAt() time.Time           { return s.createdAt }
func (s *Service) UpdatedAt() time.Time           { return s.updatedAt }
