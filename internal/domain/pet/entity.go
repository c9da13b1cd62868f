package pet

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrInvalidName    = errors.New("pet name must be between 1 and 100 characters")
	ErrInvalidSpecies = errors.New("species must be between 1 and 100 characters")
	ErrBreedTooLong   = errors.New("breed must be 100 characters or fewer")
	ErrInvalidAge     = errors.New("age must be between 0 and 50")
	ErrNotesTooLong   = errors.New("notes must be 1000 characters or fewer")
	ErrMissingClient  = errors.New("client is required")
	ErrMissingOwner   = errors.New("owner is required")
)

const (
	MaxTextLength  = 100
	MaxNotesLength = 1000
	MaxAge         = 50
)

type Profile struct {
	ClientID uuid.UUID
	Name     string
	Species  string
	Breed    string
	Age      *int
	Notes    string
}

func (p Profile) normalize() (Profile, error) {
	if p.ClientID == uuid.Nil {
		return Profile{}, ErrMissingClient
	}
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" || utf8.RuneCountInString(p.Name) > MaxTextLength {
		return Profile{}, ErrInvalidName
	}
	p.Species = strings.TrimSpace(p.Species)
	if p.Species == "" || utf8.RuneCountInString(p.Species) > MaxTextLength {
		return Profile{}, ErrInvalidSpecies
	}
	p.Breed = strings.TrimSpace(p.Breed)
	if utf8.RuneCountInString(p.Breed) > MaxTextLength {
		return Profile{}, ErrBreedTooLong
	}
	if p.Age != nil && (*p.Age < 0 || *p.Age > MaxAge) {
		return Profile{}, ErrInvalidAge
	}
	p.Notes = strings.TrimSpace(p.Notes)
	if utf8.RuneCountInString(p.Notes) > MaxNotesLength {
		return Profile{}, ErrNotesTooLong
	}
	return p, nil
}

type Pet struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	profile   Profile
	createdAt time.Time
	updatedAt time.Time
}

func NewPet(ownerID uuid.UUID, p Profile, now time.Time) (*Pet, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	v, err := p.normalize()
	if err != nil {
		return nil, err
	}
	return &Pet{
		id:        uuid.New(),
		ownerID:   ownerID,
		profile:   v,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructPet(id, ownerID uuid.UUID, p Profile, createdAt, updatedAt time.Time) *Pet {
	return &Pet{id: id, ownerID: ownerID, profile: p, createdAt: createdAt, updatedAt: updatedAt}
}

func (p *Pet) Update(profile Profile, now time.Time) error {
	v, err := profile.normalize()
	if err != nil {
		return err
	}
	p.profile = v
	p.updatedAt = now
	return nil
}

func (p *Pet) ID() uuid.UUID        { return p.id }
func (p *Pet) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Pet) ClientID() uuid.UUID  { return p.profile.ClientID }
func (p *Pet) Name() string         { return p.profile.Name }
func (p *Pet) Species() string      { return p.profile.Species }
func (p *Pet) Breed() string        { return p.profile.Breed }
func (p *Pet) Age() *int            { return p.profile.Age }
func (p *Pet) Notes() string        { return p.profile.Notes }
func (p *Pet) CreatedAt() time.Time { return p.createdAt }
func (p *Pet) UpdatedAt() time.Time { return p.updatedAt }
