package settings

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrBusinessNameTooLong  = errors.New("business name must be 100 characters or fewer")
	ErrBusinessPhoneTooLong = errors.New("business phone must be 30 characters or fewer")
)

type Values struct {
	BusinessName           string
	BusinessEmail          string
	BusinessPhone          string
	DefaultDurationMinutes int
}

type Settings struct {
	ownerID         uuid.UUID
	businessName    string
	businessEmail   *user.Email
	businessPhone   string
	defaultDuration appointment.Duration
	updatedAt       time.Time
}

// Defaults are the settings an account gets before it saves any.
func Defaults(ownerID uuid.UUID, now time.Time) *Settings {
	d, _ := appointment.NewDuration(appointment.DefaultDurationMinutes)
	return &Settings{ownerID: ownerID, defaultDuration: d, updatedAt: now}
}

func New(ownerID uuid.UUID, v Values, now time.Time) (*Settings, error) {
	s := &Settings{ownerID: ownerID}
	if err := s.Apply(v, now); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) Apply(v Values, now time.Time) error {
	name := strings.TrimSpace(v.BusinessName)
	if utf8.RuneCountInString(name) > 100 {
		return ErrBusinessNameTooLong
	}
	phone := strings.TrimSpace(v.BusinessPhone)
	if utf8.RuneCountInString(phone) > 30 {
		return ErrBusinessPhoneTooLong
	}
	var email *user.Email
	if e := strings.TrimSpace(v.BusinessEmail); e != "" {
		parsed, err := user.NewEmail(e)
		if err != nil {
			return err
		}
		email = &parsed
	}
	minutes := v.DefaultDurationMinutes
	if minutes == 0 {
		minutes = appointment.DefaultDurationMinutes
	}
	d, err := appointment.NewDuration(minutes)
	if err != nil {
		return err
	}

	s.businessName = name
	s.businessEmail = email
	s.businessPhone = phone
	s.defaultDuration = d
	s.updatedAt = now
	return nil
}

func (s *Settings) OwnerID() uuid.UUID                    { return s.ownerID }
func (s *Settings) BusinessName() string                  { return s.businessName }
func (s *Settings) BusinessEmail() *user.Email            { return s.businessEmail }
func (s *Settings) BusinessPhone() string                 { return s.businessPhone }
func (s *Settings) DefaultDuration() appointment.Duration { return s.defaultDuration }
func (s *Settings) UpdatedAt() time.Time                  { return s.updatedAt }
