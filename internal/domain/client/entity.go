package client

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"groomer-crm/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidFirstName = errors.New("first name must be between 1 and 100 characters")
	ErrInvalidLastName  = errors.New("last name must be between 1 and 100 characters")
	ErrPhoneTooLong     = errors.New("phone must be 30 characters or fewer")
	ErrPlanLimitReached = errors.New("client limit reached for current plan")
	ErrMissingOwner     = errors.New("owner is required")
)

const (
	MaxNameLength  = 100
	MaxPhoneLength = 30
)

type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
}

type validProfile struct {
	firstName string
	lastName  string
	email     *user.Email
	phone     string
}

func validate(p Profile) (validProfile, error) {
	first := strings.TrimSpace(p.FirstName)
	if first == "" || utf8.RuneCountInString(first) > MaxNameLength {
		return validProfile{}, ErrInvalidFirstName
	}
	last := strings.TrimSpace(p.LastName)
	if last == "" || utf8.RuneCountInString(last) > MaxNameLength {
		return validProfile{}, ErrInvalidLastName
	}
	var email *user.Email
	if e := strings.TrimSpace(p.Email); e != "" {
		v, err := user.NewEmail(e)
		if err != nil {
			return validProfile{}, err
		}
		email = &v
	}
	phone := strings.TrimSpace(p.Phone)
	if utf8.RuneCountInString(phone) > MaxPhoneLength {
		return validProfile{}, ErrPhoneTooLong
	}
	return validProfile{firstName: first, lastName: last, email: email, phone: phone}, nil
}

type Client struct {
	id        uuid.UUID
	ownerID   uuid.UUID
	firstName string
	lastName  string
	email     *user.Email
	phone     string
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(ownerID uuid.UUID, p Profile, now time.Time) (*Client, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	v, err := validate(p)
	if err != nil {
		return nil, err
	}
	return &Client{
		id:        uuid.New(),
		ownerID:   ownerID,
		firstName: v.firstName,
		lastName:  v.lastName,
		email:     v.email,
		phone:     v.phone,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructClient(id, ownerID uuid.UUID, firstName, lastName string, email *user.Email, phone string, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:        id,
		ownerID:   ownerID,
		firstName: firstName,
		lastName:  lastName,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Client) Update(p Profile, now time.Time) error {
	v, err := validate(p)
	if err != nil {
		return err
	}
	c.firstName = v.firstName
	c.lastName = v.lastName
	c.email = v.email
	c.phone = v.phone
	c.updatedAt = now
	return nil
}

// CheckPlanLimit rejects a new client when the owner's plan is already full.
func CheckPlanLimit(plan user.Plan, current int) error {
	limit := plan.ClientLimit()
	if limit >= 0 && current >= limit {
		return ErrPlanLimitReached
	}
	return nil
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) OwnerID() uuid.UUID   { return c.ownerID }
func (c *Client) FirstName() string    { return c.firstName }
func (c *Client) LastName() string     { return c.lastName }
func (c *Client) Email() *user.Email   { return c.email }
func (c *Client) Phone() string        { return c.phone }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }

func (c *Client) FullName() string {
	return c.firstName + " " + c.lastName
}
