package user

import (
	"time"

	"github.com/google/uuid"
)

// User is the tenant account. Every other record is owned by one.
type User struct {
	id           uuid.UUID
	name         Name
	email        Email
	passwordHash string
	plan         Plan
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name Name, email Email, passwordHash string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		plan:         PlanFree,
	}
}

func ReconstructUser(id uuid.UUID, name Name, email Email, passwordHash string, plan Plan, lastLoginAt *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		plan:         plan,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) Rename(name Name, now time.Time) {
	u.name = name
	u.updatedAt = now
}

func (u *User) ID() uuid.UUID           { return u.id }
func (u *User) Name() Name              { return u.name }
func (u *User) Email() Email            { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Plan() Plan              { return u.plan }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }
