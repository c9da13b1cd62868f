//go:build unit || e2e

package builder

import (
	"time"

	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Plan         user.Plan
	Now          time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Name:         "Jamie Groomer",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Plan:         user.PlanFree,
		Now:          DefaultNow,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	return user.ReconstructUser(u.ID, name, email, u.PasswordHash, u.Plan, nil, u.Now, u.Now), nil
}

func (u *UserBuilder) BuildInfra() query.User {
	return query.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Plan:         u.Plan.String(),
		CreatedAt:    pgconv.TimeToPgtype(u.Now),
		UpdatedAt:    pgconv.TimeToPgtype(u.Now),
	}
}

func (u *UserBuilder) BuildSnapshot() *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Plan:         u.Plan.String(),
		CreatedAt:    u.Now,
		UpdatedAt:    u.Now,
	}
}

func (u *UserBuilder) BuildView() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Plan:      u.Plan.String(),
		CreatedAt: u.Now,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithPasswordHash(hash string) *UserBuilder {
	u.PasswordHash = hash
	return u
}

func (u *UserBuilder) AsPro() *UserBuilder {
	u.Plan = user.PlanPro
	return u
}
