package repository

import (
	"context"
	"time"

	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type UserWriteQueries interface {
	CreateUser(ctx context.Context, db query.DBTX, arg query.CreateUserParams) (query.User, error)
	UpdateUserLastLogin(ctx context.Context, db query.DBTX, arg query.UpdateUserLastLoginParams) error
	UpdateUserName(ctx context.Context, db query.DBTX, arg query.UpdateUserNameParams) (int64, error)
}

type UserRepository struct {
	queries UserWriteQueries
}

func NewUserRepository(queries UserWriteQueries) *UserRepository {
	return &UserRepository{queries: queries}
}

func (r *UserRepository) Create(ctx context.Context, tx query.DBTX, u *user.User) error {
	_, err := r.queries.CreateUser(ctx, tx, query.CreateUserParams{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Plan:         u.Plan().String(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx query.DBTX, userID uuid.UUID, at time.Time) error {
	err := r.queries.UpdateUserLastLogin(ctx, tx, query.UpdateUserLastLoginParams{
		ID:          userID,
		LastLoginAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user last login", err)
	}
	return nil
}

func (r *UserRepository) UpdateName(ctx context.Context, tx query.DBTX, u *user.User) error {
	n, err := r.queries.UpdateUserName(ctx, tx, query.UpdateUserNameParams{
		ID:        u.ID(),
		Name:      u.Name().Value(),
		UpdatedAt: pgconv.TimeToPgtype(u.UpdatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user name", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}
