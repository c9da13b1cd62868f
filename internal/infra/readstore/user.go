package readstore

import (
	"context"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db query.DBTX, id uuid.UUID) (query.User, error)
	GetUserByEmail(ctx context.Context, db query.DBTX, email string) (query.User, error)
	CountClients(ctx context.Context, db query.DBTX, ownerID uuid.UUID) (int64, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      query.DBTX
}

func NewUserReadStore(queries UserReadQueries, db query.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toAuthorizedUserView(row), nil
}

// FindByEmail also returns the password hash for credential checks.
func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row, err := r.queries.GetUserByEmail(ctx, r.db, email)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return toAuthorizedUserView(row), row.PasswordHash, nil
}

func (r *UserReadStore) CountClients(ctx context.Context, ownerID uuid.UUID) (int, error) {
	n, err := r.queries.CountClients(ctx, r.db, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count clients", err)
	}
	return int(n), nil
}

func toAuthorizedUserView(row query.User) *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		Plan:        row.Plan,
		LastLoginAt: pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
