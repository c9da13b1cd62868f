package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, email, password_hash, plan, last_login_at, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var i User
	err := row.Scan(
		&i.ID,
		&i.Name,
		&i.Email,
		&i.PasswordHash,
		&i.Plan,
		&i.LastLoginAt,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createUser = `
INSERT INTO users (id, name, email, password_hash, plan)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + userColumns

type CreateUserParams struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Plan         string
}

func (q *Queries) CreateUser(ctx context.Context, db DBTX, arg CreateUserParams) (User, error) {
	row := db.QueryRow(ctx, createUser, arg.ID, arg.Name, arg.Email, arg.PasswordHash, arg.Plan)
	return scanUser(row)
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByEmail = `SELECT ` + userColumns + ` FROM users WHERE email = $1`

func (q *Queries) GetUserByEmail(ctx context.Context, db DBTX, email string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByEmail, email))
}

const updateUserLastLogin = `UPDATE users SET last_login_at = $2 WHERE id = $1`

type UpdateUserLastLoginParams struct {
	ID          uuid.UUID
	LastLoginAt pgtype.Timestamptz
}

func (q *Queries) UpdateUserLastLogin(ctx context.Context, db DBTX, arg UpdateUserLastLoginParams) error {
	_, err := db.Exec(ctx, updateUserLastLogin, arg.ID, arg.LastLoginAt)
	return err
}

const updateUserName = `UPDATE users SET name = $2, updated_at = $3 WHERE id = $1`

type UpdateUserNameParams struct {
	ID        uuid.UUID
	Name      string
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateUserName(ctx context.Context, db DBTX, arg UpdateUserNameParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserName, arg.ID, arg.Name, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
