package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const clientColumns = `c.id, c.owner_id, c.first_name, c.last_name, c.email, c.phone, c.created_at, c.updated_at`

const createClient = `
INSERT INTO clients (id, owner_id, first_name, last_name, email, phone, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $7)`

type CreateClientParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FirstName string
	LastName  string
	Email     pgtype.Text
	Phone     pgtype.Text
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateClient(ctx context.Context, db DBTX, arg CreateClientParams) error {
	_, err := db.Exec(ctx, createClient,
		arg.ID, arg.OwnerID, arg.FirstName, arg.LastName, arg.Email, arg.Phone, arg.CreatedAt)
	return err
}

const updateClient = `
UPDATE clients
SET first_name = $3, last_name = $4, email = $5, phone = $6, updated_at = $7
WHERE id = $1 AND owner_id = $2`

type UpdateClientParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	FirstName string
	LastName  string
	Email     pgtype.Text
	Phone     pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdateClient(ctx context.Context, db DBTX, arg UpdateClientParams) (int64, error) {
	tag, err := db.Exec(ctx, updateClient,
		arg.ID, arg.OwnerID, arg.FirstName, arg.LastName, arg.Email, arg.Phone, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteClient = `DELETE FROM clients WHERE id = $1 AND owner_id = $2`

type OwnedIDParams struct {
	ID      uuid.UUID
	OwnerID uuid.UUID
}

func (q *Queries) DeleteClient(ctx context.Context, db DBTX, arg OwnedIDParams) (int64, error) {
	tag, err := db.Exec(ctx, deleteClient, arg.ID, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getClient = `SELECT ` + clientColumns + ` FROM clients c WHERE c.id = $1 AND c.owner_id = $2`

func (q *Queries) GetClient(ctx context.Context, db DBTX, arg OwnedIDParams) (Client, error) {
	var i Client
	err := db.QueryRow(ctx, getClient, arg.ID, arg.OwnerID).Scan(
		&i.ID,
		&i.OwnerID,
		&i.FirstName,
		&i.LastName,
		&i.Email,
		&i.Phone,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const listClientsWithPetCount = `
SELECT ` + clientColumns + `, COUNT(p.id)::int AS pet_count
FROM clients c
LEFT JOIN pets p ON p.client_id = c.id
WHERE c.owner_id = $1
GROUP BY c.id
ORDER BY c.created_at DESC`

type ListClientsWithPetCountRow struct {
	Client
	PetCount int32
}

func (q *Queries) ListClientsWithPetCount(ctx context.Context, db DBTX, ownerID uuid.UUID) ([]ListClientsWithPetCountRow, error) {
	rows, err := db.Query(ctx, listClientsWithPetCount, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListClientsWithPetCountRow
	for rows.Next() {
		var i ListClientsWithPetCountRow
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.FirstName,
			&i.LastName,
			&i.Email,
			&i.Phone,
			&i.CreatedAt,
			&i.UpdatedAt,
			&i.PetCount,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countClients = `SELECT COUNT(*) FROM clients WHERE owner_id = $1`

func (q *Queries) CountClients(ctx context.Context, db DBTX, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := db.QueryRow(ctx, countClients, ownerID).Scan(&count)
	return count, err
}
