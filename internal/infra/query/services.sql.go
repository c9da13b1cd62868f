package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const serviceColumns = `id, owner_id, name, duration_minutes, price_cents, description, is_active, sort_order, created_at, updated_at`

func serviceScanTargets(i *Service) []any {
	return []any{
		&i.ID,
		&i.OwnerID,
		&i.Name,
		&i.DurationMinutes,
		&i.PriceCents,
		&i.Description,
		&i.IsActive,
		&i.SortOrder,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const createService = `
INSERT INTO services (id, owner_id, name, duration_minutes, price_cents, description, is_active, sort_order, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

type CreateServiceParams struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      pgtype.Int4
	Description     pgtype.Text
	IsActive        bool
	SortOrder       int32
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateService(ctx context.Context, db DBTX, arg CreateServiceParams) error {
	_, err := db.Exec(ctx, createService,
		arg.ID, arg.OwnerID, arg.Name, arg.DurationMinutes, arg.PriceCents,
		arg.Description, arg.IsActive, arg.SortOrder, arg.CreatedAt)
	return err
}

const updateService = `
UPDATE services
SET name = $3, duration_minutes = $4, price_cents = $5, description = $6,
    is_active = $7, sort_order = $8, updated_at = $9
WHERE id = $1 AND owner_id = $2`

type UpdateServiceParams struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	Name            string
	DurationMinutes int32
	PriceCents      pgtype.Int4
	Description     pgtype.Text
	IsActive        bool
	SortOrder       int32
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateService(ctx context.Context, db DBTX, arg UpdateServiceParams) (int64, error) {
	tag, err := db.Exec(ctx, updateService,
		arg.ID, arg.OwnerID, arg.Name, arg.DurationMinutes, arg.PriceCents,
		arg.Description, arg.IsActive, arg.SortOrder, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteService = `DELETE FROM services WHERE id = $1 AND owner_id = $2`

func (q *Queries) DeleteService(ctx context.Context, db DBTX, arg OwnedIDParams) (int64, error) {
	tag, err := db.Exec(ctx, deleteService, arg.ID, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getService = `SELECT ` + serviceColumns + ` FROM services WHERE id = $1 AND owner_id = $2`

func (q *Queries) GetService(ctx context.Context, db DBTX, arg OwnedIDParams) (Service, error) {
	var i Service
	err := db.QueryRow(ctx, getService, arg.ID, arg.OwnerID).Scan(serviceScanTargets(&i)...)
	return i, err
}

const listServices = `
SELECT ` + serviceColumns + `
FROM services
WHERE owner_id = $1 AND (NOT $2::bool OR is_active)
ORDER BY sort_order, name`

type ListServicesParams struct {
	OwnerID    uuid.UUID
	ActiveOnly bool
}

func (q *Queries) ListServices(ctx context.Context, db DBTX, arg ListServicesParams) ([]Service, error) {
	rows, err := db.Query(ctx, listServices, arg.OwnerID, arg.ActiveOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Service
	for rows.Next() {
		var i Service
		if err := rows.Scan(serviceScanTargets(&i)...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const serviceNameExists = `
SELECT EXISTS (
    SELECT 1 FROM services
    WHERE owner_id = $1 AND name = $2 AND ($3::uuid IS NULL OR id <> $3)
)`

type ServiceNameExistsParams struct {
	OwnerID   uuid.UUID
	Name      string
	ExcludeID pgtype.UUID
}

func (q *Queries) ServiceNameExists(ctx context.Context, db DBTX, arg ServiceNameExistsParams) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, serviceNameExists, arg.OwnerID, arg.Name, arg.ExcludeID).Scan(&exists)
	return exists, err
}
