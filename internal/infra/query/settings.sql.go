package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const settingColumns = `owner_id, business_name, business_email, business_phone, default_duration_minutes, updated_at`

const getSettings = `SELECT ` + settingColumns + ` FROM settings WHERE owner_id = $1`

func (q *Queries) GetSettings(ctx context.Context, db DBTX, ownerID uuid.UUID) (Setting, error) {
	var i Setting
	err := db.QueryRow(ctx, getSettings, ownerID).Scan(
		&i.OwnerID,
		&i.BusinessName,
		&i.BusinessEmail,
		&i.BusinessPhone,
		&i.DefaultDurationMinutes,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertSettings = `
INSERT INTO settings (owner_id, business_name, business_email, business_phone, default_duration_minutes, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (owner_id) DO UPDATE
SET business_name = EXCLUDED.business_name,
    business_email = EXCLUDED.business_email,
    business_phone = EXCLUDED.business_phone,
    default_duration_minutes = EXCLUDED.default_duration_minutes,
    updated_at = EXCLUDED.updated_at`

type UpsertSettingsParams struct {
	OwnerID                uuid.UUID
	BusinessName           pgtype.Text
	BusinessEmail          pgtype.Text
	BusinessPhone          pgtype.Text
	DefaultDurationMinutes int32
	UpdatedAt              pgtype.Timestamptz
}

func (q *Queries) UpsertSettings(ctx context.Context, db DBTX, arg UpsertSettingsParams) error {
	_, err := db.Exec(ctx, upsertSettings,
		arg.OwnerID, arg.BusinessName, arg.BusinessEmail, arg.BusinessPhone,
		arg.DefaultDurationMinutes, arg.UpdatedAt)
	return err
}
