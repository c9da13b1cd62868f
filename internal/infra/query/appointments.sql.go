package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const appointmentColumns = `a.id, a.owner_id, a.pet_id, a.start_at, a.duration_minutes, a.status, a.service, a.notes, a.created_at, a.updated_at`

func appointmentScanTargets(i *Appointment) []any {
	return []any{
		&i.ID,
		&i.OwnerID,
		&i.PetID,
		&i.StartAt,
		&i.DurationMinutes,
		&i.Status,
		&i.Service,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const createAppointment = `
INSERT INTO appointments (id, owner_id, pet_id, start_at, duration_minutes, status, service, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

type CreateAppointmentParams struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	StartAt         pgtype.Timestamptz
	DurationMinutes int32
	Status          string
	Service         pgtype.Text
	Notes           pgtype.Text
	CreatedAt       pgtype.Timestamptz
}

func (q *Queries) CreateAppointment(ctx context.Context, db DBTX, arg CreateAppointmentParams) error {
	_, err := db.Exec(ctx, createAppointment,
		arg.ID, arg.OwnerID, arg.PetID, arg.StartAt, arg.DurationMinutes,
		arg.Status, arg.Service, arg.Notes, arg.CreatedAt)
	return err
}

const updateAppointment = `
UPDATE appointments
SET pet_id = $3, start_at = $4, duration_minutes = $5, status = $6,
    service = $7, notes = $8, updated_at = $9
WHERE id = $1 AND owner_id = $2`

type UpdateAppointmentParams struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	StartAt         pgtype.Timestamptz
	DurationMinutes int32
	Status          string
	Service         pgtype.Text
	Notes           pgtype.Text
	UpdatedAt       pgtype.Timestamptz
}

func (q *Queries) UpdateAppointment(ctx context.Context, db DBTX, arg UpdateAppointmentParams) (int64, error) {
	tag, err := db.Exec(ctx, updateAppointment,
		arg.ID, arg.OwnerID, arg.PetID, arg.StartAt, arg.DurationMinutes,
		arg.Status, arg.Service, arg.Notes, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteAppointment = `DELETE FROM appointments WHERE id = $1 AND owner_id = $2`

func (q *Queries) DeleteAppointment(ctx context.Context, db DBTX, arg OwnedIDParams) (int64, error) {
	tag, err := db.Exec(ctx, deleteAppointment, arg.ID, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getAppointment = `SELECT ` + appointmentColumns + ` FROM appointments a WHERE a.id = $1 AND a.owner_id = $2`

func (q *Queries) GetAppointment(ctx context.Context, db DBTX, arg OwnedIDParams) (Appointment, error) {
	var i Appointment
	err := db.QueryRow(ctx, getAppointment, arg.ID, arg.OwnerID).Scan(appointmentScanTargets(&i)...)
	return i, err
}

// Serializes check-then-write per owner until the surrounding transaction
// ends. Other owners hash to other keys and are not blocked.
const lockOwnerSchedule = `SELECT pg_advisory_xact_lock(hashtextextended('appointments:' || $1::text, 0))`

func (q *Queries) LockOwnerSchedule(ctx context.Context, db DBTX, ownerID uuid.UUID) error {
	_, err := db.Exec(ctx, lockOwnerSchedule, ownerID)
	return err
}

const listScheduledSince = `
SELECT a.id, a.owner_id, a.pet_id, p.name AS pet_name, a.start_at, a.duration_minutes, a.status
FROM appointments a
JOIN pets p ON p.id = a.pet_id
WHERE a.owner_id = $1
  AND a.status = 'scheduled'
  AND a.start_at >= $2
  AND ($3::uuid IS NULL OR a.id <> $3)
ORDER BY a.start_at, a.id`

type ListScheduledSinceParams struct {
	OwnerID   uuid.UUID
	From      pgtype.Timestamptz
	ExcludeID pgtype.UUID
}

type ListScheduledSinceRow struct {
	ID              uuid.UUID
	OwnerID         uuid.UUID
	PetID           uuid.UUID
	PetName         string
	StartAt         pgtype.Timestamptz
	DurationMinutes int32
	Status          string
}

func (q *Queries) ListScheduledSince(ctx context.Context, db DBTX, arg ListScheduledSinceParams) ([]ListScheduledSinceRow, error) {
	rows, err := db.Query(ctx, listScheduledSince, arg.OwnerID, arg.From, arg.ExcludeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []ListScheduledSinceRow
	for rows.Next() {
		var i ListScheduledSinceRow
		if err := rows.Scan(
			&i.ID,
			&i.OwnerID,
			&i.PetID,
			&i.PetName,
			&i.StartAt,
			&i.DurationMinutes,
			&i.Status,
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

const appointmentViewSelect = `
SELECT ` + appointmentColumns + `,
       p.name AS pet_name, p.species AS pet_species, p.breed AS pet_breed,
       c.id AS client_id, c.first_name AS client_first_name, c.last_name AS client_last_name,
       c.phone AS client_phone
FROM appointments a
JOIN pets p ON p.id = a.pet_id
JOIN clients c ON c.id = p.client_id`

type AppointmentViewRow struct {
	Appointment
	PetName         string
	PetSpecies      string
	PetBreed        pgtype.Text
	ClientID        uuid.UUID
	ClientFirstName string
	ClientLastName  string
	ClientPhone     pgtype.Text
}

func appointmentViewScanTargets(i *AppointmentViewRow) []any {
	return append(appointmentScanTargets(&i.Appointment),
		&i.PetName,
		&i.PetSpecies,
		&i.PetBreed,
		&i.ClientID,
		&i.ClientFirstName,
		&i.ClientLastName,
		&i.ClientPhone,
	)
}

const getAppointmentView = appointmentViewSelect + `
WHERE a.id = $1 AND a.owner_id = $2`

func (q *Queries) GetAppointmentView(ctx context.Context, db DBTX, arg OwnedIDParams) (AppointmentViewRow, error) {
	var i AppointmentViewRow
	err := db.QueryRow(ctx, getAppointmentView, arg.ID, arg.OwnerID).Scan(appointmentViewScanTargets(&i)...)
	return i, err
}

const listAppointmentsInRange = appointmentViewSelect + `
WHERE a.owner_id = $1
  AND a.start_at >= $2
  AND a.start_at < $3
  AND ($4::text IS NULL OR a.status = $4)
ORDER BY a.start_at, a.id`

type ListAppointmentsInRangeParams struct {
	OwnerID uuid.UUID
	From    pgtype.Timestamptz
	To      pgtype.Timestamptz
	Status  pgtype.Text
}

func (q *Queries) ListAppointmentsInRange(ctx context.Context, db DBTX, arg ListAppointmentsInRangeParams) ([]AppointmentViewRow, error) {
	rows, err := db.Query(ctx, listAppointmentsInRange, arg.OwnerID, arg.From, arg.To, arg.Status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []AppointmentViewRow
	for rows.Next() {
		var i AppointmentViewRow
		if err := rows.Scan(appointmentViewScanTargets(&i)...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
