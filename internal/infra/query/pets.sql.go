package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const petColumns = `p.id, p.owner_id, p.client_id, p.name, p.species, p.breed, p.age, p.notes, p.created_at, p.updated_at`

func petScanTargets(i *Pet) []any {
	return []any{
		&i.ID,
		&i.OwnerID,
		&i.ClientID,
		&i.Name,
		&i.Species,
		&i.Breed,
		&i.Age,
		&i.Notes,
		&i.CreatedAt,
		&i.UpdatedAt,
	}
}

const createPet = `
INSERT INTO pets (id, owner_id, client_id, name, species, breed, age, notes, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)`

type CreatePetParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ClientID  uuid.UUID
	Name      string
	Species   string
	Breed     pgtype.Text
	Age       pgtype.Int4
	Notes     pgtype.Text
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreatePet(ctx context.Context, db DBTX, arg CreatePetParams) error {
	_, err := db.Exec(ctx, createPet,
		arg.ID, arg.OwnerID, arg.ClientID, arg.Name, arg.Species, arg.Breed, arg.Age, arg.Notes, arg.CreatedAt)
	return err
}

const updatePet = `
UPDATE pets
SET client_id = $3, name = $4, species = $5, breed = $6, age = $7, notes = $8, updated_at = $9
WHERE id = $1 AND owner_id = $2`

type UpdatePetParams struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	ClientID  uuid.UUID
	Name      string
	Species   string
	Breed     pgtype.Text
	Age       pgtype.Int4
	Notes     pgtype.Text
	UpdatedAt pgtype.Timestamptz
}

func (q *Queries) UpdatePet(ctx context.Context, db DBTX, arg UpdatePetParams) (int64, error) {
	tag, err := db.Exec(ctx, updatePet,
		arg.ID, arg.OwnerID, arg.ClientID, arg.Name, arg.Species, arg.Breed, arg.Age, arg.Notes, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deletePet = `DELETE FROM pets WHERE id = $1 AND owner_id = $2`

func (q *Queries) DeletePet(ctx context.Context, db DBTX, arg OwnedIDParams) (int64, error) {
	tag, err := db.Exec(ctx, deletePet, arg.ID, arg.OwnerID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getPet = `SELECT ` + petColumns + ` FROM pets p WHERE p.id = $1 AND p.owner_id = $2`

func (q *Queries) GetPet(ctx context.Context, db DBTX, arg OwnedIDParams) (Pet, error) {
	var i Pet
	err := db.QueryRow(ctx, getPet, arg.ID, arg.OwnerID).Scan(petScanTargets(&i)...)
	return i, err
}

const petViewSelect = `
SELECT ` + petColumns + `,
       c.first_name AS client_first_name,
       c.last_name  AS client_last_name,
       (SELECT COUNT(*)::int FROM appointments a
         WHERE a.pet_id = p.id AND a.status = 'scheduled' AND a.start_at >= $2) AS upcoming_count
FROM pets p
JOIN clients c ON c.id = p.client_id`

type PetViewRow struct {
	Pet
	ClientFirstName string
	ClientLastName  string
	UpcomingCount   int32
}

func scanPetViewRows(rows pgx.Rows) ([]PetViewRow, error) {
	defer rows.Close()
	var items []PetViewRow
	for rows.Next() {
		var i PetViewRow
		targets := append(petScanTargets(&i.Pet), &i.ClientFirstName, &i.ClientLastName, &i.UpcomingCount)
		if err := rows.Scan(targets...); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const getPetView = petViewSelect + `
WHERE p.owner_id = $1 AND p.id = $3`

type GetPetViewParams struct {
	OwnerID uuid.UUID
	Now     pgtype.Timestamptz
	ID      uuid.UUID
}

func (q *Queries) GetPetView(ctx context.Context, db DBTX, arg GetPetViewParams) (PetViewRow, error) {
	var i PetViewRow
	targets := append(petScanTargets(&i.Pet), &i.ClientFirstName, &i.ClientLastName, &i.UpcomingCount)
	err := db.QueryRow(ctx, getPetView, arg.OwnerID, arg.Now, arg.ID).Scan(targets...)
	return i, err
}

const listPets = petViewSelect + `
WHERE p.owner_id = $1 AND ($3::uuid IS NULL OR p.client_id = $3)
ORDER BY p.created_at DESC`

type ListPetsParams struct {
	OwnerID  uuid.UUID
	Now      pgtype.Timestamptz
	ClientID pgtype.UUID
}

func (q *Queries) ListPets(ctx context.Context, db DBTX, arg ListPetsParams) ([]PetViewRow, error) {
	rows, err := db.Query(ctx, listPets, arg.OwnerID, arg.Now, arg.ClientID)
	if err != nil {
		return nil, err
	}
	return scanPetViewRows(rows)
}
