package uow

import (
	"context"
	"time"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

// commandReads answers command-side lookups on whichever connection it was
// built with: the pool for stand-alone validation, or the open transaction.
type commandReads struct {
	q    *query.Queries
	dbtx query.DBTX
}

var _ appointment.CandidateSource = (*commandReads)(nil)

func (r *commandReads) ScheduledSince(ctx context.Context, ownerID uuid.UUID, from time.Time, excludeID *uuid.UUID) ([]appointment.Booking, error) {
	rows, err := r.q.ListScheduledSince(ctx, r.dbtx, query.ListScheduledSinceParams{
		OwnerID:   ownerID,
		From:      pgconv.TimeToPgtype(from),
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled appointments", err)
	}

	bookings := make([]appointment.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, appointment.Booking{
			ID:              row.ID,
			OwnerID:         row.OwnerID,
			PetID:           row.PetID,
			PetName:         row.PetName,
			Start:           pgconv.TimeFromPgtype(row.StartAt),
			DurationMinutes: int(row.DurationMinutes),
			Status:          appointment.Status(row.Status),
		})
	}
	return bookings, nil
}

func (r *commandReads) AppointmentByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.AppointmentSnapshot, error) {
	row, err := r.q.GetAppointment(ctx, r.dbtx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return nil, wrapLookupErr("appointment", err)
	}
	return &shared.AppointmentSnapshot{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		PetID:           row.PetID,
		Start:           pgconv.TimeFromPgtype(row.StartAt),
		DurationMinutes: int(row.DurationMinutes),
		Status:          row.Status,
		Service:         pgconv.StringFromText(row.Service),
		Notes:           pgconv.StringFromText(row.Notes),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *commandReads) PetByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.PetSnapshot, error) {
	row, err := r.q.GetPet(ctx, r.dbtx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return nil, wrapLookupErr("pet", err)
	}
	return &shared.PetSnapshot{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		ClientID:  row.ClientID,
		Name:      row.Name,
		Species:   row.Species,
		Breed:     pgconv.StringFromText(row.Breed),
		Age:       pgconv.IntPtrFromInt4(row.Age),
		Notes:     pgconv.StringFromText(row.Notes),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *commandReads) ClientByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.ClientSnapshot, error) {
	row, err := r.q.GetClient(ctx, r.dbtx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return nil, wrapLookupErr("client", err)
	}
	return &shared.ClientSnapshot{
		ID:        row.ID,
		OwnerID:   row.OwnerID,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Email:     pgconv.StringFromText(row.Email),
		Phone:     pgconv.StringFromText(row.Phone),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *commandReads) ServiceByID(ctx context.Context, ownerID, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	row, err := r.q.GetService(ctx, r.dbtx, query.OwnedIDParams{ID: id, OwnerID: ownerID})
	if err != nil {
		return nil, wrapLookupErr("service", err)
	}
	return &shared.ServiceSnapshot{
		ID:              row.ID,
		OwnerID:         row.OwnerID,
		Name:            row.Name,
		DurationMinutes: int(row.DurationMinutes),
		PriceCents:      pgconv.IntPtrFromInt4(row.PriceCents),
		Description:     pgconv.StringFromText(row.Description),
		IsActive:        row.IsActive,
		SortOrder:       int(row.SortOrder),
		CreatedAt:       pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:       pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func (r *commandReads) ServiceNameTaken(ctx context.Context, ownerID uuid.UUID, name string, excludeID *uuid.UUID) (bool, error) {
	exists, err := r.q.ServiceNameExists(ctx, r.dbtx, query.ServiceNameExistsParams{
		OwnerID:   ownerID,
		Name:      name,
		ExcludeID: pgconv.UUIDPtrToPgtype(excludeID),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check service name", err)
	}
	return exists, nil
}

func (r *commandReads) CountClients(ctx context.Context, ownerID uuid.UUID) (int, error) {
	n, err := r.q.CountClients(ctx, r.dbtx, ownerID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count clients", err)
	}
	return int(n), nil
}

func (r *commandReads) UserByID(ctx context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	row, err := r.q.GetUserByID(ctx, r.dbtx, id)
	if err != nil {
		return nil, wrapLookupErr("user", err)
	}
	return toUserSnapshot(row), nil
}

func (r *commandReads) UserByEmail(ctx context.Context, email string) (*shared.UserSnapshot, error) {
	row, err := r.q.GetUserByEmail(ctx, r.dbtx, email)
	if err != nil {
		return nil, wrapLookupErr("user", err)
	}
	return toUserSnapshot(row), nil
}

func (r *commandReads) SettingsByOwner(ctx context.Context, ownerID uuid.UUID) (*shared.SettingsSnapshot, error) {
	row, err := r.q.GetSettings(ctx, r.dbtx, ownerID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to get settings", err)
	}
	return &shared.SettingsSnapshot{
		OwnerID:                row.OwnerID,
		BusinessName:           pgconv.StringFromText(row.BusinessName),
		BusinessEmail:          pgconv.StringFromText(row.BusinessEmail),
		BusinessPhone:          pgconv.StringFromText(row.BusinessPhone),
		DefaultDurationMinutes: int(row.DefaultDurationMinutes),
		UpdatedAt:              pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func toUserSnapshot(row query.User) *shared.UserSnapshot {
	return &shared.UserSnapshot{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Plan:         row.Plan,
		LastLoginAt:  pgconv.TimePtrFromPgtype(row.LastLoginAt),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}

func wrapLookupErr(entity string, err error) error {
	if pgconv.IsNoRows(err) {
		return infra.WrapRepoErr(entity+" not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("failed to get "+entity, err)
}
