package commands

//go:generate mockgen -source=service.go -destination=../../../tests/mock/commands/service.go -package=commandsmock

import (
	"context"

	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/domain/catalog"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrServiceNotFound  = errs.New("service not found")
	ErrDuplicateService = errs.New("a service with this name already exists")
)

type ServiceCommands interface {
	Create(ctx context.Context, ownerID uuid.UUID, d catalog.Definition) (uuid.UUID, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, d catalog.Definition) error
	Toggle(ctx context.Context, ownerID, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type serviceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewServiceCommands(uow shared.UnitOfWork, clk clock.Clock) ServiceCommands {
	return &serviceCommandsImpl{uow: uow, clock: clk}
}

func (uc *serviceCommandsImpl) Create(ctx context.Context, ownerID uuid.UUID, d catalog.Definition) (uuid.UUID, error) {
	svc, err := catalog.NewService(ownerID, d, uc.clock.Now())
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := ensureUniqueServiceName(ctx, tx.Reads(), ownerID, svc.Name(), nil); err != nil {
			return err
		}
		return markDuplicate(tx.Services().Create(ctx, tx.DB(), svc))
	})
	if err != nil {
		return uuid.Nil, err
	}
	return svc.ID(), nil
}

func (uc *serviceCommandsImpl) Update(ctx context.Context, ownerID, id uuid.UUID, d catalog.Definition) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := loadService(ctx, tx.Reads(), ownerID, id)
		if err != nil {
			return err
		}
		if err := svc.Update(d, uc.clock.Now()); err != nil {
			return err
		}
		if err := ensureUniqueServiceName(ctx, tx.Reads(), ownerID, svc.Name(), &id); err != nil {
			return err
		}
		if err := tx.Services().Update(ctx, tx.DB(), svc); err != nil {
			return markDuplicate(markNotFound(err, ErrServiceNotFound))
		}
		return nil
	})
}

// Toggle flips the active flag and returns the new value.
func (uc *serviceCommandsImpl) Toggle(ctx context.Context, ownerID, id uuid.UUID) (bool, error) {
	var active bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		svc, err := loadService(ctx, tx.Reads(), ownerID, id)
		if err != nil {
			return err
		}
		svc.Toggle(uc.clock.Now())
		if err := tx.Services().Update(ctx, tx.DB(), svc); err != nil {
			return markNotFound(err, ErrServiceNotFound)
		}
		active = svc.IsActive()
		return nil
	})
	return active, err
}

func (uc *serviceCommandsImpl) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return markNotFound(tx.Services().Delete(ctx, tx.DB(), ownerID, id), ErrServiceNotFound)
	})
}

func loadService(ctx context.Context, reads shared.CommandReads, ownerID, id uuid.UUID) (*catalog.Service, error) {
	s, err := reads.ServiceByID(ctx, ownerID, id)
	if err != nil {
		return nil, markNotFound(err, ErrServiceNotFound)
	}
	duration, _ := appointment.NewDuration(s.DurationMinutes)
	return catalog.ReconstructService(
		s.ID, s.OwnerID, s.Name, duration, s.PriceCents, s.Description,
		s.IsActive, s.SortOrder, s.CreatedAt, s.UpdatedAt,
	), nil
}

func ensureUniqueServiceName(ctx context.Context, reads shared.CommandReads, ownerID uuid.UUID, name string, excludeID *uuid.UUID) error {
	taken, err := reads.ServiceNameTaken(ctx, ownerID, name, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return ErrDuplicateService
	}
	return nil
}

// markDuplicate covers the race where two requests pass the name check and
// the unique index rejects the second insert.
func markDuplicate(err error) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Mark(err, ErrDuplicateService)
	}
	return err
}
