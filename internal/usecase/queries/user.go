package queries

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/user.go -package=queriesmock

import (
	"context"

	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/ptr"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserQueries interface {
	// GetCurrentUser returns the account with its plan usage filled in.
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AuthorizedUserView, error)
	CountClients(ctx context.Context, ownerID uuid.UUID) (int, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*AuthorizedUserView, error) {
	view, err := q.readStore.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrUserNotFound)
		}
		return nil, err
	}

	clients, err := q.readStore.CountClients(ctx, userID)
	if err != nil {
		return nil, err
	}
	view.Usage = &PlanUsage{Clients: clients}
	// unknown plans are reported without a limit rather than failing /me
	if plan, err := user.NewPlan(view.Plan); err == nil {
		if limit := plan.ClientLimit(); limit >= 0 {
			view.Usage.ClientLimit = ptr.Of(limit)
		}
	}
	return view, nil
}
