//go:build unit

package commands_test

import (
	"context"
	"testing"

	"groomer-crm/internal/domain/client"
	"groomer-crm/internal/domain/user"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/shared"
	"groomer-crm/tests/common/builder"
	sharedmock "groomer-crm/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type clientFixture struct {
	uow    *sharedmock.MockUnitOfWork
	tx     *sharedmock.MockTx
	reads  *sharedmock.MockCommandReads
	repo   *sharedmock.MockClientRepository
	outbox *sharedmock.MockOutboxRepository
}

func newClientFixture(t *testing.T) *clientFixture {
	ctrl := gomock.NewController(t)
	f := &clientFixture{
		uow:    sharedmock.NewMockUnitOfWork(ctrl),
		tx:     sharedmock.NewMockTx(ctrl),
		reads:  sharedmock.NewMockCommandReads(ctrl),
		repo:   sharedmock.NewMockClientRepository(ctrl),
		outbox: sharedmock.NewMockOutboxRepository(ctrl),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()
	f.tx.EXPECT().Clients().Return(f.repo).AnyTimes()
	f.tx.EXPECT().Outbox().Return(f.outbox).AnyTimes()
	return f
}

func TestClientCommands_CreatePlanLimit(t *testing.T) {
	testCases := []struct {
		name     string
		plan     user.Plan
		existing int
		wantErr  error
	}{
		{name: "free plan below limit", plan: user.PlanFree, existing: user.FreeClientLimit - 1},
		{name: "free plan at limit", plan: user.PlanFree, existing: user.FreeClientLimit, wantErr: commands.ErrPlanLimit},
		{name: "pro plan is unlimited", plan: user.PlanPro, existing: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newClientFixture(t)
			ownerID := uuid.New()
			uc := commands.NewClientCommands(f.uow, clock.NewMockClock(builder.DefaultNow))

			f.reads.EXPECT().UserByID(gomock.Any(), ownerID).
				Return(&shared.UserSnapshot{ID: ownerID, Plan: tc.plan.String()}, nil)
			f.reads.EXPECT().CountClients(gomock.Any(), ownerID).Return(tc.existing, nil)
			if tc.wantErr == nil {
				f.repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.outbox.EXPECT().Append(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			}

			id, err := uc.Create(context.Background(), ownerID, builder.NewClientBuilder().Profile())

			if tc.wantErr != nil {
				assert.True(t, errs.Is(err, tc.wantErr))
				assert.ErrorIs(t, err, client.ErrPlanLimitReached)
				assert.Equal(t, uuid.Nil, id)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, id)
		})
	}
}

func TestClientCommands_UpdateNotFound(t *testing.T) {
	f := newClientFixture(t)
	ownerID, id := uuid.New(), uuid.New()
	uc := commands.NewClientCommands(f.uow, clock.NewMockClock(builder.DefaultNow))

	f.reads.EXPECT().ClientByID(gomock.Any(), ownerID, id).
		Return(nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound))

	err := uc.Update(context.Background(), ownerID, id, builder.NewClientBuilder().Profile())
	assert.True(t, errs.Is(err, commands.ErrClientNotFound))
}

func TestPetCommands_CreateRequiresOwnedClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	reads := sharedmock.NewMockCommandReads(ctrl)
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		})
	tx.EXPECT().Reads().Return(reads).AnyTimes()

	ownerID := uuid.New()
	profile := builder.NewPetBuilder().Profile()
	reads.EXPECT().ClientByID(gomock.Any(), ownerID, profile.ClientID).
		Return(nil, infra.WrapRepoErr("client not found", nil, infra.KindNotFound))

	uc := commands.NewPetCommands(uow, clock.NewMockClock(builder.DefaultNow))
	_, err := uc.Create(context.Background(), ownerID, profile)

	assert.True(t, errs.Is(err, commands.ErrClientNotFound))
}
