//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"groomer-crm/internal/domain/settings"
	"groomer-crm/internal/infra"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/usecase/queries"
	"groomer-crm/internal/usecase/shared"
	"groomer-crm/tests/common/builder"
	queriesmock "groomer-crm/tests/mock/queries"
	sharedmock "groomer-crm/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSettingsQueries_Get(t *testing.T) {
	ownerID := uuid.New()

	setup := func(t *testing.T) (*queriesmock.MockSettingsReadStore, *sharedmock.MockSettingsRepository, queries.SettingsQueries) {
		ctrl := gomock.NewController(t)
		readStore := queriesmock.NewMockSettingsReadStore(ctrl)
		uow := sharedmock.NewMockUnitOfWork(ctrl)
		tx := sharedmock.NewMockTx(ctrl)
		repo := sharedmock.NewMockSettingsRepository(ctrl)

		uow.EXPECT().Within(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
				return fn(ctx, tx)
			}).AnyTimes()
		tx.EXPECT().DB().Return(nil).AnyTimes()
		tx.EXPECT().Settings().Return(repo).AnyTimes()

		return readStore, repo, queries.NewSettingsQueries(readStore, uow, clock.NewMockClock(builder.DefaultNow))
	}

	t.Run("保存済みの設定を返す", func(t *testing.T) {
		readStore, _, q := setup(t)
		stored := &queries.SettingsView{BusinessName: "Paws", DefaultDurationMinutes: 90}
		readStore.EXPECT().FindByOwner(gomock.Any(), ownerID).Return(stored, nil).Times(1)

		got, err := q.Get(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("未保存なら既定値を保存して返す", func(t *testing.T) {
		readStore, repo, q := setup(t)
		readStore.EXPECT().FindByOwner(gomock.Any(), ownerID).
			Return(nil, infra.WrapRepoErr("find settings", errors.New("no rows"), infra.KindNotFound)).Times(1)
		repo.EXPECT().Upsert(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, _ any, s *settings.Settings) error {
				assert.Equal(t, ownerID, s.OwnerID())
				assert.Equal(t, 60, s.DefaultDuration().Minutes())
				return nil
			}).Times(1)

		got, err := q.Get(context.Background(), ownerID)
		require.NoError(t, err)
		assert.Equal(t, 60, got.DefaultDurationMinutes)
		assert.Equal(t, builder.DefaultNow, got.UpdatedAt)
	})

	t.Run("DB障害は保存しない", func(t *testing.T) {
		readStore, _, q := setup(t)
		readStore.EXPECT().FindByOwner(gomock.Any(), ownerID).
			Return(nil, infra.WrapRepoErr("find settings", errors.New("timeout"), infra.KindDBFailure)).Times(1)

		_, err := q.Get(context.Background(), ownerID)
		require.Error(t, err)
	})
}
