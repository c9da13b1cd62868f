//go:build unit

package repository

import (
	"context"
	"encoding/json"
	"testing"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/usecase/shared"
	"groomer-crm/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOutboxWriteQueries struct {
	mock.Mock
}

func (m *MockOutboxWriteQueries) InsertOutboxEvent(ctx context.Context, db query.DBTX, arg query.InsertOutboxEventParams) error {
	args := m.Called(ctx, db, arg)
	return args.Error(0)
}

func TestOutboxRepository_Append(t *testing.T) {
	aggregateID := uuid.New()
	evt := shared.OutboxEvent{
		AggregateType: shared.AggregateAppointment,
		AggregateID:   aggregateID,
		EventType:     shared.EventAppointmentCreated,
		Payload:       map[string]any{"pet_id": "p-1", "duration_minutes": 60},
		OccurredAt:    builder.DefaultNow,
	}

	t.Run("payload is stored as JSON", func(t *testing.T) {
		db := mockDBTX{}
		var stored query.InsertOutboxEventParams
		mockQueries := new(MockOutboxWriteQueries)
		mockQueries.On("InsertOutboxEvent", mock.Anything, db, mock.Anything).
			Run(func(args mock.Arguments) { stored = args.Get(2).(query.InsertOutboxEventParams) }).
			Return(nil)

		err := NewOutboxRepository(mockQueries).Append(context.Background(), db, evt)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, stored.ID)
		assert.Equal(t, aggregateID, stored.AggregateID)
		assert.Equal(t, "appointment.created", stored.EventType)
		assert.True(t, stored.CreatedAt.Time.Equal(builder.DefaultNow))

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(stored.Payload, &decoded))
		assert.Equal(t, "p-1", decoded["pet_id"])
		assert.InDelta(t, 60, decoded["duration_minutes"], 0)
	})

	t.Run("unencodable payload never reaches the database", func(t *testing.T) {
		mockQueries := new(MockOutboxWriteQueries)
		bad := evt
		bad.Payload = map[string]any{"ch": make(chan int)}

		err := NewOutboxRepository(mockQueries).Append(context.Background(), mockDBTX{}, bad)
		require.Error(t, err)
		mockQueries.AssertNotCalled(t, "InsertOutboxEvent", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("database error", func(t *testing.T) {
		mockQueries := new(MockOutboxWriteQueries)
		mockQueries.On("InsertOutboxEvent", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		err := NewOutboxRepository(mockQueries).Append(context.Background(), mockDBTX{}, evt)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
