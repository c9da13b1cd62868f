//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"groomer-crm/internal/infra/outbox"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/shared"
	sharedmock "groomer-crm/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeStore struct {
	mu        sync.Mutex
	pending   []query.OutboxEvent
	published []uuid.UUID
	failed    []uuid.UUID
	lastError string
}

func (s *fakeStore) LockUnpublishedOutboxEvents(_ context.Context, _ query.DBTX, arg query.LockUnpublishedOutboxEventsParams) ([]query.OutboxEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := min(int(arg.Limit), len(s.pending))
	return s.pending[:n], nil
}

func (s *fakeStore) MarkOutboxEventsPublished(_ context.Context, _ query.DBTX, arg query.MarkOutboxEventsPublishedParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, arg.IDs...)
	s.pending = s.pending[len(arg.IDs):]
	return nil
}

func (s *fakeStore) RecordOutboxFailure(_ context.Context, _ query.DBTX, arg query.RecordOutboxFailureParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failed = append(s.failed, arg.IDs...)
	s.lastError = arg.LastError.String
	return nil
}

func (s *fakeStore) remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

type fakePublisher struct {
	err  error
	sent []kafka.Message
}

func (p *fakePublisher) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.sent = append(p.sent, msgs...)
	return nil
}

type fakeRecorder struct {
	published int
	failed    int
}

func (r *fakeRecorder) IncOutboxPublished(n int) { r.published += n }
func (r *fakeRecorder) IncOutboxFailed()         { r.failed++ }

func event(eventType string) query.OutboxEvent {
	return query.OutboxEvent{
		ID:            uuid.New(),
		AggregateType: "appointment",
		AggregateID:   uuid.New(),
		EventType:     eventType,
		Payload:       []byte(`{"status":"scheduled"}`),
		CreatedAt:     pgconv.TimeToPgtype(time.Date(2030, 3, 14, 12, 0, 0, 0, time.UTC)),
	}
}

func newRelay(t *testing.T, store *fakeStore, pub *fakePublisher, rec *fakeRecorder, batch int) *outbox.Relay {
	t.Helper()
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	tx.EXPECT().DB().Return(nil).AnyTimes()
	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()

	cfg := config.OutboxConfig{TopicPrefix: "groomer-crm.", BatchSize: batch, MaxAttempts: 3, PollInterval: time.Millisecond}
	return outbox.NewRelay(uow, store, pub, rec, clock.NewMockClock(time.Date(2030, 3, 14, 12, 0, 0, 0, time.UTC)), cfg, nil)
}

func TestRelay_RunOnce(t *testing.T) {
	t.Run("publishes a batch and marks it", func(t *testing.T) {
		created := event("appointment.created")
		store := &fakeStore{pending: []query.OutboxEvent{created, event("client.created")}}
		pub := &fakePublisher{}
		rec := &fakeRecorder{}

		n, err := newRelay(t, store, pub, rec, 10).RunOnce(context.Background())
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		assert.Len(t, store.published, 2)
		assert.Equal(t, 2, rec.published)
		require.Len(t, pub.sent, 2)
		assert.Equal(t, "groomer-crm.appointment.created", pub.sent[0].Topic)
		assert.Equal(t, created.AggregateID.String(), string(pub.sent[0].Key))
		assert.Equal(t, created.Payload, pub.sent[0].Value)
	})

	t.Run("respects the batch size", func(t *testing.T) {
		store := &fakeStore{pending: []query.OutboxEvent{event("a"), event("b"), event("c")}}
		n, err := newRelay(t, store, &fakePublisher{}, &fakeRecorder{}, 2).RunOnce(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Len(t, store.pending, 1)
	})

	t.Run("nothing pending", func(t *testing.T) {
		rec := &fakeRecorder{}
		n, err := newRelay(t, &fakeStore{}, &fakePublisher{}, rec, 10).RunOnce(context.Background())
		require.NoError(t, err)
		assert.Zero(t, n)
		assert.Zero(t, rec.published)
	})

	t.Run("failure is recorded on the rows", func(t *testing.T) {
		store := &fakeStore{pending: []query.OutboxEvent{event("appointment.deleted")}}
		rec := &fakeRecorder{}

		_, err := newRelay(t, store, &fakePublisher{err: errors.New("broker down")}, rec, 10).RunOnce(context.Background())
		require.Error(t, err)

		assert.Len(t, store.failed, 1)
		assert.Equal(t, "broker down", store.lastError)
		assert.Empty(t, store.published)
		assert.Equal(t, 1, rec.failed)
	})

	t.Run("breaker opens after consecutive failures", func(t *testing.T) {
		store := &fakeStore{pending: []query.OutboxEvent{event("appointment.updated")}}
		relay := newRelay(t, store, &fakePublisher{err: errors.New("broker down")}, &fakeRecorder{}, 10)

		for i := 0; i < 3; i++ {
			_, err := relay.RunOnce(context.Background())
			require.Error(t, err)
		}
		_, err := relay.RunOnce(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "circuit breaker is open")
	})
}

func TestRelay_StartStop(t *testing.T) {
	store := &fakeStore{pending: []query.OutboxEvent{event("a"), event("b"), event("c")}}
	pub := &fakePublisher{}
	relay := newRelay(t, store, pub, &fakeRecorder{}, 2)

	relay.Start(context.Background())
	assert.Eventually(t, func() bool { return store.remaining() == 0 }, time.Second, 5*time.Millisecond)
	relay.Stop()

	assert.Len(t, pub.sent, 3)
}
