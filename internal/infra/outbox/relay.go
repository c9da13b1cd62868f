package outbox

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

type Store interface {
	LockUnpublishedOutboxEvents(ctx context.Context, db query.DBTX, arg query.LockUnpublishedOutboxEventsParams) ([]query.OutboxEvent, error)
	MarkOutboxEventsPublished(ctx context.Context, db query.DBTX, arg query.MarkOutboxEventsPublishedParams) error
	RecordOutboxFailure(ctx context.Context, db query.DBTX, arg query.RecordOutboxFailureParams) error
}

// Publisher is satisfied by *kafka.Writer.
type Publisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Recorder interface {
	IncOutboxPublished(n int)
	IncOutboxFailed()
}

// Relay moves committed outbox rows to Kafka. Each batch is locked with
// SKIP LOCKED inside one transaction, so several API instances can run a
// relay at once. Delivery is at least once.
type Relay struct {
	uow       shared.UnitOfWork
	store     Store
	publisher Publisher
	breaker   *gobreaker.CircuitBreaker[struct{}]
	recorder  Recorder
	clock     clock.Clock
	cfg       config.OutboxConfig
	logger    *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewRelay(uow shared.UnitOfWork, store Store, publisher Publisher, recorder Recorder, clk clock.Clock, cfg config.OutboxConfig, logger *slog.Logger) *Relay {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 2 * time.Second
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 10
	}
	if logger == nil {
		logger = slog.Default()
	}

	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:    "outbox-kafka",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Relay{
		uow:       uow,
		store:     store,
		publisher: publisher,
		breaker:   breaker,
		recorder:  recorder,
		clock:     clk,
		cfg:       cfg,
		logger:    logger,
	}
}

// RunOnce publishes at most one batch and reports how many events went out.
// A failed publish is recorded on the rows and returned as an error.
func (r *Relay) RunOnce(ctx context.Context) (int, error) {
	var published int
	var publishErr error

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published, publishErr = 0, nil

		events, err := r.store.LockUnpublishedOutboxEvents(ctx, tx.DB(), query.LockUnpublishedOutboxEventsParams{
			Limit:       int32(r.cfg.BatchSize),   // #nosec G115
			MaxAttempts: int32(r.cfg.MaxAttempts), // #nosec G115
		})
		if err != nil {
			return errs.Wrap(err, "failed to lock outbox batch")
		}
		if len(events) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(events))
		msgs := make([]kafka.Message, len(events))
		for i, e := range events {
			ids[i] = e.ID
			msgs[i] = r.message(e)
		}

		_, publishErr = r.breaker.Execute(func() (struct{}, error) {
			return struct{}{}, r.publisher.WriteMessages(ctx, msgs...)
		})
		if publishErr != nil {
			// Keep the attempt count even though nothing was published.
			return r.store.RecordOutboxFailure(ctx, tx.DB(), query.RecordOutboxFailureParams{
				IDs:       ids,
				LastError: pgconv.TextFromString(publishErr.Error()),
			})
		}

		published = len(events)
		return r.store.MarkOutboxEventsPublished(ctx, tx.DB(), query.MarkOutboxEventsPublishedParams{
			IDs:         ids,
			PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
		})
	})
	if err != nil {
		return 0, err
	}

	if publishErr != nil {
		if r.recorder != nil {
			r.recorder.IncOutboxFailed()
		}
		return 0, errs.Wrap(publishErr, "failed to publish outbox batch")
	}
	if published > 0 && r.recorder != nil {
		r.recorder.IncOutboxPublished(published)
	}
	return published, nil
}

func (r *Relay) message(e query.OutboxEvent) kafka.Message {
	return kafka.Message{
		Topic: r.cfg.TopicPrefix + e.EventType,
		Key:   []byte(e.AggregateID.String()),
		Value: e.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(e.ID.String())},
			{Key: "event_type", Value: []byte(e.EventType)},
			{Key: "aggregate_type", Value: []byte(e.AggregateType)},
		},
		Time: e.CreatedAt.Time,
	}
}

// Start polls until Stop is called. A full batch is followed immediately by
// another poll.
func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(ctx)
	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		ticker := time.NewTicker(r.cfg.PollInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				for {
					n, err := r.RunOnce(ctx)
					if err != nil {
						r.logger.Error("outbox relay failed", "error", err)
						break
					}
					if n < r.cfg.BatchSize {
						break
					}
				}
			}
		}
	}()
}

func (r *Relay) Stop() {
	if r.cancel != nil {
		r.cancel()
	}
	r.wg.Wait()
}
