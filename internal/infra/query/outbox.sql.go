package query

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `
INSERT INTO outbox_events (id, aggregate_type, aggregate_id, event_type, payload, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

type InsertOutboxEventParams struct {
	ID            uuid.UUID
	AggregateType string
	AggregateID   uuid.UUID
	EventType     string
	Payload       []byte
	CreatedAt     pgtype.Timestamptz
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent,
		arg.ID, arg.AggregateType, arg.AggregateID, arg.EventType, arg.Payload, arg.CreatedAt)
	return err
}

// Rows stay locked until the caller's transaction ends, so concurrent relays
// never publish the same event twice.
const lockUnpublishedOutboxEvents = `
SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at, published_at, attempts, last_error
FROM outbox_events
WHERE published_at IS NULL AND attempts < $2
ORDER BY created_at
LIMIT $1
FOR UPDATE SKIP LOCKED`

type LockUnpublishedOutboxEventsParams struct {
	Limit       int32
	MaxAttempts int32
}

func (q *Queries) LockUnpublishedOutboxEvents(ctx context.Context, db DBTX, arg LockUnpublishedOutboxEventsParams) ([]OutboxEvent, error) {
	rows, err := db.Query(ctx, lockUnpublishedOutboxEvents, arg.Limit, arg.MaxAttempts)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvent
	for rows.Next() {
		var i OutboxEvent
		if err := rows.Scan(
			&i.ID,
			&i.AggregateType,
			&i.AggregateID,
			&i.EventType,
			&i.Payload,
			&i.CreatedAt,
			&i.PublishedAt,
			&i.Attempts,
			&i.LastError,
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

const markOutboxEventsPublished = `UPDATE outbox_events SET published_at = $2, attempts = attempts + 1 WHERE id = ANY($1::uuid[])`

type MarkOutboxEventsPublishedParams struct {
	IDs         []uuid.UUID
	PublishedAt pgtype.Timestamptz
}

func (q *Queries) MarkOutboxEventsPublished(ctx context.Context, db DBTX, arg MarkOutboxEventsPublishedParams) error {
	_, err := db.Exec(ctx, markOutboxEventsPublished, arg.IDs, arg.PublishedAt)
	return err
}

const recordOutboxFailure = `UPDATE outbox_events SET attempts = attempts + 1, last_error = $2 WHERE id = ANY($1::uuid[])`

type RecordOutboxFailureParams struct {
	IDs       []uuid.UUID
	LastError pgtype.Text
}

func (q *Queries) RecordOutboxFailure(ctx context.Context, db DBTX, arg RecordOutboxFailureParams) error {
	_, err := db.Exec(ctx, recordOutboxFailure, arg.IDs, arg.LastError)
	return err
}
