package repository

import (
	"context"
	"encoding/json"

	"groomer-crm/internal/infra"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/errs"
	"groomer-crm/internal/pkg/pgconv"
	"groomer-crm/internal/usecase/shared"

	"github.com/google/uuid"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db query.DBTX, arg query.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{queries: queries}
}

func (r *OutboxRepository) Append(ctx context.Context, tx query.DBTX, evt shared.OutboxEvent) error {
	payload, err := json.Marshal(evt.Payload)
	if err != nil {
		return errs.Wrapf(err, "failed to encode %s payload", evt.EventType)
	}

	err = r.queries.InsertOutboxEvent(ctx, tx, query.InsertOutboxEventParams{
		ID:            uuid.New(),
		AggregateType: evt.AggregateType,
		AggregateID:   evt.AggregateID,
		EventType:     evt.EventType,
		Payload:       payload,
		CreatedAt:     pgconv.TimeToPgtype(evt.OccurredAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}
