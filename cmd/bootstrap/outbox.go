package bootstrap

import (
	"context"
	"log/slog"

	"groomer-crm/internal/infra/outbox"
	"groomer-crm/internal/infra/query"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/config"
	"groomer-crm/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the relay for the life of the app. Without brokers
// events stay in outbox_events until a relay is configured.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, q *query.Queries, recorder outbox.Recorder, clk clock.Clock, logger *slog.Logger) {
	if !cfg.Outbox.Enabled() {
		logger.Info("Outbox relay disabled, no Kafka brokers configured")
		return
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Outbox.Brokers...),
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
	relay := outbox.NewRelay(uow, q, writer, recorder, clk, cfg.Outbox, logger)

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			relay.Start(context.Background())
			logger.Info("Outbox relay started", "brokers", cfg.Outbox.Brokers)
			return nil
		},
		OnStop: func(_ context.Context) error {
			relay.Stop()
			return writer.Close()
		},
	})
}
