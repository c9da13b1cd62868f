package bootstrap

import (
	"groomer-crm/internal/domain/appointment"
	"groomer-crm/internal/infra/outbox"
	"groomer-crm/internal/pkg/metrics"
	"groomer-crm/internal/usecase/commands"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.NewCollector,
			fx.As(fx.Self()),
			fx.As(new(appointment.CheckObserver)),
			fx.As(new(commands.AppointmentMetrics)),
			fx.As(new(outbox.Recorder)),
		),
	),
)
