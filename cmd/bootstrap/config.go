package bootstrap

import (
	"time"

	"groomer-crm/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewLocation,
	),
)

// NewLocation is the business time zone appointments are entered and shown in.
func NewLocation(cfg config.Config) (*time.Location, error) {
	return cfg.App.Location()
}
