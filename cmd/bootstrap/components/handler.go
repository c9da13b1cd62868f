package components

import (
	"groomer-crm/internal/handler"
	"groomer-crm/internal/handler/api"
	"groomer-crm/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewProfileHandler,
		api.NewAppointmentHandler,
		api.NewClientHandler,
		api.NewPetHandler,
		api.NewServiceHandler,
		api.NewSettingsHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
