package components

import (
	"groomer-crm/internal/infra/export"
	"groomer-crm/internal/pkg/clock"
	"groomer-crm/internal/pkg/password"
	"groomer-crm/internal/usecase"
	"groomer-crm/internal/usecase/commands"
	"groomer-crm/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func() password.Hasher {
		return password.NewHasher(password.DefaultCost)
	},
	fx.Annotate(
		export.NewScheduleWriter,
		fx.As(new(queries.ScheduleExporter)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewProfileCommands,
		commands.NewAppointmentCommands,
		commands.NewClientCommands,
		commands.NewPetCommands,
		commands.NewServiceCommands,
		commands.NewSettingsCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewAppointmentQueries,
		queries.NewClientQueries,
		queries.NewPetQueries,
		queries.NewServiceQueries,
		queries.NewSettingsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
