package components

import (
	"petstay-backend/internal/pkg/clock"
	"petstay-backend/internal/usecase"
	"petstay-backend/internal/usecase/commands"
	"petstay-backend/internal/usecase/queries"

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
	commands.NewCodeGenerators,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewRoomBookingUseCase,
		commands.NewSitterBookingUseCase,
		commands.NewCalendarUseCase,
		commands.NewSweepUseCase,
		commands.NewNotificationDispatcher,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAvailabilityQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
