package components

import (
	"gocery/internal/infra/ai"
	"gocery/internal/pkg/clock"
	"gocery/internal/usecase/commands"
	"gocery/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	ai.NewClient,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewCartCommands,
		commands.NewWishlistCommands,
		commands.NewComparisonCommands,
		commands.NewOrderCommands,
		commands.NewCouponCommands,
		commands.NewProductCommands,
		commands.NewReviewCommands,
		commands.NewAssistantCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewClientStoreQueries,
		queries.NewProductQueries,
		queries.NewOrderQueries,
		queries.NewReviewQueries,
		queries.NewNotificationQueries,
		queries.NewUserQueries,
	),
)
