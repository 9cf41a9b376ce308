package components

import (
	"code-lookup/internal/pkg/config"
	"code-lookup/internal/usecase"
	"code-lookup/internal/usecase/commands"
	"code-lookup/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewCodeCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewLookupQueries,
		queries.NewCodeQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		func(cfg config.AdminConfig) usecase.AdminAuthenticator {
			return usecase.NewAdminAuthenticator(cfg.Key)
		},
	),
)
