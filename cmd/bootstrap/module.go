package bootstrap

import (
	"code-lookup/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	I18nModule,
	RateLimitModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
