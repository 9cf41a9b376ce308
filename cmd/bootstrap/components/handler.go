package components

import (
	"code-lookup/internal/handler"
	"code-lookup/internal/handler/api"
	"code-lookup/internal/handler/middleware"
	"code-lookup/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewPageHandler,
		api.NewCheckHandler,
		api.NewAdminHandler,
		middleware.NewAdminMiddleware,
		middleware.NewAdminThrottle,
	),
	fx.Invoke(registerRoutes),
)

type routeParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Page     *api.PageHandler
	Check    *api.CheckHandler
	Admin    *api.AdminHandler
	Auth     *middleware.AdminMiddleware
	Throttle *middleware.AdminThrottle
}

func registerRoutes(p routeParams) error {
	return handler.NewRouter(p.Engine, p.Config,
		handler.Handlers{Page: p.Page, Check: p.Check, Admin: p.Admin},
		handler.AdminGuards{Auth: p.Auth, Throttle: p.Throttle},
	)
}
