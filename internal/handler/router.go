package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"code-lookup/internal/handler/api"
	"code-lookup/internal/handler/middleware"
	"code-lookup/internal/handler/web"
	"code-lookup/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

type Handlers struct {
	Page  *api.PageHandler
	Check *api.CheckHandler
	Admin *api.AdminHandler
}

type AdminGuards struct {
	Auth     *middleware.AdminMiddleware
	Throttle *middleware.AdminThrottle
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, guards AdminGuards) error {
	tmpl, err := web.Templates()
	if err != nil {
		return err
	}
	engine.SetHTMLTemplate(tmpl)

	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, guards)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.MetricsMiddleware())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, guards AdminGuards) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	engine.GET("/", h.Page.Index)
	engine.GET("/admin", h.Page.Admin)

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/check", Handler: h.Check.Check},
		})

		admin := apiGroup.Group("/admin")
		// credential failures stay 401; only authenticated calls reach the throttle
		admin.Use(guards.Auth.RequireAdmin(), guards.Throttle.Middleware())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/codes", Handler: h.Admin.List},
				{Method: http.MethodPost, Path: "/codes", Handler: h.Admin.Add},
				{Method: http.MethodDelete, Path: "/codes/:id", Handler: h.Admin.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}
