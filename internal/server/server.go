package server

import (
	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"homesite/docs"
	"homesite/internal/config"
	handlers "homesite/internal/http/handler"
	"homesite/internal/http/middleware"
	"homesite/internal/service"
	"homesite/internal/view"
)

// Deps are the collaborators the HTTP server is assembled from.
type Deps struct {
	Home service.HomeService
	// Registry receives the HTTP metrics and backs /metrics. Nil disables metrics.
	Registry *prometheus.Registry
	Logger   *zap.Logger
}

// New builds the Fiber application: global middleware, application routes
// and the operational endpoints (/metrics, /swagger).
func New(cfg *config.AppConfig, deps Deps) (*fiber.App, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop()
	}

	app := fiber.New(fiber.Config{
		AppName:               cfg.AppName,
		StrictRouting:         true,
		CaseSensitive:         true,
		DisableStartupMessage: true,
		ErrorHandler:          handlers.ErrorHandler(),
		Views:                 view.New(),
	})

	// The logger sits outside recover so recovered panics are logged as 500s.
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(fiberrecover.New())
	app.Use(otelfiber.Middleware())

	metricsEnabled := cfg.MetricsEnabled && deps.Registry != nil
	if metricsEnabled {
		prom, err := middleware.NewPrometheusMiddleware(deps.Registry)
		if err != nil {
			return nil, err
		}
		app.Use(prom.Handler())
	}

	handlers.RegisterRoutes(app, deps.Home)

	if metricsEnabled {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	// Set once here; the Swagger handler only reads docs.SwaggerInfo.
	docs.SwaggerInfo.Host = cfg.AppHost
	app.Get("/swagger/*", swagger.HandlerDefault)

	return app, nil
}
