package server

import (
	"context"
	"log"
	"strconv"
	"time"

	"imagine-algorithm/internal/bootstrap"
	"imagine-algorithm/internal/config"
	"imagine-algorithm/internal/metrics"
	"imagine-algorithm/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024, // 1MB
		AppName:   cfg.Tracing.ServiceName,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(requestMetrics(container.Metrics))
	app.Use(serverutils.ErrorHandlerMiddleware())

	// Operational endpoints stay outside the session scope.
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	app.Get("/healthz", func(ctx *fiber.Ctx) error {
		return ctx.JSON(serverutils.SuccessResponse("ok", fiber.Map{
			"websocket_hub": container.WebSocketHub != nil,
		}))
	})

	app.Use(serverutils.SessionMiddleware(serverutils.SessionOptions{
		Secret:     cfg.Session.Secret,
		CookieName: cfg.Session.CookieName,
		TTL:        cfg.Session.TTL,
		Secure:     cfg.IsProduction(),
	}))

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AnalyzerController.RegisterRoutes(api)
	c.BoardController.RegisterRoutes(api)
	c.ConsiderationController.RegisterRoutes(api)
	c.WorkshopController.RegisterRoutes(api)

	c.FeedHandler.RegisterRoutes(api)

	c.PageController.RegisterRoutes(app)
}

// requestMetrics labels by route pattern so path parameters do not
// explode the label set.
func requestMetrics(m *metrics.Metrics) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		path := ctx.Route().Path
		if path == "" {
			path = "unmatched"
		}
		m.RecordHTTPRequest(ctx.Method(), path, strconv.Itoa(ctx.Response().StatusCode()), time.Since(start).Seconds())
		return err
	}
}
