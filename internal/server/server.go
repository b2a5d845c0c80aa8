package server

import (
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/bootstrap"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/config"
	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/pkg/serverutils"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 1 * 1024 * 1024,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	sessionTTL := time.Duration(cfg.Session.TTLMinutes) * time.Minute
	app.Use(serverutils.SessionMiddleware(cfg.Session.JWTSecret, sessionTTL))

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

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.SearchController.RegisterRoutes(api)
	c.CartController.RegisterRoutes(api)
	c.NotificationController.RegisterRoutes(api)
	c.PreferenceController.RegisterRoutes(api)
	c.ContactController.RegisterRoutes(api)
	c.BlogController.RegisterRoutes(api)
}
