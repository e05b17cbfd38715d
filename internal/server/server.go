// Package server assembles the HTTP application: middleware, product routes,
// API documentation, health and metrics endpoints.
package server

import (
	"io"
	"os"
	"time"

	_ "catalog/docs"
	"catalog/internal/handlers"
	"catalog/internal/metrics"
	"catalog/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Options configures NewApp.
type Options struct {
	// FrontendURL is the only origin allowed by CORS.
	FrontendURL string
	// LogOutput receives one line per request. Defaults to os.Stdout.
	LogOutput io.Writer

	ProductHandler *handlers.ProductHandler
}

// NewApp builds the Fiber application. It does not start listening.
func NewApp(opts Options) *fiber.App {
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stdout
	}

	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		ErrorHandler: middleware.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger(opts.LogOutput))
	app.Use(middleware.Metrics())
	app.Use(middleware.CORS(opts.FrontendURL))

	// --- API Routes ---
	api := app.Group("/api")
	opts.ProductHandler.RegisterRoutes(api)

	// --- Documentation ---
	app.Get("/docs/*", adaptor.HTTPHandlerFunc(httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	)))

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	return app
}
