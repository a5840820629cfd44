// Package server assembles the Fiber application: middleware, routes and handlers.
package server

import (
	"time"

	"peninsula/internal/handlers"
	"peninsula/internal/repositories"
	"peninsula/internal/services"
	"peninsula/internal/session"
	"peninsula/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"gorm.io/gorm"
)

// Dependencies are the collaborators the application is built from.
type Dependencies struct {
	DB           *gorm.DB
	Publisher    services.EventPublisher // optional
	SessionCodec *session.Codec
	Metrics      *metrics.ServerMetrics // optional
	// RequestLog enables the per-request access log.
	RequestLog bool
}

// New builds the Fiber application with every API route registered under /api/v1.
func New(deps Dependencies) *fiber.App {
	// --- Repositories ---
	customerRepo := repositories.NewGORMCustomerRepository(deps.DB)
	productRepo := repositories.NewGORMProductRepository(deps.DB)
	orderRepo := repositories.NewGORMOrderRepository(deps.DB)

	// --- Services ---
	customerService := services.NewCustomerService(customerRepo, deps.Publisher)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo)
	commandService := services.NewCommandService(productRepo)

	app := fiber.New(fiber.Config{
		AppName:      "peninsula",
		ErrorHandler: handlers.ErrorHandler,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	if deps.RequestLog {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		status := "healthy"
		if sqlDB, err := deps.DB.DB(); err != nil || sqlDB.PingContext(c.UserContext()) != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":   status,
			"time":     time.Now().Format(time.RFC3339),
			"events":   deps.Publisher != nil,
			"database": deps.DB.Dialector.Name(),
		})
	})

	// --- API Routes ---
	apiV1 := app.Group("/api/v1")
	handlers.NewCustomerHandler(customerService).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService).RegisterRoutes(apiV1)
	handlers.NewOrderHandler(orderService).RegisterRoutes(apiV1)
	handlers.NewCommandHandler(commandService).RegisterRoutes(apiV1)
	handlers.NewSessionHandler(deps.SessionCodec).RegisterRoutes(apiV1)

	return app
}
