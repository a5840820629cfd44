package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"peninsula/internal/config"
	"peninsula/internal/database"
	"peninsula/internal/repositories"
	"peninsula/internal/server"
	"peninsula/internal/services"
	"peninsula/internal/session"
	"peninsula/pkg/metrics"
	"peninsula/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// --- Database ---
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if cfg.SeedProducts {
		if _, err := database.SeedProducts(context.Background(), repositories.NewGORMProductRepository(db), database.DefaultProducts()); err != nil {
			log.Fatalf("Failed to seed products: %v", err)
		}
	}

	// --- RabbitMQ (optional) ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.DefaultConfig(cfg.RabbitMQURL))
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close() // Ensure the connection is closed on exit
		publisher = mqClient

		// Log every customer lifecycle event that reaches the queue.
		if err := mqClient.Consume(func(msg amqp.Delivery) error {
			return services.HandleCustomerEvent(msg.Body)
		}); err != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", err)
		}
	} else {
		log.Println("RABBITMQ_URL is not set. Customer events will not be published.")
	}

	app := server.New(server.Dependencies{
		DB:           db,
		Publisher:    publisher,
		SessionCodec: session.NewCodec(cfg.SessionSecret, cfg.SessionTTL),
		Metrics:      metrics.NewServerMetrics("api"),
		RequestLog:   true,
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	log.Println("Server gracefully stopped")
}
