// Package config loads application settings from the environment and an optional .env file.
package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every runtime setting of the API server.
type Config struct {
	AppPort        string
	DatabaseDriver string
	DatabaseDSN    string
	RabbitMQURL    string // empty disables event publishing
	SessionSecret  string
	SessionTTL     time.Duration
	SeedProducts   bool
}

// Load reads configuration from the environment, after loading .env if it exists.
func Load() (Config, error) {
	_ = godotenv.Load() // load .env if it exists

	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", "sqlite")
	v.SetDefault("DATABASE_DSN", "peninsula.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SESSION_SECRET", "change-me")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SEED_PRODUCTS", true)
	v.AutomaticEnv() // Load environment variables

	return FromViper(v)
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		AppPort:        v.GetString("APP_PORT"),
		DatabaseDriver: v.GetString("DATABASE_DRIVER"),
		DatabaseDSN:    v.GetString("DATABASE_DSN"),
		RabbitMQURL:    v.GetString("RABBITMQ_URL"),
		SessionSecret:  v.GetString("SESSION_SECRET"),
		SessionTTL:     v.GetDuration("SESSION_TTL"),
		SeedProducts:   v.GetBool("SEED_PRODUCTS"),
	}

	switch cfg.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return Config{}, fmt.Errorf("unsupported DATABASE_DRIVER %q (want sqlite or postgres)", cfg.DatabaseDriver)
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET must not be empty")
	}
	if cfg.SessionTTL <= 0 {
		return Config{}, fmt.Errorf("SESSION_TTL must be positive, got %s", cfg.SessionTTL)
	}

	log.Printf("[config] APP_PORT=%s", cfg.AppPort)
	log.Printf("[config] DATABASE_DRIVER=%s", cfg.DatabaseDriver)
	log.Printf("[config] events enabled=%t", cfg.RabbitMQURL != "")
	return cfg, nil
}
