package config_test

import (
	"io"
	"log"
	"os"
	"testing"
	"time"

	"peninsula/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("SESSION_TTL", "")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("DATABASE_DRIVER")
	os.Unsetenv("SESSION_TTL")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_DSN", "host=db user=app dbname=peninsula")
	t.Setenv("RABBITMQ_URL", "amqp://guest:guest@mq:5672/")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("SEED_PRODUCTS", "false")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, "postgres", cfg.DatabaseDriver)
	assert.Equal(t, "host=db user=app dbname=peninsula", cfg.DatabaseDSN)
	assert.Equal(t, "amqp://guest:guest@mq:5672/", cfg.RabbitMQURL)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.SeedProducts)
}

func TestFromViper_Validation(t *testing.T) {
	valid := func() *viper.Viper {
		v := viper.New()
		v.Set("DATABASE_DRIVER", "sqlite")
		v.Set("SESSION_SECRET", "s")
		v.Set("SESSION_TTL", "1h")
		return v
	}

	_, err := config.FromViper(valid())
	assert.NoError(t, err)

	v := valid()
	v.Set("DATABASE_DRIVER", "mysql")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "DATABASE_DRIVER")

	v = valid()
	v.Set("SESSION_SECRET", "")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "SESSION_SECRET")

	v = valid()
	v.Set("SESSION_TTL", "0s")
	_, err = config.FromViper(v)
	assert.ErrorContains(t, err, "SESSION_TTL")
}
