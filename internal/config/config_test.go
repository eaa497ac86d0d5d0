package config_test

import (
	"testing"
	"time"

	"go-directory/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, config.StoreDriverPostgres, cfg.StoreDriver)
	assert.Equal(t, "5432", cfg.DB.Port)
	assert.Equal(t, "directory", cfg.Mongo.Database)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Empty(t, cfg.RedisAddr)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORE_DRIVER", "mongo")
	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("DB_HOST", "db")
	t.Setenv("KAFKA_BROKER", "kafka:9092")
	t.Setenv("HTTP_WRITE_TIMEOUT", "30s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, config.StoreDriverMongo, cfg.StoreDriver)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "db", cfg.DB.Host)
	assert.Equal(t, "kafka:9092", cfg.KafkaBroker)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "dynamodb")

	_, err := config.Load()

	assert.ErrorContains(t, err, "unsupported STORE_DRIVER")
}

func TestValidate_Burst(t *testing.T) {
	cfg := config.Config{StoreDriver: config.StoreDriverPostgres, RateLimitBurst: 0}

	assert.Error(t, cfg.Validate())
}
