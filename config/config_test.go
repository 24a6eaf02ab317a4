package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "wastewise", cfg.DBName)
	assert.NotEmpty(t, cfg.JWTSecret, "development gets a fallback secret")
	assert.NotEmpty(t, cfg.SensorBaseURL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SENSOR_BASE_URL", "http://10.0.0.5")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "9999", cfg.ServerPort)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "http://10.0.0.5", cfg.SensorBaseURL)
}

func TestLoadConfigRejectsBadRedisDB(t *testing.T) {
	t.Setenv("REDIS_DB", "not-a-number")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestProductionRequiresSecrets(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PASSWORD", "")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("JWT_SECRET", "prod-secret")
	t.Setenv("DB_PASSWORD", "prod-pass")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "prod-secret", cfg.JWTSecret)
}
