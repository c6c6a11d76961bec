package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnv_LocalProfile(t *testing.T) {
	t.Setenv("CI", "false")

	cfg := LoadEnv()

	assert.False(t, cfg.Server.CI)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "scms", cfg.Database.DBName)
	assert.Equal(t, "postgres", cfg.Database.Driver)
}

func TestLoadEnv_CIProfile(t *testing.T) {
	t.Setenv("CI", "true")

	cfg := LoadEnv()

	assert.True(t, cfg.Server.CI)
	assert.Equal(t, "127.0.0.1", cfg.Database.Host)
	assert.Equal(t, "root", cfg.Database.User)
	assert.Equal(t, "root", cfg.Database.Password)
}

func TestLoadEnv_ExplicitOverridesProfile(t *testing.T) {
	t.Setenv("CI", "true")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_OPEN_CONNS", "42")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")

	cfg := LoadEnv()

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 42, cfg.Database.MaxOpenConns)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestGetEnvInt_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_INT", "not-a-number")
	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
}
