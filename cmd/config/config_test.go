package config_test

import (
	"testing"
	"time"

	"github.com/muhammadheryan/inventory/cmd/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "KES", cfg.Checkout.Currency)
	assert.False(t, cfg.Alert.Deduplicate)
	assert.False(t, cfg.RabbitMQ.Enabled)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ALERT_DEDUPLICATE", "true")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")
	t.Setenv("CHECKOUT_CURRENCY", "USD")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Alert.Deduplicate)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "USD", cfg.Checkout.Currency)
}

func TestGetDSN(t *testing.T) {
	cfg := &config.Config{Database: config.DatabaseConfig{
		Host: "db", Port: 3306, User: "app", Password: "secret", Name: "inventory",
	}}

	dsn := cfg.GetDSN()
	assert.Contains(t, dsn, "app:secret@tcp(db:3306)/inventory")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}
