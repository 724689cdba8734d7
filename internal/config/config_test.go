package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexaride/internal/modules/pricing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSOrigins)
	assert.Equal(t, 3*time.Second, cfg.Maps.RoutingTimeout)
	assert.Equal(t, 6*time.Hour, cfg.Redis.RouteTTL)
	assert.Equal(t, "quote.issued", cfg.Kafka.Topic)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Empty(t, cfg.DB.DSN)
	assert.Equal(t, pricing.DefaultRates(), cfg.Pricing)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("NEXA_HTTP_ADDR", ":9090")
	t.Setenv("NEXA_APP_ENV", "production")
	t.Setenv("NEXA_ROUTING_TIMEOUT", "1500ms")
	t.Setenv("NEXA_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092")
	t.Setenv("NEXA_PRICE_PER_KM", "2.1")
	t.Setenv("NEXA_PRICE_MINIMUM_FARE", "30")
	t.Setenv("NEXA_ADMIN_USERNAME", "admin")
	t.Setenv("NEXA_ADMIN_PASSWORD", "secret")

	cfg, err := load("")
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 1500*time.Millisecond, cfg.Maps.RoutingTimeout)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.InDelta(t, 2.1, cfg.Pricing.PerKm, 1e-9)
	assert.Equal(t, 30, cfg.Pricing.MinimumFare)
	assert.Equal(t, "admin", cfg.Admin.Username)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:7070\nMAPS_BROWSER_KEY=browser-key\n"), 0o600))

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.HTTP.Addr)
	assert.Equal(t, "browser-key", cfg.Maps.BrowserKey)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad duration", key: "NEXA_ROUTING_TIMEOUT", val: "soon"},
		{name: "zero timeout", key: "NEXA_ROUTING_TIMEOUT", val: "0s"},
		{name: "bad float", key: "NEXA_PRICE_PER_KM", val: "cheap"},
		{name: "negative rate", key: "NEXA_PRICE_STOP_SURCHARGE", val: "-1"},
		{name: "user without password", key: "NEXA_ADMIN_USERNAME", val: "admin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := load("")
			assert.Error(t, err)
		})
	}
}
