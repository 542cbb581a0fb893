package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_ADDR", "STORAGE_DRIVER", "SQLITE_PATH", "BROKER", "KAFKA_BROKERS", "REDIS_DB", "PAYMENT_DELAY", "PAYMENT_TIMEOUT", "DELIVERY_LEAD_TIME", "LOG_LEVEL", "CATALOG_FILE", "SESSION_IDLE_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, StorageSQLite, cfg.StorageDriver)
	assert.Equal(t, "storefront.db", cfg.SQLitePath)
	assert.Equal(t, BrokerNone, cfg.Broker)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 2*time.Second, cfg.PaymentDelay)
	assert.Equal(t, 10*time.Second, cfg.PaymentTimeout)
	assert.Equal(t, 120*time.Hour, cfg.DeliveryLeadTime)
	assert.Equal(t, 30*time.Minute, cfg.SessionIdleTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Empty(t, cfg.CatalogFile)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("BROKER", "watermill-kafka")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("PAYMENT_TIMEOUT", "500ms")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, StorageRedis, cfg.StorageDriver)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, BrokerWatermillKafka, cfg.Broker)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 500*time.Millisecond, cfg.PaymentTimeout)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := map[string]string{
		"STORAGE_DRIVER":       "mongo",
		"BROKER":               "nats",
		"REDIS_DB":             "one",
		"PAYMENT_DELAY":        "soon",
		"PAYMENT_TIMEOUT":      "-1s",
		"LOG_LEVEL":            "loud",
		"SESSION_IDLE_TIMEOUT": "0s",
	}
	for key, val := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, val)
			_, err := FromEnv()
			assert.Error(t, err)
		})
	}
}
