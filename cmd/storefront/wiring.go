package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dieuclat/storefront/internal/catalog"
	"github.com/dieuclat/storefront/internal/config"
	"github.com/dieuclat/storefront/internal/messaging"
	"github.com/dieuclat/storefront/internal/messaging/kafka"
	"github.com/dieuclat/storefront/internal/messaging/watermill"
	"github.com/dieuclat/storefront/internal/repository"
	"github.com/dieuclat/storefront/internal/repository/memory"
	"github.com/dieuclat/storefront/internal/repository/postgres"
	"github.com/dieuclat/storefront/internal/repository/redis"
	"github.com/dieuclat/storefront/internal/repository/sqlite"
)

// broker is what serve needs from a message broker.
type broker interface {
	messaging.Publisher
	messaging.Subscriber
	Close() error
}

func openStorage(ctx context.Context, cfg *config.Config) (repository.Storage, error) {
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage ready", "driver", cfg.StorageDriver, "path", s.Path())
		return s, nil
	case config.StoragePostgres:
		s, err := postgres.Open(cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage ready", "driver", cfg.StorageDriver)
		return s, nil
	case config.StorageRedis:
		s, err := redis.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, err
		}
		slog.Info("Storage ready", "driver", cfg.StorageDriver, "addr", cfg.RedisAddr)
		return s, nil
	case config.StorageMemory:
		slog.Warn("Using in-memory storage, nothing survives a restart")
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

// openBroker returns nil when no broker is configured.
func openBroker(cfg *config.Config) (broker, error) {
	switch cfg.Broker {
	case config.BrokerNone:
		return nil, nil
	case config.BrokerMemory:
		return watermill.NewGoChannel(false, watermill.NewLogger()), nil
	case config.BrokerKafka:
		return kafka.NewKafkaBroker(cfg.KafkaBrokers), nil
	case config.BrokerWatermillKafka:
		return watermill.NewKafka(cfg.KafkaBrokers, watermill.NewLogger())
	default:
		return nil, fmt.Errorf("unknown broker %q", cfg.Broker)
	}
}

func loadCatalog(cfg *config.Config) (*catalog.Store, error) {
	if cfg.CatalogFile == "" {
		return catalog.Default(), nil
	}
	store, err := catalog.LoadFile(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	slog.Info("Catalog loaded", "file", cfg.CatalogFile, "products", store.Len())
	return store, nil
}
