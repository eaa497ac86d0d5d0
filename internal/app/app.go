package app

import (
	"context"
	"errors"
	"fmt"

	"go-directory/internal/compensation"
	"go-directory/internal/config"
	"go-directory/internal/employee"
	"go-directory/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type stores struct {
	employees     employee.Repository
	compensations compensation.Repository
	close         func() error
}

// BuildApp connects the configured backends and registers every route on
// router. The returned cleanup releases those connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app")
	var closers []func() error

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				logger.Warn("cleanup failed", zap.Error(err))
			}
		}
	}

	// 1. Setup Infrastructure
	st, err := openStores(cfg)
	if err != nil {
		return nil, err
	}
	closers = append(closers, st.close)
	logger.Info("store ready", zap.String("driver", cfg.StoreDriver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb, err = connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, rdb.Close)
	} else {
		logger.Info("REDIS_ADDR not set, idempotency disabled")
	}

	var employeePublisher employee.EventPublisher
	var compensationPublisher compensation.EventPublisher
	if cfg.KafkaBroker != "" {
		writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
		if err != nil {
			cleanup()
			return nil, err
		}
		closers = append(closers, writer.Close)
		employeePublisher = employee.NewKafkaEventPublisher(writer)
		compensationPublisher = compensation.NewKafkaEventPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, lifecycle events disabled")
	}

	// 2. Register Modules & Routes
	registerModules(router, modules{
		employeeRepo:          st.employees,
		compensationRepo:      st.compensations,
		employeePublisher:     employeePublisher,
		compensationPublisher: compensationPublisher,
		rdb:                   rdb,
	})

	return cleanup, nil
}

func openStores(cfg config.Config) (stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverMongo:
		client, err := connection.ConnectMongoWithRetry(cfg.Mongo.URI, cfg.ConnectRetries)
		if err != nil {
			return stores{}, err
		}
		db := client.Database(cfg.Mongo.Database)
		return stores{
			employees:     employee.NewMongoRepository(db),
			compensations: compensation.NewMongoRepository(db),
			close:         func() error { return client.Disconnect(context.Background()) },
		}, nil

	case config.StoreDriverPostgres:
		gormDB, err := connection.ConnectGORMWithRetry(
			cfg.DB.Host,
			cfg.DB.User,
			cfg.DB.Password,
			cfg.DB.Name,
			cfg.DB.Port,
			cfg.DB.SSLMode,
			cfg.ConnectRetries,
		)
		if err != nil {
			return stores{}, err
		}
		sqlDB, err := gormDB.DB()
		if err != nil {
			return stores{}, err
		}
		if err := migrate(gormDB); err != nil {
			_ = sqlDB.Close()
			return stores{}, err
		}
		return stores{
			employees:     employee.NewRepository(gormDB),
			compensations: compensation.NewRepository(gormDB),
			close:         sqlDB.Close,
		}, nil
	}

	return stores{}, errors.New("unsupported store driver: " + cfg.StoreDriver)
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&employee.Employee{}, &compensation.Compensation{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
