package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/events"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka/consumer"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/reconcile"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer reacts to shift config and employee lifecycle events with
// reconciliation sweeps.
func RunConsumer() error {
	logger := zap.L().Named("app.consumer")

	gormDB, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaBroker := os.Getenv("KAFKA_BROKER")
	if kafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, config cache disabled", zap.Error(err))
		redisClient = nil
	}

	shiftConfigService := shiftconfig.NewService(sqlDB, shiftconfig.NewRepository(gormDB), redisClient)
	notificationService := notification.NewService(sqlDB, notification.NewRepository(gormDB))
	reconcileService := reconcile.NewService(
		sqlDB,
		reconcile.NewRepository(gormDB),
		shiftConfigService,
		notificationService,
	)

	configReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.ShiftConfigUpdatedTopic,
		GroupID:        "portal-reconcile-shift-config",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer configReader.Close()

	lifecycleReader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{kafkaBroker},
		Topic:          events.EmployeeLifecycleTopic,
		GroupID:        "portal-reconcile-employee-lifecycle",
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer lifecycleReader.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeShiftConfigUpdated(ctx, configReader, reconcileService, logger)
	go consumer.ConsumeEmployeeLifecycle(ctx, lifecycleReader, reconcileService, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
