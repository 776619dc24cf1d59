package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/messaging/kafka/producer"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/notification"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/reconcile"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shared/connection"
	"github.com/danishbarkat/bytechsol-portal-sub000/internal/shiftconfig"

	"go.uber.org/zap"
)

// RunWorker ships outbox events to Kafka and runs the periodic
// reconciliation sweep.
func RunWorker() error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(kafkaBroker, 5)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		logger.Warn("redis unavailable, config cache disabled", zap.Error(err))
		redisClient = nil
	}

	outboxRepo := kafka.NewOutboxRepository(sqlDB)
	shiftConfigService := shiftconfig.NewService(sqlDB, shiftconfig.NewRepository(gormDB), redisClient)
	notificationService := notification.NewService(sqlDB, notification.NewRepository(gormDB))
	reconcileService := reconcile.NewService(
		sqlDB,
		reconcile.NewRepository(gormDB),
		shiftConfigService,
		notificationService,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		3*time.Second,
	)

	sweepInterval := 15 * time.Minute
	if raw := os.Getenv("RECONCILE_INTERVAL_MINUTES"); raw != "" {
		if minutes, err := strconv.Atoi(raw); err == nil && minutes > 0 {
			sweepInterval = time.Duration(minutes) * time.Minute
		}
	}

	go func() {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := reconcileService.Run(ctx); err != nil {
					logger.Error("periodic sweep failed", zap.Error(err))
				}
			}
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("worker shutting down")
	cancel()

	return nil
}
