package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"go-fleetpay/internal/config"
	"go-fleetpay/internal/events"
	"go-fleetpay/internal/messaging/kafka/consumer"
	"go-fleetpay/internal/shared/connection"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer runs queued batch recomputes. Redis is used for the period
// lock so batches here and requests on the API never write the same record
// at once.
func RunConsumer(cfg config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.KafkaBroker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	m := buildModules(sqlDB, gormDB, redisClient, zap.L())

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.KafkaBroker},
		Topic:          events.PayrollBatchRequestedTopic,
		GroupID:        cfg.BatchConsumerID,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer.ConsumePayrollBatchRequested(ctx, reader, m.payrollService, logger)
	logger.Info("consumer stopped")
	return nil
}
