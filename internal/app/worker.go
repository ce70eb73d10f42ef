package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"go-fleetpay/internal/config"
	"go-fleetpay/internal/messaging/kafka"
	"go-fleetpay/internal/messaging/kafka/producer"
	"go-fleetpay/internal/payroll"
	"go-fleetpay/internal/shared/connection"
	"go-fleetpay/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const (
	schedulerActor  = "scheduler"
	outboxPurgeCron = "30 4 * * *"
)

// RunWorker publishes the outbox and, on the configured schedule, queues the
// previous month's batch recompute.
func RunWorker(cfg config.Config) error {
	logger := zap.L().Named("app.worker")

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

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	relay := producer.NewRelay(kafka.NewOutboxRepository(sqlDB), kafkaWriter, zap.L(), cfg.OutboxInterval)
	m := buildModules(sqlDB, gormDB, nil, zap.L())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	scheduler := cron.New(cron.WithLocation(time.UTC))
	if _, err := scheduler.AddFunc(cfg.BatchCron, func() {
		requestPreviousMonthBatch(ctx, m.payrollService, time.Now(), logger)
	}); err != nil {
		return fmt.Errorf("invalid PAYROLL_BATCH_CRON %q: %w", cfg.BatchCron, err)
	}
	if _, err := scheduler.AddFunc(outboxPurgeCron, func() { relay.Purge(ctx) }); err != nil {
		return err
	}
	scheduler.Start()
	logger.Info("schedules registered",
		zap.String("payroll_batch", cfg.BatchCron),
		zap.String("outbox_purge", outboxPurgeCron),
	)

	relay.Run(ctx)

	logger.Info("worker shutting down")
	<-scheduler.Stop().Done()

	return nil
}

// requestPreviousMonthBatch queues the batch for the month before now. The
// month that just closed is the one whose trips are final.
func requestPreviousMonthBatch(ctx context.Context, svc payroll.Service, now time.Time, logger *zap.Logger) {
	period := payroll.PeriodOf(now).Previous()
	rid := uuid.NewString()
	ctx = contextutil.WithRequestID(ctx, rid)

	resp, err := svc.RequestBatch(ctx, schedulerActor, payroll.BatchRecomputeRequest{
		Month: period.Month,
		Year:  period.Year,
	})
	if err != nil {
		logger.Error("scheduled payroll batch request failed",
			zap.String("request_id", rid),
			zap.String("period", period.String()),
			zap.Error(err),
		)
		return
	}

	logger.Info("scheduled payroll batch requested",
		zap.String("request_id", rid),
		zap.Int("month", resp.Month),
		zap.Int("year", resp.Year),
	)
}
