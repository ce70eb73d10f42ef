package main

import (
	"context"

	"go-fleetpay/internal/config"
	"go-fleetpay/internal/shared/connection"
	"go-fleetpay/internal/shared/migrate"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
	if err != nil {
		logger.Fatal("connect database failed", zap.Error(err))
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("get sql.DB failed", zap.Error(err))
	}
	defer sqlDB.Close()

	applied, err := migrate.Up(context.Background(), sqlDB, migrate.Files())
	if err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}
	logger.Info("migrations complete", zap.Strings("applied", applied))
}
