package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"go-fleetpay/internal/app"
	"go-fleetpay/internal/bootstrap"
	"go-fleetpay/internal/config"
	"go-fleetpay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
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

	apperror.Init()
	r := gin.New()
	r.Use(gin.Recovery())

	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunHTTPServer(ctx, r, bootstrap.ServerConfig{
		Port:            cfg.Port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     60 * time.Second,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, bootstrap.NewZapAuditLogger(logger))
	if err != nil {
		logger.Error("http server stopped", zap.Error(err))
	}
}
