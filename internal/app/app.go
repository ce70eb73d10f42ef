package app

import (
	"go-fleetpay/internal/config"
	"go-fleetpay/internal/middleware"
	"go-fleetpay/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the stores, installs middleware and registers routes.
// The returned func closes the connections.
func BuildApp(router *gin.Engine, cfg config.Config) (func(), error) {
	logger := zap.L().Named("app.api")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.ConnectRetries)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, cfg.ConnectRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	router.Use(
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
		middleware.RateLimitByActor(rate.Limit(cfg.RateLimitPerSecond), cfg.RateLimitBurst),
	)

	registerModules(router, buildModules(sqlDB, gormDB, redisClient, zap.L()), redisClient)

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}
	return cleanup, nil
}
