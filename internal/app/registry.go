package app

import (
	"database/sql"
	"net/http"

	"go-fleetpay/internal/driver"
	"go-fleetpay/internal/expense"
	"go-fleetpay/internal/ledger"
	"go-fleetpay/internal/messaging/kafka"
	"go-fleetpay/internal/payroll"
	"go-fleetpay/internal/rate"
	"go-fleetpay/internal/shared/counter"
	"go-fleetpay/internal/shared/keylock"
	"go-fleetpay/internal/trip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	rateService    rate.Service
	payrollService payroll.Service
}

// buildModules wires repositories and services. rdb may be nil: the rate
// cache and the payroll period lock then fall back to no-ops.
func buildModules(db *sql.DB, gormDB *gorm.DB, rdb *redis.Client, logger *zap.Logger) modules {
	// --- Repositories ---
	rateRepo := rate.NewRepository(gormDB)
	driverRepo := driver.NewRepository(gormDB)
	tripRepo := trip.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	ledgerRepo := ledger.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	rateService := rate.NewService(rateRepo, rdb, logger)
	engine := payroll.NewEngine(
		rateService,
		payroll.NewAggregator(tripRepo, rateService),
		payroll.NewDeductionResolver(tripRepo, expenseRepo, ledgerRepo, payrollRepo),
	)
	payrollService := payroll.NewServiceWithOutbox(
		db,
		payrollRepo,
		engine,
		driverRepo,
		ledgerRepo,
		counterRepo,
		outboxRepo,
		keylock.New(rdb, keylock.DefaultTTL, logger),
		logger,
	)

	return modules{rateService: rateService, payrollService: payrollService}
}

func registerModules(router *gin.Engine, m modules, rdb *redis.Client) {
	// --- Handlers ---
	rateHandler := rate.NewHandler(m.rateService)
	payrollHandler := payroll.NewHandler(m.payrollService)

	// --- Routes Registration ---
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := router.Group("/api/v1")
	{
		rate.RegisterRoutes(api, rateHandler)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
	}
}
