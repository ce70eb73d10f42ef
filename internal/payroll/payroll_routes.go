package payroll

import (
	"go-fleetpay/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the payroll endpoints. Create and the async batch
// request honour Idempotency-Key when rdb is non-nil.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	idempotent := middleware.Idempotency(rdb)

	payrolls := r.Group("/payrolls")
	{
		payrolls.GET("", handler.GetAll)
		payrolls.GET("/:id", handler.GetById)
		payrolls.GET("/:id/breakdown", handler.GetBreakdown)
		payrolls.POST("", idempotent, handler.Create)
		payrolls.POST("/preview", handler.Preview)
		payrolls.POST("/batch", handler.BatchRecompute)
		payrolls.POST("/batch/async", idempotent, handler.RequestBatch)
		payrolls.POST("/:id/recalculate", handler.Recalculate)
		payrolls.POST("/:id/confirm", handler.Confirm)
		payrolls.POST("/:id/pay", handler.MarkAsPaid)
	}
}
