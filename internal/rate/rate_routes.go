package rate

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	rates := r.Group("/rates/:year")
	{
		rates.GET("/tiers", handler.ListTiers)
		rates.PUT("/tiers", handler.UpsertTier)
		rates.DELETE("/tiers/:distance", handler.DeactivateTier)
		rates.GET("/configuration", handler.GetConfiguration)
		rates.PUT("/configuration", handler.UpsertConfiguration)
	}
}
