package rate

import (
	"net/http"
	"strconv"

	rateerrors "go-fleetpay/internal/rate/errors"
	"go-fleetpay/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	response.ErrorFrom(c, err)
}

func yearParam(c *gin.Context) (int, bool) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		return 0, false
	}
	return year, true
}

func (h *Handler) ListTiers(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, rateerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.ListTiers(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertTier(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, rateerrors.ErrInvalidYear)
		return
	}

	var req UpsertRateTierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.UpsertTier(c.Request.Context(), year, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) DeactivateTier(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, rateerrors.ErrInvalidYear)
		return
	}
	distance, err := strconv.Atoi(c.Param("distance"))
	if err != nil {
		h.writeServiceError(c, rateerrors.ErrInvalidDistance)
		return
	}

	if err := h.service.DeactivateTier(c.Request.Context(), year, distance); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"year": year, "distance_km": distance, "active": false}, nil)
}

func (h *Handler) GetConfiguration(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, rateerrors.ErrInvalidYear)
		return
	}

	resp, err := h.service.GetConfiguration(c.Request.Context(), year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UpsertConfiguration(c *gin.Context) {
	year, ok := yearParam(c)
	if !ok {
		h.writeServiceError(c, rateerrors.ErrInvalidYear)
		return
	}

	var req UpsertConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	resp, err := h.service.UpsertConfiguration(c.Request.Context(), year, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
