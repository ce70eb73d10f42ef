package response

import (
	"strconv"

	"go-fleetpay/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

type PaginationMeta struct {
	Total      int64 `json:"total,omitempty"`
	TotalPages int   `json:"totalPages,omitempty"`
	Page       int   `json:"page,omitempty"`
	PageSize   int   `json:"pageSize,omitempty"`
}

func NewPaginationMeta(total int64, page, limit int) PaginationMeta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return PaginationMeta{Total: total, TotalPages: totalPages, Page: page, PageSize: limit}
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type ApiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  any             `json:"data,omitempty"`
	Meta  *PaginationMeta `json:"meta,omitempty"`
	Error *ErrorBody      `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *PaginationMeta) {
	c.JSON(status, ApiEnvelope{Ok: true, Data: data, Meta: meta})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Error: &ErrorBody{Code: errorCode, Message: message, Details: details},
	})
}

// ErrorFrom writes err through the envelope. AppErrors keep their status and
// code; anything else is a 500.
func ErrorFrom(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// BindError reports a failed ShouldBind* as a 400.
func BindError(c *gin.Context, err error) {
	ErrorFrom(c, apperror.MapValidationError(err))
}

// PageParams reads page and page_size from the query string, falling back to
// 1 and 10. page_size is capped at 100.
func PageParams(c *gin.Context) (page, size int) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	size, err = strconv.Atoi(c.Query("page_size"))
	if err != nil || size < 1 {
		size = defaultPageSize
	}
	return page, min(size, maxPageSize)
}

// Paginate slices an already filtered result set.
func Paginate[T any](items []T, page, size int) ([]T, PaginationMeta) {
	total := len(items)
	start := min((page-1)*size, total)
	end := min(start+size, total)
	return items[start:end], NewPaginationMeta(int64(total), page, size)
}
