package apperror

import "net/http"

var (
	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)

	ErrInvalidInput = New(CodeInvalidInput, "The provided input is invalid", http.StatusBadRequest)

	ErrRateLimited = New(CodeRateLimited, "Too many requests", http.StatusTooManyRequests)

	// ErrRequestInFlight rejects a retry that arrives while the original
	// request with the same idempotency key is still running.
	ErrRequestInFlight = New(CodeProcessing, "Request with this idempotency key is still being processed", http.StatusConflict)
)
