package rateerrors

import (
	"net/http"

	"go-fleetpay/internal/shared/apperror"
)

var (
	ErrConfigurationMissing = apperror.New(
		apperror.CodeMissingSetup,
		"yearly rate configuration is missing",
		http.StatusUnprocessableEntity,
	)
	ErrRateTableEmpty = apperror.New(
		apperror.CodeMissingSetup,
		"rate table has no active tiers for this year",
		http.StatusUnprocessableEntity,
	)
	ErrRateNotFound = apperror.New(
		apperror.CodeMissingSetup,
		"no rate tier for this distance",
		http.StatusUnprocessableEntity,
	)
	ErrTierNotFound = apperror.New(
		apperror.CodeNotFound,
		"rate tier not found",
		http.StatusNotFound,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
	ErrInvalidDistance = apperror.New(
		apperror.CodeInvalidInput,
		"tier distance must be between 0 and 200 km",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be a non-negative decimal",
		http.StatusBadRequest,
	)
	ErrInvalidUplift = apperror.New(
		apperror.CodeInvalidInput,
		"uplift coefficient must be greater than zero",
		http.StatusBadRequest,
	)
)
