package payrollerrors

import (
	"net/http"

	"go-fleetpay/internal/shared/apperror"
)

var (
	ErrInvalidDriverID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid driver id",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"month must be 1-12 and year between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrInvalidPeriodFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid period format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll status filter",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"worked hours must be a non-negative decimal",
		http.StatusBadRequest,
	)
	ErrWorkedHoursRequired = apperror.New(
		apperror.CodeInvalidInput,
		"worked_hours_total is required for employee drivers",
		http.StatusBadRequest,
	)
	ErrDriverNotFound = apperror.New(
		apperror.CodeNotFound,
		"driver not found",
		http.StatusNotFound,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrHourlyRateMissing = apperror.New(
		apperror.CodeMissingSetup,
		"employee driver has no hourly rate",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidTripData = apperror.New(
		apperror.CodeInvalidState,
		"trip has a negative distance or waiting time",
		http.StatusUnprocessableEntity,
	)
	ErrDuplicateRecord = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this driver and period",
		http.StatusConflict,
	)
	ErrImmutableRecord = apperror.New(
		apperror.CodeInvalidState,
		"payroll can only be recalculated while status is DRAFT",
		http.StatusBadRequest,
	)
	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid payroll status transition",
		http.StatusBadRequest,
	)
	ErrConcurrentUpdate = apperror.New(
		apperror.CodeConflict,
		"payroll was modified by another request, reload and retry",
		http.StatusConflict,
	)
	ErrDeductionResolution = apperror.New(
		apperror.CodeInternalError,
		"failed to resolve monthly deductions",
		http.StatusInternalServerError,
	)
	ErrLedgerPostFailure = apperror.New(
		apperror.CodeServiceUnavailable,
		"ledger posting failed, payroll was not marked as paid",
		http.StatusServiceUnavailable,
	)
	ErrBatchQueueUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"asynchronous batch requests are not available",
		http.StatusServiceUnavailable,
	)
)
