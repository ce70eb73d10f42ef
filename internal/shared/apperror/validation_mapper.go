package apperror

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns a json field name into a label: driver_id -> Driver Id.
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	return cases.Title(language.English).String(s)
}

// MapValidationError reports the first failing field of a binding error as
// an INVALID_INPUT AppError carrying the field and rule in its details. A
// malformed body keeps the decoder message as its details.
func MapValidationError(err error) error {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return ErrInvalidInput.WithDetails(err.Error())
	}

	e := errs[0]
	label := formatFieldName(e.Field())
	details := map[string]string{"field": e.Field(), "rule": e.Tag()}

	switch e.Tag() {
	case "required":
		return RequiredField(label).WithDetails(details)
	case "min":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at least %s", label, e.Param()), http.StatusBadRequest).WithDetails(details)
	case "max":
		return New(CodeInvalidInput, fmt.Sprintf("%s must be at most %s", label, e.Param()), http.StatusBadRequest).WithDetails(details)
	default:
		return InvalidField(label).WithDetails(details)
	}
}
