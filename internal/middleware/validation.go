package middleware

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/okanc/campusspace/internal/app/models/dto"
)

// ValidationErrorDetail turns a binding error into an ErrorDetail. Field
// validation failures get per-field messages; anything else (malformed
// JSON, type mismatches) keeps the raw error text.
func ValidationErrorDetail(err error, message string) *dto.ErrorDetail {
	errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldError := range validationErrors {
			messages = append(messages, formatValidationError(fieldError))
		}
		return errorDetail.WithDetails(messages)
	}

	return errorDetail.WithDetails(err.Error())
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "oneof":
		return e.Field() + " must be one of: " + e.Param()
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
