package api

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrors converts a gin binding error into FieldErrors.
// Returns false if the error is not a field-level validation error
// (e.g. malformed JSON), in which case the caller should respond with a
// generic ErrorResponse instead.
func ValidationErrors(err error) (FieldErrors, bool) {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil, false
	}

	fe := make(FieldErrors, len(ve))
	for _, f := range ve {
		field := strings.ToLower(f.Field())
		fe[field] = append(fe[field], fieldErrorMessage(field, f))
	}
	return fe, true
}

// fieldErrorMessage converts a single validation error into a human-readable message.
func fieldErrorMessage(field string, f validator.FieldError) string {
	switch f.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s must not be greater than %s characters.", field, f.Param())
	case "min":
		return fmt.Sprintf("The %s must be at least %s characters.", field, f.Param())
	default:
		return fmt.Sprintf("The %s is invalid.", field)
	}
}
