package views

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mentorhub/mentorhub-client/pkg/errors"
)

var validate = validator.New()

// FieldError represents a single validation error
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ParseValidationErrors converts validator errors to user-friendly format
func ParseValidationErrors(err error) []FieldError {
	var fieldErrors []FieldError

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, fieldError := range validationErrors {
			fieldErrors = append(fieldErrors, FieldError{
				Field:   fieldError.Field(),
				Message: getErrorMessage(fieldError),
			})
		}
	}

	return fieldErrors
}

func getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return fe.Field() + " must be at least " + fe.Param()
	case "max":
		return fe.Field() + " must not exceed " + fe.Param()
	case "oneof":
		return fe.Field() + " must be one of: " + fe.Param()
	default:
		return fe.Field() + " is invalid"
	}
}

// validateForm runs struct validation and folds the failures into a single
// user-facing validation error, or nil when the form is valid.
func validateForm(form any) error {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	fieldErrors := ParseValidationErrors(err)
	if len(fieldErrors) == 0 {
		return errors.ValidationError("form", "invalid input")
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fe.Message)
	}
	return errors.ValidationError("form", strings.Join(messages, "; "))
}
