package model

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError reports a request DTO that failed field validation.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validate checks a request DTO against its validate tags and returns a
// *ValidationError describing the first failing field.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())

	var msg string
	switch fe.Tag() {
	case "required":
		msg = fmt.Sprintf("%s is required", field)
	case "email":
		msg = fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		msg = fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		msg = fmt.Sprintf("%s is invalid", field)
	}

	return &ValidationError{Message: msg}
}
