package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "safety-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// NewValidator creates a validator that reports fields by their JSON names
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validationError turns the first failed rule into a ValidationError
func validationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) || len(fieldErrors) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	fe := fieldErrors[0]
	var message string
	switch fe.Tag() {
	case "required":
		message = "is required"
	case "datetime":
		message = fmt.Sprintf("must be a date formatted as %s", fe.Param())
	case "min":
		message = fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		message = fmt.Sprintf("must be at most %s", fe.Param())
	case "gtefield":
		message = fmt.Sprintf("must not be less than %s", fe.Param())
	default:
		message = fmt.Sprintf("failed the %s rule", fe.Tag())
	}
	return apperrors.NewValidationError(fe.Field(), message)
}
