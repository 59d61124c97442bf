package http

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface. Field constraint violations are aggregated into a single
// comma-joined message combining field name and reason.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates a validator that reports fields by their JSON
// names.
func NewRequestValidator() *RequestValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: validate}
}

// Validate checks the struct's constraint tags and returns a single error
// carrying the aggregated violation message.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return err
	}

	parts := make([]string, 0, len(violations))
	for _, violation := range violations {
		parts = append(parts, violation.Field()+": "+reasonFor(violation))
	}
	return errors.New(strings.Join(parts, ", "))
}

func reasonFor(violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return fmt.Sprintf("must contain at least %s item(s)", violation.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", violation.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", violation.Param())
	case "email":
		return "must be a valid email address"
	case "gte":
		return fmt.Sprintf("must be at least %s", violation.Param())
	default:
		return "is invalid"
	}
}
