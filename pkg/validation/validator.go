// Package validation checks the evaluation configuration before any
// topology is built: struct-tag validation via go-playground/validator
// plus a fluent validator for cross-field rules.
package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is a singleton validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Struct validates a struct's `validate` tags and returns readable errors.
func Struct(v any) error {
	if v == nil {
		return errors.New("value cannot be nil")
	}
	if err := validate.Struct(v); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError converts validator errors into field-prefixed messages.
func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s: required field is missing", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s: value %v is below minimum %s", fe.Field(), fe.Value(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s: value %v exceeds maximum %s", fe.Field(), fe.Value(), fe.Param()))
		case "gt":
			msgs = append(msgs, fmt.Sprintf("%s: value %v must be greater than %s", fe.Field(), fe.Value(), fe.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", fe.Field(), fe.Tag()))
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}
