// Package validate is the request validation gate. Schemas are declarative
// struct tags on per-endpoint request types; a failed check reports every
// violated rule, not just the first one.
package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobboard/internal/apperr"
)

var schema = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields under their wire names rather than Go identifiers.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check validates a request section against its schema. It returns a
// 400 validation error carrying one ordered message per violated rule,
// or nil when the section is valid. The payload is never transformed.
func Check(section any) *apperr.Error {
	err := schema.Struct(section)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.Internal(err)
	}
	msgs := make([]string, 0, len(violations))
	for _, fe := range violations {
		msgs = append(msgs, messageFor(fe))
	}
	return apperr.Validation(msgs)
}

func messageFor(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters long", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date in format %s", field, fe.Param())
	case "e164":
		return field + " must be a phone number in international format"
	case "hexadecimal":
		return field + " must be a hexadecimal string"
	case "numeric":
		return field + " must be numeric"
	default:
		return field + " is invalid"
	}
}
