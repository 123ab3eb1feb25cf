// Package validation checks request structs with go-playground/validator and
// reports failures as apperror.ValidationError.
package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/artesyoficios/studio/internal/apperror"
)

// MsgMissingFields is the message of validation errors raised for required fields.
const MsgMissingFields = "missing required fields"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their json names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0] //nolint:mnd
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	return v
}

// Struct validates data. A failing struct yields a *apperror.ValidationError
// naming every failing field in declaration order.
func Struct(data interface{}) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err //nolint:wrapcheck
	}

	fields := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		fields = append(fields, ve.Field())
	}

	return apperror.Validation(MsgMissingFields, fields...)
}
