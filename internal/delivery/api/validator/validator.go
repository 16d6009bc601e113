// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"hazardmap/internal/domain/service"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// TagPasswordBytes limits a string field to service.MaxPasswordBytes bytes.
const TagPasswordBytes = "password_bytes"

// CustomValidator validates request structs through struct tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New returns a validator with required-struct checking enabled and the
// password_bytes tag registered.
func New() *CustomValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.RegisterValidation(TagPasswordBytes, passwordBytes); err != nil {
		panic(err)
	}

	return &CustomValidator{
		validate: validate,
	}
}

// passwordBytes counts bytes, not runes: "max=72" would let 30 kana through.
func passwordBytes(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= service.MaxPasswordBytes
}

// Validate implements echo.Validator.
func (cv *CustomValidator) Validate(i any) error {
	// validator.ValidationErrors is returned unwrapped so callers can list the fields.
	if err := cv.validate.Struct(i); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return fieldErrs
		}

		return errors.WithStack(err)
	}

	return nil
}
