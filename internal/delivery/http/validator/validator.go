// Package validator plugs go-playground/validator into echo.
package validator

import (
	"reflect"
	"strings"

	"safewallet/internal/domain/entity"
	"safewallet/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator reporting fields by their JSON names
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// wallet_item_type accepts the known card kinds, case-insensitively
	_ = v.RegisterValidation("wallet_item_type", func(fl validator.FieldLevel) bool {
		value := strings.ToLower(strings.TrimSpace(fl.Field().String()))

		return entity.WalletItemType(value).IsValid()
	})

	return &CustomValidator{validate: v}
}

// Validate validates a request struct
func (cv *CustomValidator) Validate(i any) error {
	return cv.validate.Struct(i)
}

// Describe flattens validation errors into "field: tag" pairs for the response details
func Describe(err error) string {
	validationErrs, ok := errors.AsType[validator.ValidationErrors](err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		part := fieldErr.Field() + ": " + fieldErr.Tag()
		if fieldErr.Param() != "" {
			part += "=" + fieldErr.Param()
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, "; ")
}
