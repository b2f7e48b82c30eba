// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

// WrapValidationError turns a validation failure into an ErrInvalidInput so handlers map it to 400.
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)

// UUIDString validates that a string is a canonical UUID. Empty strings are left to Required.
var UUIDString = validation.NewStringRuleWithError(
	func(s string) bool {
		_, err := uuid.Parse(s)
		return err == nil
	},
	validation.NewError("validation_uuid", "must be a valid UUID"),
)

// UUIDStrings validates every element of a string slice with UUIDString.
var UUIDStrings = validation.By(func(value interface{}) error {
	values, ok := value.([]string)
	if !ok {
		return validation.NewError("validation_uuid_list_type", "must be a list of strings")
	}
	for _, v := range values {
		if err := UUIDString.Validate(v); err != nil {
			return validation.NewError("validation_uuid_list", "must contain only valid UUIDs")
		}
	}
	return nil
})
