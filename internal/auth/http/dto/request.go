// Package dto provides request and response bodies for the auth endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/allisson/sharelink/internal/validation"
)

// IssueTokenRequest carries operator credentials.
type IssueTokenRequest struct {
	OperatorID string `json:"operator_id"`
	Secret     string `json:"secret"`
}

// Validate checks the operator id is a UUID and the secret is present.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.OperatorID, validation.Required, customValidation.UUIDString),
		validation.Field(&r.Secret, validation.Required, customValidation.NotBlank),
	)
}
