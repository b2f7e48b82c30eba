// Package dto provides request and response bodies for the share link endpoints.
package dto

import (
	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
	customValidation "github.com/allisson/sharelink/internal/validation"
)

const maxDocumentIDs = 100

// PermissionsRequest selects the customer field groups a link exposes.
type PermissionsRequest struct {
	PersonalData  bool `json:"personal_data"`
	Address       bool `json:"address"`
	FinancialData bool `json:"financial_data"`
	Documents     bool `json:"documents"`
	Notes         bool `json:"notes"`
}

// CreateShareLinkRequest is the body of POST /v1/share-links.
type CreateShareLinkRequest struct {
	CustomerID     string             `json:"customer_id"`
	ExpiresInHours int                `json:"expires_in_hours"`
	MaxAccess      *int64             `json:"max_access"`
	Permissions    PermissionsRequest `json:"permissions"`
	DocumentIDs    []string           `json:"document_ids"`
}

// Validate checks the request shape. Lifetime limits are enforced again by the use case.
func (r *CreateShareLinkRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CustomerID, validation.Required, customValidation.UUIDString),
		validation.Field(&r.ExpiresInHours, validation.Required, validation.Min(1)),
		validation.Field(&r.MaxAccess, validation.Min(int64(1))),
		validation.Field(&r.DocumentIDs,
			validation.Length(0, maxDocumentIDs),
			customValidation.UUIDStrings,
		),
	)
}

// ToDomain converts a validated request into use case input.
func (r *CreateShareLinkRequest) ToDomain(requesterID uuid.UUID) *shareLinkDomain.CreateShareLinkInput {
	return &shareLinkDomain.CreateShareLinkInput{
		CustomerID:     uuid.MustParse(r.CustomerID),
		RequesterID:    requesterID,
		ExpiresInHours: r.ExpiresInHours,
		MaxAccess:      r.MaxAccess,
		Permissions: shareLinkDomain.Permissions{
			PersonalData:  r.Permissions.PersonalData,
			Address:       r.Permissions.Address,
			FinancialData: r.Permissions.FinancialData,
			Documents:     r.Permissions.Documents,
			Notes:         r.Permissions.Notes,
		},
		DocumentIDs: parseUUIDs(r.DocumentIDs),
	}
}

// MintURLsRequest is the body of POST /v1/public/share-links/:id/documents/urls.
type MintURLsRequest struct {
	DocumentIDs []string `json:"document_ids"`
}

// Validate requires between one and a hundred document ids.
func (r *MintURLsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DocumentIDs,
			validation.Required,
			validation.Length(1, maxDocumentIDs),
			customValidation.UUIDStrings,
		),
	)
}

// ParsedDocumentIDs returns the validated document ids.
func (r *MintURLsRequest) ParsedDocumentIDs() []uuid.UUID {
	return parseUUIDs(r.DocumentIDs)
}

func parseUUIDs(values []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		ids = append(ids, uuid.MustParse(v))
	}
	return ids
}
