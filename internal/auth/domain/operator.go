// Package domain defines operator authentication models.
//
// Operators are the back-office users who create and revoke share links. They authenticate
// with a client secret and receive short-lived bearer tokens.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Operator represents a back-office account allowed to manage share links.
type Operator struct {
	ID        uuid.UUID // Unique identifier (UUIDv7)
	Secret    string    //nolint:gosec // hashed operator secret (not plaintext)
	Name      string
	IsActive  bool
	CreatedAt time.Time
}

// CreateOperatorInput contains the parameters for creating an operator.
// The secret is generated by the service and cannot be chosen by the caller.
type CreateOperatorInput struct {
	Name     string
	IsActive bool
}

// CreateOperatorOutput contains the result of creating an operator.
// PlainSecret is only returned once and is never retrievable again.
type CreateOperatorOutput struct {
	ID          uuid.UUID
	PlainSecret string
}
