package domain

import (
	"github.com/allisson/sharelink/internal/errors"
)

// Authentication errors.
var (
	// ErrOperatorNotFound indicates an operator with the specified ID was not found.
	ErrOperatorNotFound = errors.Wrap(errors.ErrNotFound, "operator not found")

	// ErrTokenNotFound indicates no token matches the given hash.
	ErrTokenNotFound = errors.Wrap(errors.ErrNotFound, "token not found")

	// ErrInvalidCredentials indicates the operator id or secret did not match.
	ErrInvalidCredentials = errors.Wrap(errors.ErrUnauthorized, "invalid credentials")

	// ErrOperatorInactive indicates the operator account is disabled.
	ErrOperatorInactive = errors.Wrap(errors.ErrForbidden, "operator is inactive")

	// ErrInvalidToken indicates the bearer token is unknown, expired or revoked.
	ErrInvalidToken = errors.Wrap(errors.ErrUnauthorized, "invalid or expired token")

	ErrInvalidRetention = errors.Wrap(errors.ErrInvalidInput, "retention must not be negative")
)
