package domain

import (
	"time"

	"github.com/google/uuid"
)

// Token is a hashed bearer token issued to an operator.
type Token struct {
	ID         uuid.UUID
	TokenHash  string
	OperatorID uuid.UUID
	ExpiresAt  time.Time
	RevokedAt  *time.Time
	CreatedAt  time.Time
}

// IsExpired reports whether the token is past its expiration time.
func (t *Token) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// IsRevoked reports whether the token has been revoked.
func (t *Token) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IssueTokenInput holds operator credentials exchanged for a bearer token.
type IssueTokenInput struct {
	OperatorID uuid.UUID
	Secret     string
}

// IssueTokenOutput carries the plain bearer token. Only its hash is persisted.
type IssueTokenOutput struct {
	PlainToken string
	ExpiresAt  time.Time
}
