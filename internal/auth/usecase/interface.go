// Package usecase orchestrates operator authentication.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
)

// OperatorRepository persists operators.
type OperatorRepository interface {
	Create(ctx context.Context, operator *authDomain.Operator) error

	// Get returns ErrOperatorNotFound when no operator has the given id.
	Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error)
}

// TokenRepository persists hashed bearer tokens.
type TokenRepository interface {
	Create(ctx context.Context, token *authDomain.Token) error

	// GetByTokenHash returns ErrTokenNotFound when no token has the given hash.
	GetByTokenHash(ctx context.Context, tokenHash string) (*authDomain.Token, error)

	// DeleteExpired removes tokens whose expiry is before the cutoff and returns how many went.
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)

	CountExpired(ctx context.Context, before time.Time) (int64, error)
}

// OperatorUseCase manages operator accounts.
type OperatorUseCase interface {
	// Create generates a secret for a new operator. The plain secret is returned once.
	Create(ctx context.Context, input *authDomain.CreateOperatorInput) (*authDomain.CreateOperatorOutput, error)

	Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error)
}

// TokenUseCase issues and validates operator bearer tokens.
type TokenUseCase interface {
	// Issue exchanges operator credentials for a bearer token. Unknown operators and wrong
	// secrets both yield ErrInvalidCredentials.
	Issue(ctx context.Context, input *authDomain.IssueTokenInput) (*authDomain.IssueTokenOutput, error)

	// Authenticate resolves the operator owning tokenHash. Unknown, expired and revoked
	// tokens all yield ErrInvalidToken.
	Authenticate(ctx context.Context, tokenHash string) (*authDomain.Operator, error)

	// PurgeExpired deletes tokens that expired more than olderThan ago. With dryRun it only
	// counts them.
	PurgeExpired(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error)
}
