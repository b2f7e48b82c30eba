package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	authService "github.com/allisson/sharelink/internal/auth/service"
)

type tokenUseCase struct {
	operatorRepo    OperatorRepository
	tokenRepo       TokenRepository
	secretService   authService.SecretService
	tokenService    authService.TokenService
	tokenExpiration time.Duration
	now             func() time.Time
}

func (t *tokenUseCase) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	operator, err := t.operatorRepo.Get(ctx, input.OperatorID)
	if err != nil {
		if errors.Is(err, authDomain.ErrOperatorNotFound) {
			return nil, authDomain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !t.secretService.CompareSecret(input.Secret, operator.Secret) {
		return nil, authDomain.ErrInvalidCredentials
	}

	// Checked after the secret so inactive accounts are not revealed to guessers.
	if !operator.IsActive {
		return nil, authDomain.ErrOperatorInactive
	}

	plainToken, tokenHash, err := t.tokenService.GenerateToken()
	if err != nil {
		return nil, err
	}

	now := t.now().UTC()
	token := &authDomain.Token{
		ID:         uuid.Must(uuid.NewV7()),
		TokenHash:  tokenHash,
		OperatorID: operator.ID,
		ExpiresAt:  now.Add(t.tokenExpiration),
		CreatedAt:  now,
	}
	if err := t.tokenRepo.Create(ctx, token); err != nil {
		return nil, err
	}

	return &authDomain.IssueTokenOutput{
		PlainToken: plainToken,
		ExpiresAt:  token.ExpiresAt,
	}, nil
}

func (t *tokenUseCase) Authenticate(ctx context.Context, tokenHash string) (*authDomain.Operator, error) {
	token, err := t.tokenRepo.GetByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, authDomain.ErrTokenNotFound) {
			return nil, authDomain.ErrInvalidToken
		}
		return nil, err
	}

	if token.IsExpired(t.now().UTC()) || token.IsRevoked() {
		return nil, authDomain.ErrInvalidToken
	}

	operator, err := t.operatorRepo.Get(ctx, token.OperatorID)
	if err != nil {
		if errors.Is(err, authDomain.ErrOperatorNotFound) {
			return nil, authDomain.ErrInvalidToken
		}
		return nil, err
	}

	if !operator.IsActive {
		return nil, authDomain.ErrOperatorInactive
	}

	return operator, nil
}

func (t *tokenUseCase) PurgeExpired(ctx context.Context, olderThan time.Duration, dryRun bool) (int64, error) {
	if olderThan < 0 {
		return 0, authDomain.ErrInvalidRetention
	}

	cutoff := t.now().UTC().Add(-olderThan)
	if dryRun {
		return t.tokenRepo.CountExpired(ctx, cutoff)
	}
	return t.tokenRepo.DeleteExpired(ctx, cutoff)
}

// NewTokenUseCase creates a TokenUseCase issuing tokens valid for tokenExpiration.
func NewTokenUseCase(
	operatorRepo OperatorRepository,
	tokenRepo TokenRepository,
	secretService authService.SecretService,
	tokenService authService.TokenService,
	tokenExpiration time.Duration,
) TokenUseCase {
	return &tokenUseCase{
		operatorRepo:    operatorRepo,
		tokenRepo:       tokenRepo,
		secretService:   secretService,
		tokenService:    tokenService,
		tokenExpiration: tokenExpiration,
		now:             time.Now,
	}
}
