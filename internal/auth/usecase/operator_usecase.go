package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	authService "github.com/allisson/sharelink/internal/auth/service"
	apperrors "github.com/allisson/sharelink/internal/errors"
)

type operatorUseCase struct {
	operatorRepo  OperatorRepository
	secretService authService.SecretService
}

func (o *operatorUseCase) Create(
	ctx context.Context,
	input *authDomain.CreateOperatorInput,
) (*authDomain.CreateOperatorOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "operator name is required")
	}

	plainSecret, hashedSecret, err := o.secretService.GenerateSecret()
	if err != nil {
		return nil, err
	}

	operator := &authDomain.Operator{
		ID:        uuid.Must(uuid.NewV7()),
		Secret:    hashedSecret,
		Name:      name,
		IsActive:  input.IsActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := o.operatorRepo.Create(ctx, operator); err != nil {
		return nil, err
	}

	return &authDomain.CreateOperatorOutput{
		ID:          operator.ID,
		PlainSecret: plainSecret,
	}, nil
}

func (o *operatorUseCase) Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error) {
	return o.operatorRepo.Get(ctx, operatorID)
}

// NewOperatorUseCase creates an OperatorUseCase.
func NewOperatorUseCase(
	operatorRepo OperatorRepository,
	secretService authService.SecretService,
) OperatorUseCase {
	return &operatorUseCase{
		operatorRepo:  operatorRepo,
		secretService: secretService,
	}
}
