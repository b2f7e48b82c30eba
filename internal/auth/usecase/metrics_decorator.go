package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	"github.com/allisson/sharelink/internal/metrics"
)

const metricsDomain = "auth"

func recordMetrics(ctx context.Context, m metrics.BusinessMetrics, operation string, start time.Time, err error) {
	outcome := metrics.Outcome(err)
	m.RecordOperation(ctx, metricsDomain, operation, outcome)
	m.RecordDuration(ctx, metricsDomain, operation, time.Since(start), outcome)
}

// operatorUseCaseWithMetrics decorates OperatorUseCase with metrics instrumentation.
type operatorUseCaseWithMetrics struct {
	next    OperatorUseCase
	metrics metrics.BusinessMetrics
}

// NewOperatorUseCaseWithMetrics wraps an OperatorUseCase with metrics recording.
func NewOperatorUseCaseWithMetrics(useCase OperatorUseCase, m metrics.BusinessMetrics) OperatorUseCase {
	return &operatorUseCaseWithMetrics{next: useCase, metrics: m}
}

func (o *operatorUseCaseWithMetrics) Create(
	ctx context.Context,
	input *authDomain.CreateOperatorInput,
) (*authDomain.CreateOperatorOutput, error) {
	start := time.Now()
	output, err := o.next.Create(ctx, input)
	recordMetrics(ctx, o.metrics, "operator_create", start, err)
	return output, err
}

func (o *operatorUseCaseWithMetrics) Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error) {
	start := time.Now()
	operator, err := o.next.Get(ctx, operatorID)
	recordMetrics(ctx, o.metrics, "operator_get", start, err)
	return operator, err
}

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{next: useCase, metrics: m}
}

func (t *tokenUseCaseWithMetrics) Issue(
	ctx context.Context,
	input *authDomain.IssueTokenInput,
) (*authDomain.IssueTokenOutput, error) {
	start := time.Now()
	output, err := t.next.Issue(ctx, input)
	recordMetrics(ctx, t.metrics, "token_issue", start, err)
	return output, err
}

func (t *tokenUseCaseWithMetrics) Authenticate(ctx context.Context, tokenHash string) (*authDomain.Operator, error) {
	start := time.Now()
	operator, err := t.next.Authenticate(ctx, tokenHash)
	recordMetrics(ctx, t.metrics, "token_authenticate", start, err)
	return operator, err
}

func (t *tokenUseCaseWithMetrics) PurgeExpired(
	ctx context.Context,
	olderThan time.Duration,
	dryRun bool,
) (int64, error) {
	start := time.Now()
	count, err := t.next.PurgeExpired(ctx, olderThan, dryRun)
	recordMetrics(ctx, t.metrics, "token_purge", start, err)
	return count, err
}
