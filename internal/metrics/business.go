package metrics

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	apperrors "github.com/allisson/sharelink/internal/errors"
)

// Outcome labels. Recipient traffic is dominated by expected refusals (revoked, expired or
// exhausted links), so they are counted apart from genuine failures.
const (
	OutcomeSuccess       = "success"
	OutcomeNotFound      = "not_found"
	OutcomeGone          = "gone"
	OutcomeQuotaExceeded = "quota_exceeded"
	OutcomeForbidden     = "forbidden"
	OutcomeInvalidInput  = "invalid_input"
	OutcomeUnauthorized  = "unauthorized"
	OutcomeError         = "error"
)

// Outcome classifies err into one of the outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case apperrors.Is(err, apperrors.ErrNotFound):
		return OutcomeNotFound
	case apperrors.Is(err, apperrors.ErrGone):
		return OutcomeGone
	case apperrors.Is(err, apperrors.ErrQuotaExceeded):
		return OutcomeQuotaExceeded
	case apperrors.Is(err, apperrors.ErrForbidden):
		return OutcomeForbidden
	case apperrors.Is(err, apperrors.ErrInvalidInput):
		return OutcomeInvalidInput
	case apperrors.Is(err, apperrors.ErrUnauthorized):
		return OutcomeUnauthorized
	default:
		return OutcomeError
	}
}

// BusinessMetrics records use case level metrics.
type BusinessMetrics interface {
	// RecordOperation counts one operation. domain is "auth" or "sharelink", outcome one of
	// the Outcome* labels.
	RecordOperation(ctx context.Context, domain, operation, outcome string)

	// RecordDuration observes how long an operation took, in seconds.
	RecordDuration(ctx context.Context, domain, operation string, duration time.Duration, outcome string)

	// RecordSignedURLs counts per-document results of a minting request.
	RecordSignedURLs(ctx context.Context, signed, failed int)
}

type businessMetrics struct {
	operationCounter metric.Int64Counter
	durationHisto    metric.Float64Histogram
	signedURLCounter metric.Int64Counter
}

// NewBusinessMetrics creates the OpenTelemetry instruments, prefixed with namespace.
func NewBusinessMetrics(meterProvider metric.MeterProvider, namespace string) (BusinessMetrics, error) {
	meter := meterProvider.Meter(namespace)

	operationCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_operations_total", namespace),
		metric.WithDescription("Total number of business operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create operation counter: %w", err)
	}

	durationHisto, err := meter.Float64Histogram(
		fmt.Sprintf("%s_operation_duration_seconds", namespace),
		metric.WithDescription("Duration of business operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create duration histogram: %w", err)
	}

	signedURLCounter, err := meter.Int64Counter(
		fmt.Sprintf("%s_signed_urls_total", namespace),
		metric.WithDescription("Signed document URLs requested from blob storage"),
		metric.WithUnit("{url}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create signed url counter: %w", err)
	}

	return &businessMetrics{
		operationCounter: operationCounter,
		durationHisto:    durationHisto,
		signedURLCounter: signedURLCounter,
	}, nil
}

func operationAttributes(domain, operation, outcome string) metric.MeasurementOption {
	return metric.WithAttributes(
		attribute.String("domain", domain),
		attribute.String("operation", operation),
		attribute.String("outcome", outcome),
	)
}

func (b *businessMetrics) RecordOperation(ctx context.Context, domain, operation, outcome string) {
	b.operationCounter.Add(ctx, 1, operationAttributes(domain, operation, outcome))
}

func (b *businessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	outcome string,
) {
	b.durationHisto.Record(ctx, duration.Seconds(), operationAttributes(domain, operation, outcome))
}

func (b *businessMetrics) RecordSignedURLs(ctx context.Context, signed, failed int) {
	if signed > 0 {
		b.signedURLCounter.Add(ctx, int64(signed), metric.WithAttributes(attribute.String("result", "signed")))
	}
	if failed > 0 {
		b.signedURLCounter.Add(ctx, int64(failed), metric.WithAttributes(attribute.String("result", "failed")))
	}
}

// NoOpBusinessMetrics discards everything. Used when metrics are disabled.
type NoOpBusinessMetrics struct{}

// NewNoOpBusinessMetrics creates a no-op BusinessMetrics implementation.
func NewNoOpBusinessMetrics() BusinessMetrics {
	return &NoOpBusinessMetrics{}
}

func (n *NoOpBusinessMetrics) RecordOperation(context.Context, string, string, string) {}

func (n *NoOpBusinessMetrics) RecordDuration(context.Context, string, string, time.Duration, string) {
}

func (n *NoOpBusinessMetrics) RecordSignedURLs(context.Context, int, int) {}
