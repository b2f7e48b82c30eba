package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sharelink/internal/metrics"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

const metricsDomain = "sharelink"

// shareLinkUseCaseWithMetrics decorates ShareLinkUseCase with metrics instrumentation.
type shareLinkUseCaseWithMetrics struct {
	next    ShareLinkUseCase
	metrics metrics.BusinessMetrics
}

// NewShareLinkUseCaseWithMetrics wraps a ShareLinkUseCase with metrics recording.
func NewShareLinkUseCaseWithMetrics(useCase ShareLinkUseCase, m metrics.BusinessMetrics) ShareLinkUseCase {
	return &shareLinkUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (s *shareLinkUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	outcome := metrics.Outcome(err)
	s.metrics.RecordOperation(ctx, metricsDomain, operation, outcome)
	s.metrics.RecordDuration(ctx, metricsDomain, operation, time.Since(start), outcome)
}

func (s *shareLinkUseCaseWithMetrics) recordMinted(ctx context.Context, results []shareLinkDomain.DocumentURLResult) {
	if len(results) == 0 {
		return
	}
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	s.metrics.RecordSignedURLs(ctx, len(results)-failed, failed)
}

// Create records metrics for share link creation.
func (s *shareLinkUseCaseWithMetrics) Create(
	ctx context.Context,
	input *shareLinkDomain.CreateShareLinkInput,
) (*shareLinkDomain.ShareLink, error) {
	start := time.Now()
	link, err := s.next.Create(ctx, input)
	s.record(ctx, "share_link_create", start, err)
	return link, err
}

// Resolve records metrics for share link resolution.
func (s *shareLinkUseCaseWithMetrics) Resolve(
	ctx context.Context,
	id string,
) (*shareLinkDomain.ShareLink, time.Duration, error) {
	start := time.Now()
	link, remaining, err := s.next.Resolve(ctx, id)
	s.record(ctx, "share_link_resolve", start, err)
	return link, remaining, err
}

// View records metrics for recipient views.
func (s *shareLinkUseCaseWithMetrics) View(
	ctx context.Context,
	id string,
) (*shareLinkDomain.RecipientView, error) {
	start := time.Now()
	view, err := s.next.View(ctx, id)
	s.record(ctx, "share_link_view", start, err)
	return view, err
}

// RecordAccess records metrics for quota consumption.
func (s *shareLinkUseCaseWithMetrics) RecordAccess(
	ctx context.Context,
	id string,
) (*shareLinkDomain.ShareLink, error) {
	start := time.Now()
	link, err := s.next.RecordAccess(ctx, id)
	s.record(ctx, "share_link_access", start, err)
	return link, err
}

// MintURLs records metrics for signed URL minting over a document subset.
func (s *shareLinkUseCaseWithMetrics) MintURLs(
	ctx context.Context,
	id string,
	documentIDs []uuid.UUID,
) ([]shareLinkDomain.DocumentURLResult, error) {
	start := time.Now()
	results, err := s.next.MintURLs(ctx, id, documentIDs)
	s.record(ctx, "share_link_mint_urls", start, err)
	s.recordMinted(ctx, results)
	return results, err
}

// MintAll records metrics for signed URL minting over the whole snapshot.
func (s *shareLinkUseCaseWithMetrics) MintAll(
	ctx context.Context,
	id string,
) ([]shareLinkDomain.DocumentURLResult, error) {
	start := time.Now()
	results, err := s.next.MintAll(ctx, id)
	s.record(ctx, "share_link_mint_all", start, err)
	s.recordMinted(ctx, results)
	return results, err
}

// Deactivate records metrics for share link revocation.
func (s *shareLinkUseCaseWithMetrics) Deactivate(ctx context.Context, id string, requesterID uuid.UUID) error {
	start := time.Now()
	err := s.next.Deactivate(ctx, id, requesterID)
	s.record(ctx, "share_link_deactivate", start, err)
	return err
}

// ListByCustomer records metrics for share link listing.
func (s *shareLinkUseCaseWithMetrics) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	start := time.Now()
	links, err := s.next.ListByCustomer(ctx, customerID, offset, limit)
	s.record(ctx, "share_link_list", start, err)
	return links, err
}
