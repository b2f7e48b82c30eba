// Package usecase defines the interfaces and implementations for share link use cases.
// Use cases orchestrate the link repository, the customer registry and blob storage to issue,
// resolve, consume and revoke capability links.
package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

// LinkRepository defines the interface for ShareLink persistence operations.
type LinkRepository interface {
	Create(ctx context.Context, link *shareLinkDomain.ShareLink) error
	CreateDocuments(ctx context.Context, linkID string, documents []shareLinkDomain.DocumentSnapshot) error
	// Get returns the link with its document snapshot.
	Get(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error)
	// IncrementAccess atomically increments the access counter only when the link is active,
	// not expired at now and below its quota. It reports whether the increment applied.
	IncrementAccess(ctx context.Context, id string, now time.Time) (bool, error)
	Deactivate(ctx context.Context, id string) error
	ListByCustomer(
		ctx context.Context,
		customerID uuid.UUID,
		offset, limit int,
	) ([]*shareLinkDomain.ShareLink, error)
}

// CustomerRegistry is the read-only view of the customer records owned by the CRM.
type CustomerRegistry interface {
	FindByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error)
}

// BlobStorage mints time-limited URLs for stored objects.
type BlobStorage interface {
	CreateSignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error)
	// CreateSignedURLs signs every path independently. A failure for one path never
	// prevents the others from being signed.
	CreateSignedURLs(
		ctx context.Context,
		objectPaths []string,
		ttl time.Duration,
	) (map[string]string, map[string]error)
}

// ShareLinkUseCase defines the business logic for capability share links.
type ShareLinkUseCase interface {
	Create(ctx context.Context, input *shareLinkDomain.CreateShareLinkInput) (*shareLinkDomain.ShareLink, error)
	// Resolve checks that the link exists and is usable right now without consuming quota.
	Resolve(ctx context.Context, id string) (*shareLinkDomain.ShareLink, time.Duration, error)
	View(ctx context.Context, id string) (*shareLinkDomain.RecipientView, error)
	// RecordAccess consumes one unit of quota.
	RecordAccess(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error)
	MintURLs(
		ctx context.Context,
		id string,
		documentIDs []uuid.UUID,
	) ([]shareLinkDomain.DocumentURLResult, error)
	MintAll(ctx context.Context, id string) ([]shareLinkDomain.DocumentURLResult, error)
	Deactivate(ctx context.Context, id string, requesterID uuid.UUID) error
	ListByCustomer(
		ctx context.Context,
		customerID uuid.UUID,
		offset, limit int,
	) ([]*shareLinkDomain.ShareLink, error)
}
