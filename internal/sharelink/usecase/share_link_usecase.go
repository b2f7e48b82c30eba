package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sharelink/internal/database"
	apperrors "github.com/allisson/sharelink/internal/errors"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
	shareLinkService "github.com/allisson/sharelink/internal/sharelink/service"
)

// shareLinkUseCase implements the ShareLinkUseCase interface.
type shareLinkUseCase struct {
	txManager    database.TxManager
	linkRepo     LinkRepository
	customerRepo CustomerRegistry
	blobStorage  BlobStorage
	idGenerator  shareLinkService.IDGenerator
	projector    shareLinkService.FieldProjector
	ttlPolicy    shareLinkService.TTLPolicy
	maxExpiresIn time.Duration
	now          func() time.Time
}

// Create issues a new share link for a customer.
//
// The document snapshot keeps only the requested IDs that belong to the customer, in the
// customer's document order. Unknown IDs are dropped without error. The link and its snapshot
// are persisted in a single transaction.
func (s *shareLinkUseCase) Create(
	ctx context.Context,
	input *shareLinkDomain.CreateShareLinkInput,
) (*shareLinkDomain.ShareLink, error) {
	if input.ExpiresInHours <= 0 {
		return nil, shareLinkDomain.ErrInvalidExpiresIn
	}
	expiresIn := time.Duration(input.ExpiresInHours) * time.Hour
	if s.maxExpiresIn > 0 && expiresIn > s.maxExpiresIn {
		return nil, shareLinkDomain.ErrExpiresInTooLong
	}
	if input.MaxAccess != nil && *input.MaxAccess < 1 {
		return nil, shareLinkDomain.ErrInvalidMaxAccess
	}

	customer, err := s.customerRepo.FindByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}

	requested := make(map[uuid.UUID]struct{}, len(input.DocumentIDs))
	for _, id := range input.DocumentIDs {
		requested[id] = struct{}{}
	}
	snapshot := make([]shareLinkDomain.DocumentSnapshot, 0, len(requested))
	for _, doc := range customer.Documents {
		if _, ok := requested[doc.ID]; !ok {
			continue
		}
		snapshot = append(snapshot, shareLinkDomain.DocumentSnapshot{
			ID:          doc.ID,
			FileName:    doc.FileName,
			Category:    doc.Category,
			StoragePath: doc.StoragePath,
		})
	}

	id, err := s.idGenerator.Generate()
	if err != nil {
		return nil, err
	}

	var maxAccess *int64
	if input.MaxAccess != nil {
		value := *input.MaxAccess
		maxAccess = &value
	}

	now := s.now().UTC()
	link := &shareLinkDomain.ShareLink{
		ID:          id,
		CustomerID:  customer.ID,
		CreatedBy:   input.RequesterID,
		CreatedAt:   now,
		ExpiresAt:   now.Add(expiresIn),
		AccessCount: 0,
		MaxAccess:   maxAccess,
		IsActive:    true,
		Permissions: input.Permissions,
		Documents:   snapshot,
	}

	err = s.txManager.WithTx(ctx, func(txCtx context.Context) error {
		if err := s.linkRepo.Create(txCtx, link); err != nil {
			return err
		}
		if len(link.Documents) == 0 {
			return nil
		}
		return s.linkRepo.CreateDocuments(txCtx, link.ID, link.Documents)
	})
	if err != nil {
		return nil, err
	}

	return link, nil
}

// Resolve fetches a link and checks it is usable right now.
func (s *shareLinkUseCase) Resolve(
	ctx context.Context,
	id string,
) (*shareLinkDomain.ShareLink, time.Duration, error) {
	link, err := s.linkRepo.Get(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	now := s.now().UTC()
	if err := link.CheckUsable(now); err != nil {
		return nil, 0, err
	}

	return link, link.Remaining(now), nil
}

// View resolves a link and projects the customer through its permissions.
func (s *shareLinkUseCase) View(ctx context.Context, id string) (*shareLinkDomain.RecipientView, error) {
	link, remaining, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.FindByID(ctx, link.CustomerID)
	if err != nil {
		return nil, err
	}

	return &shareLinkDomain.RecipientView{
		Link:      link,
		Customer:  s.projector.Project(customer, link),
		Remaining: remaining,
	}, nil
}

// RecordAccess consumes one access from the link quota.
//
// The increment is a single conditional update in the repository. When it does not apply the
// link is read again so a concurrent revocation or expiration is reported as gone rather than
// as an exhausted quota.
func (s *shareLinkUseCase) RecordAccess(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	resolved, _, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	applied, err := s.linkRepo.IncrementAccess(ctx, id, now)
	if err != nil {
		return nil, err
	}

	link, err := s.linkRepo.Get(ctx, id)
	if err != nil {
		if !applied {
			return nil, err
		}
		// The access is already counted; the reload only refreshes the view.
		resolved.AccessCount++
		return resolved, nil
	}

	if !applied {
		if err := link.CheckUsable(now); err != nil {
			return nil, err
		}
		return nil, shareLinkDomain.ErrShareLinkQuotaExceeded
	}

	return link, nil
}

// MintURLs signs URLs for the requested documents that are part of the link snapshot.
// Results follow the caller's order with duplicates removed.
func (s *shareLinkUseCase) MintURLs(
	ctx context.Context,
	id string,
	documentIDs []uuid.UUID,
) ([]shareLinkDomain.DocumentURLResult, error) {
	link, remaining, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	seen := make(map[uuid.UUID]struct{}, len(documentIDs))
	documents := make([]shareLinkDomain.DocumentSnapshot, 0, len(documentIDs))
	for _, documentID := range documentIDs {
		if _, dup := seen[documentID]; dup {
			continue
		}
		seen[documentID] = struct{}{}

		doc, found := link.FindDocument(documentID)
		if !found {
			continue
		}
		documents = append(documents, doc)
	}

	return s.mint(ctx, documents, remaining), nil
}

// MintAll signs URLs for the whole document snapshot.
func (s *shareLinkUseCase) MintAll(ctx context.Context, id string) ([]shareLinkDomain.DocumentURLResult, error) {
	link, remaining, err := s.Resolve(ctx, id)
	if err != nil {
		return nil, err
	}

	if !link.Permissions.Documents {
		return nil, shareLinkDomain.ErrDocumentsNotPermitted
	}
	if len(link.Documents) == 0 {
		return nil, shareLinkDomain.ErrNoSharedDocuments
	}

	return s.mint(ctx, link.Documents, remaining), nil
}

// mint requests one signed URL per document and assembles the results in document order.
func (s *shareLinkUseCase) mint(
	ctx context.Context,
	documents []shareLinkDomain.DocumentSnapshot,
	remaining time.Duration,
) []shareLinkDomain.DocumentURLResult {
	results := make([]shareLinkDomain.DocumentURLResult, len(documents))
	if len(documents) == 0 {
		return results
	}

	ttl := s.ttlPolicy.TTL(remaining)
	expiresAt := s.now().UTC().Add(ttl)

	paths := make([]string, 0, len(documents))
	for _, doc := range documents {
		paths = append(paths, doc.StoragePath)
	}

	urls, errs := s.blobStorage.CreateSignedURLs(ctx, paths, ttl)

	for i, doc := range documents {
		results[i].Document = doc
		if url, ok := urls[doc.StoragePath]; ok {
			results[i].URL = url
			results[i].ExpiresAt = expiresAt
			continue
		}
		if err, ok := errs[doc.StoragePath]; ok && err != nil {
			results[i].Err = apperrors.Wrapf(err, "failed to sign url for document %s", doc.ID)
			continue
		}
		results[i].Err = apperrors.Wrapf(
			apperrors.New("no url returned"),
			"failed to sign url for document %s",
			doc.ID,
		)
	}

	return results
}

// Deactivate revokes a link. Only its creator may do so and revoking twice is not an error.
func (s *shareLinkUseCase) Deactivate(ctx context.Context, id string, requesterID uuid.UUID) error {
	link, err := s.linkRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	if link.CreatedBy != requesterID {
		return shareLinkDomain.ErrNotShareLinkCreator
	}

	if !link.IsActive {
		return nil
	}

	return s.linkRepo.Deactivate(ctx, id)
}

// ListByCustomer returns the links issued for a customer, newest first.
func (s *shareLinkUseCase) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	return s.linkRepo.ListByCustomer(ctx, customerID, offset, limit)
}

// NewShareLinkUseCase creates a new ShareLinkUseCase. A zero maxExpiresIn disables the
// upper bound on link lifetime.
func NewShareLinkUseCase(
	txManager database.TxManager,
	linkRepo LinkRepository,
	customerRepo CustomerRegistry,
	blobStorage BlobStorage,
	idGenerator shareLinkService.IDGenerator,
	projector shareLinkService.FieldProjector,
	ttlPolicy shareLinkService.TTLPolicy,
	maxExpiresIn time.Duration,
) ShareLinkUseCase {
	return &shareLinkUseCase{
		txManager:    txManager,
		linkRepo:     linkRepo,
		customerRepo: customerRepo,
		blobStorage:  blobStorage,
		idGenerator:  idGenerator,
		projector:    projector,
		ttlPolicy:    ttlPolicy,
		maxExpiresIn: maxExpiresIn,
		now:          time.Now,
	}
}
