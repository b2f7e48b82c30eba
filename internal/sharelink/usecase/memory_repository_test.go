package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

// memoryLinkRepository keeps links in a map guarded by a mutex. IncrementAccess performs the
// compare and increment under the lock, mirroring the conditional UPDATE of the SQL repositories.
type memoryLinkRepository struct {
	mu    sync.Mutex
	links map[string]*shareLinkDomain.ShareLink
}

func newMemoryLinkRepository() *memoryLinkRepository {
	return &memoryLinkRepository{links: make(map[string]*shareLinkDomain.ShareLink)}
}

func cloneLink(link *shareLinkDomain.ShareLink) *shareLinkDomain.ShareLink {
	clone := *link
	if link.MaxAccess != nil {
		maxAccess := *link.MaxAccess
		clone.MaxAccess = &maxAccess
	}
	clone.Documents = append([]shareLinkDomain.DocumentSnapshot(nil), link.Documents...)
	return &clone
}

func (r *memoryLinkRepository) Create(ctx context.Context, link *shareLinkDomain.ShareLink) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := cloneLink(link)
	stored.Documents = nil
	r.links[link.ID] = stored
	return nil
}

func (r *memoryLinkRepository) CreateDocuments(
	ctx context.Context,
	linkID string,
	documents []shareLinkDomain.DocumentSnapshot,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[linkID]
	if !ok {
		return shareLinkDomain.ErrShareLinkNotFound
	}
	link.Documents = append(link.Documents, documents...)
	return nil
}

func (r *memoryLinkRepository) Get(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[id]
	if !ok {
		return nil, shareLinkDomain.ErrShareLinkNotFound
	}
	return cloneLink(link), nil
}

func (r *memoryLinkRepository) IncrementAccess(ctx context.Context, id string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[id]
	if !ok {
		return false, nil
	}
	if link.CheckUsable(now) != nil {
		return false, nil
	}
	link.AccessCount++
	return true, nil
}

func (r *memoryLinkRepository) Deactivate(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	link, ok := r.links[id]
	if !ok {
		return shareLinkDomain.ErrShareLinkNotFound
	}
	link.IsActive = false
	return nil
}

func (r *memoryLinkRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	links := make([]*shareLinkDomain.ShareLink, 0)
	for _, link := range r.links {
		if link.CustomerID == customerID {
			links = append(links, cloneLink(link))
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].CreatedAt.After(links[j].CreatedAt) })
	if offset >= len(links) {
		return []*shareLinkDomain.ShareLink{}, nil
	}
	end := min(offset+limit, len(links))
	return links[offset:end], nil
}

// memoryCustomerRegistry serves customers from a map.
type memoryCustomerRegistry struct {
	mu        sync.Mutex
	customers map[uuid.UUID]*customerDomain.Customer
}

func newMemoryCustomerRegistry(customers ...*customerDomain.Customer) *memoryCustomerRegistry {
	registry := &memoryCustomerRegistry{customers: make(map[uuid.UUID]*customerDomain.Customer)}
	for _, customer := range customers {
		registry.customers[customer.ID] = customer
	}
	return registry
}

func (r *memoryCustomerRegistry) FindByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	customer, ok := r.customers[id]
	if !ok {
		return nil, customerDomain.ErrCustomerNotFound
	}
	clone := *customer
	clone.Documents = append([]customerDomain.Document(nil), customer.Documents...)
	return &clone, nil
}

func (r *memoryCustomerRegistry) replaceDocuments(id uuid.UUID, documents []customerDomain.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.customers[id].Documents = documents
}

// fakeBlobStorage signs every path as a deterministic URL and records the last TTL.
type fakeBlobStorage struct {
	mu      sync.Mutex
	failFor map[string]error
	lastTTL time.Duration
}

func (s *fakeBlobStorage) CreateSignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastTTL = ttl
	if err, ok := s.failFor[objectPath]; ok {
		return "", err
	}
	return "https://blob.example.com/" + objectPath + "?ttl=" + ttl.String(), nil
}

func (s *fakeBlobStorage) CreateSignedURLs(
	ctx context.Context,
	objectPaths []string,
	ttl time.Duration,
) (map[string]string, map[string]error) {
	urls := make(map[string]string, len(objectPaths))
	errs := make(map[string]error)
	for _, path := range objectPaths {
		url, err := s.CreateSignedURL(ctx, path, ttl)
		if err != nil {
			errs[path] = err
			continue
		}
		urls[path] = url
	}
	return urls, errs
}

// noTxManager runs the callback directly.
type noTxManager struct{}

func (noTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
