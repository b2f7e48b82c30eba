// Package mocks provides mock implementations of the share link use case interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockLinkRepository is a mock implementation of LinkRepository.
type MockLinkRepository struct {
	mock.Mock
}

// NewMockLinkRepository creates a MockLinkRepository asserted on test cleanup.
func NewMockLinkRepository(t testingT) *MockLinkRepository {
	m := &MockLinkRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockLinkRepository) Create(ctx context.Context, link *shareLinkDomain.ShareLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

// CreateDocuments mocks the CreateDocuments method.
func (m *MockLinkRepository) CreateDocuments(
	ctx context.Context,
	linkID string,
	documents []shareLinkDomain.DocumentSnapshot,
) error {
	args := m.Called(ctx, linkID, documents)
	return args.Error(0)
}

// Get mocks the Get method.
func (m *MockLinkRepository) Get(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shareLinkDomain.ShareLink), args.Error(1)
}

// IncrementAccess mocks the IncrementAccess method.
func (m *MockLinkRepository) IncrementAccess(ctx context.Context, id string, now time.Time) (bool, error) {
	args := m.Called(ctx, id, now)
	return args.Bool(0), args.Error(1)
}

// Deactivate mocks the Deactivate method.
func (m *MockLinkRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// ListByCustomer mocks the ListByCustomer method.
func (m *MockLinkRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	args := m.Called(ctx, customerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shareLinkDomain.ShareLink), args.Error(1)
}

// MockCustomerRegistry is a mock implementation of CustomerRegistry.
type MockCustomerRegistry struct {
	mock.Mock
}

// NewMockCustomerRegistry creates a MockCustomerRegistry asserted on test cleanup.
func NewMockCustomerRegistry(t testingT) *MockCustomerRegistry {
	m := &MockCustomerRegistry{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// FindByID mocks the FindByID method.
func (m *MockCustomerRegistry) FindByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customerDomain.Customer), args.Error(1)
}

// MockBlobStorage is a mock implementation of BlobStorage.
type MockBlobStorage struct {
	mock.Mock
}

// NewMockBlobStorage creates a MockBlobStorage asserted on test cleanup.
func NewMockBlobStorage(t testingT) *MockBlobStorage {
	m := &MockBlobStorage{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// CreateSignedURL mocks the CreateSignedURL method.
func (m *MockBlobStorage) CreateSignedURL(ctx context.Context, objectPath string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, objectPath, ttl)
	return args.String(0), args.Error(1)
}

// CreateSignedURLs mocks the CreateSignedURLs method.
func (m *MockBlobStorage) CreateSignedURLs(
	ctx context.Context,
	objectPaths []string,
	ttl time.Duration,
) (map[string]string, map[string]error) {
	args := m.Called(ctx, objectPaths, ttl)
	var urls map[string]string
	if v := args.Get(0); v != nil {
		urls = v.(map[string]string)
	}
	var errs map[string]error
	if v := args.Get(1); v != nil {
		errs = v.(map[string]error)
	}
	return urls, errs
}

// MockShareLinkUseCase is a mock implementation of ShareLinkUseCase.
type MockShareLinkUseCase struct {
	mock.Mock
}

// NewMockShareLinkUseCase creates a MockShareLinkUseCase asserted on test cleanup.
func NewMockShareLinkUseCase(t testingT) *MockShareLinkUseCase {
	m := &MockShareLinkUseCase{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Create mocks the Create method.
func (m *MockShareLinkUseCase) Create(
	ctx context.Context,
	input *shareLinkDomain.CreateShareLinkInput,
) (*shareLinkDomain.ShareLink, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shareLinkDomain.ShareLink), args.Error(1)
}

// Resolve mocks the Resolve method.
func (m *MockShareLinkUseCase) Resolve(
	ctx context.Context,
	id string,
) (*shareLinkDomain.ShareLink, time.Duration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).(*shareLinkDomain.ShareLink), args.Get(1).(time.Duration), args.Error(2)
}

// View mocks the View method.
func (m *MockShareLinkUseCase) View(ctx context.Context, id string) (*shareLinkDomain.RecipientView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shareLinkDomain.RecipientView), args.Error(1)
}

// RecordAccess mocks the RecordAccess method.
func (m *MockShareLinkUseCase) RecordAccess(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shareLinkDomain.ShareLink), args.Error(1)
}

// MintURLs mocks the MintURLs method.
func (m *MockShareLinkUseCase) MintURLs(
	ctx context.Context,
	id string,
	documentIDs []uuid.UUID,
) ([]shareLinkDomain.DocumentURLResult, error) {
	args := m.Called(ctx, id, documentIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shareLinkDomain.DocumentURLResult), args.Error(1)
}

// MintAll mocks the MintAll method.
func (m *MockShareLinkUseCase) MintAll(ctx context.Context, id string) ([]shareLinkDomain.DocumentURLResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]shareLinkDomain.DocumentURLResult), args.Error(1)
}

// Deactivate mocks the Deactivate method.
func (m *MockShareLinkUseCase) Deactivate(ctx context.Context, id string, requesterID uuid.UUID) error {
	args := m.Called(ctx, id, requesterID)
	return args.Error(0)
}

// ListByCustomer mocks the ListByCustomer method.
func (m *MockShareLinkUseCase) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	args := m.Called(ctx, customerID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*shareLinkDomain.ShareLink), args.Error(1)
}
