// Package domain defines the capability share link: a bearer token granting scoped,
// time- and count-limited read access to one customer record and a frozen document snapshot.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status describes whether a share link can still be used.
type Status string

const (
	StatusActive    Status = "active"
	StatusRevoked   Status = "revoked"
	StatusExpired   Status = "expired"
	StatusExhausted Status = "exhausted"
)

// Permissions are the independent field groups a share link exposes.
type Permissions struct {
	PersonalData  bool
	Address       bool
	FinancialData bool
	Documents     bool
	Notes         bool
}

// DocumentSnapshot is a document captured when the link was created.
// It is never refreshed from the customer's live document list.
type DocumentSnapshot struct {
	ID          uuid.UUID
	FileName    string
	Category    string
	StoragePath string
}

// ShareLink is a capability link over a single customer record.
// Possession of ID is equivalent to possession of the granted capability.
type ShareLink struct {
	ID          string
	CustomerID  uuid.UUID
	CreatedBy   uuid.UUID
	CreatedAt   time.Time
	ExpiresAt   time.Time
	AccessCount int64
	MaxAccess   *int64
	IsActive    bool
	Permissions Permissions
	Documents   []DocumentSnapshot
}

// IsExpired reports whether now is past the link expiration.
func (s *ShareLink) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// IsExhausted reports whether the access quota has been consumed.
func (s *ShareLink) IsExhausted() bool {
	return s.MaxAccess != nil && s.AccessCount >= *s.MaxAccess
}

// CheckUsable returns nil when the link can be used at now. Inactive and expired links
// are reported before quota exhaustion.
func (s *ShareLink) CheckUsable(now time.Time) error {
	if !s.IsActive {
		return ErrShareLinkInactive
	}
	if s.IsExpired(now) {
		return ErrShareLinkExpired
	}
	if s.IsExhausted() {
		return ErrShareLinkQuotaExceeded
	}
	return nil
}

// Status derives the link status at now from its persisted fields.
func (s *ShareLink) Status(now time.Time) Status {
	switch {
	case !s.IsActive:
		return StatusRevoked
	case s.IsExpired(now):
		return StatusExpired
	case s.IsExhausted():
		return StatusExhausted
	default:
		return StatusActive
	}
}

// Remaining returns the time left before expiration, never negative.
func (s *ShareLink) Remaining(now time.Time) time.Duration {
	remaining := s.ExpiresAt.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FindDocument returns the snapshot entry with the given ID.
func (s *ShareLink) FindDocument(id uuid.UUID) (DocumentSnapshot, bool) {
	for _, doc := range s.Documents {
		if doc.ID == id {
			return doc, true
		}
	}
	return DocumentSnapshot{}, false
}

// CreateShareLinkInput holds the operator's intent for a new share link.
type CreateShareLinkInput struct {
	CustomerID     uuid.UUID
	RequesterID    uuid.UUID
	ExpiresInHours int
	MaxAccess      *int64
	Permissions    Permissions
	DocumentIDs    []uuid.UUID
}
