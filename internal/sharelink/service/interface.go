// Package service provides the pure building blocks of share links: identifier generation,
// field projection and signed URL lifetime policy.
package service

import (
	"time"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

// IDGenerator produces unpredictable share link identifiers.
type IDGenerator interface {
	// Generate returns a fresh bearer identifier.
	Generate() (string, error)
}

// FieldProjector maps a full customer record to the view a link's permissions allow.
// Implementations must be deterministic and free of I/O.
type FieldProjector interface {
	Project(
		customer *customerDomain.Customer,
		link *shareLinkDomain.ShareLink,
	) shareLinkDomain.FilteredCustomerView
}

// TTLPolicy derives the lifetime of a signed document URL from the link's remaining lifetime.
type TTLPolicy interface {
	TTL(remaining time.Duration) time.Duration
}
