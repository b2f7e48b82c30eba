package domain

import (
	"github.com/allisson/sharelink/internal/errors"
)

// Share link errors.
var (
	// ErrShareLinkNotFound indicates no share link exists with the given ID.
	ErrShareLinkNotFound = errors.Wrap(errors.ErrNotFound, "share link not found")

	// ErrShareLinkInactive indicates the share link has been deactivated by its creator.
	ErrShareLinkInactive = errors.Wrap(errors.ErrGone, "share link has been deactivated")

	// ErrShareLinkExpired indicates the share link is past its expiration time.
	ErrShareLinkExpired = errors.Wrap(errors.ErrGone, "share link has expired")

	// ErrShareLinkQuotaExceeded indicates the share link reached its maximum number of accesses.
	ErrShareLinkQuotaExceeded = errors.Wrap(errors.ErrQuotaExceeded, "share link access limit reached")

	// ErrNotShareLinkCreator indicates the requester did not create the share link.
	ErrNotShareLinkCreator = errors.Wrap(errors.ErrForbidden, "only the creator can deactivate a share link")

	// ErrDocumentsNotPermitted indicates the share link does not grant document access.
	ErrDocumentsNotPermitted = errors.Wrap(errors.ErrForbidden, "share link does not grant document access")

	// ErrNoSharedDocuments indicates the share link snapshot has no documents to mint URLs for.
	ErrNoSharedDocuments = errors.Wrap(errors.ErrNotFound, "share link has no matching documents")

	// ErrInvalidExpiresIn indicates the requested lifetime is not a positive number of hours.
	ErrInvalidExpiresIn = errors.Wrap(errors.ErrInvalidInput, "expires_in_hours must be greater than 0")

	// ErrExpiresInTooLong indicates the requested lifetime exceeds the configured maximum.
	ErrExpiresInTooLong = errors.Wrap(errors.ErrInvalidInput, "expires_in_hours exceeds the allowed maximum")

	// ErrInvalidMaxAccess indicates a quota was supplied but is not a positive number.
	ErrInvalidMaxAccess = errors.Wrap(errors.ErrInvalidInput, "max_access must be greater than 0")
)
