package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sharelink/internal/database"
	apperrors "github.com/allisson/sharelink/internal/errors"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

// MySQLShareLinkRepository implements ShareLink persistence for MySQL.
// Uses BINARY(16) for UUID storage with transaction support via database.GetTx().
type MySQLShareLinkRepository struct {
	db *sql.DB
}

// Create inserts a new ShareLink row. The document snapshot is stored by CreateDocuments.
func (m *MySQLShareLinkRepository) Create(ctx context.Context, link *shareLinkDomain.ShareLink) error {
	querier := database.GetTx(ctx, m.db)

	customerID, err := link.CustomerID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal customer id")
	}

	createdBy, err := link.CreatedBy.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal created by")
	}

	query := `INSERT INTO share_links (id, customer_id, created_by, created_at, expires_at, access_count,
			  max_access, is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents,
			  perm_notes)
			  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		link.ID,
		customerID,
		createdBy,
		link.CreatedAt,
		link.ExpiresAt,
		link.AccessCount,
		nullInt64(link.MaxAccess),
		link.IsActive,
		link.Permissions.PersonalData,
		link.Permissions.Address,
		link.Permissions.FinancialData,
		link.Permissions.Documents,
		link.Permissions.Notes,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create share link")
	}
	return nil
}

// CreateDocuments stores the document snapshot of a link, keeping the given order.
func (m *MySQLShareLinkRepository) CreateDocuments(
	ctx context.Context,
	linkID string,
	documents []shareLinkDomain.DocumentSnapshot,
) error {
	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO share_link_documents (share_link_id, sort_order, document_id, file_name, category,
			  storage_path)
			  VALUES (?, ?, ?, ?, ?, ?)`

	for sortOrder, doc := range documents {
		documentID, err := doc.ID.MarshalBinary()
		if err != nil {
			return apperrors.Wrap(err, "failed to marshal document id")
		}

		_, err = querier.ExecContext(
			ctx,
			query,
			linkID,
			sortOrder,
			documentID,
			doc.FileName,
			doc.Category,
			doc.StoragePath,
		)
		if err != nil {
			return apperrors.Wrap(err, "failed to create share link document")
		}
	}
	return nil
}

// Get retrieves a ShareLink and its document snapshot by ID.
func (m *MySQLShareLinkRepository) Get(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT id, customer_id, created_by, created_at, expires_at, access_count, max_access,
			  is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents, perm_notes
			  FROM share_links WHERE id = ?`

	link, err := scanMySQLShareLink(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shareLinkDomain.ErrShareLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get share link")
	}

	documents, err := m.getDocuments(ctx, querier, id)
	if err != nil {
		return nil, err
	}
	link.Documents = documents

	return link, nil
}

func (m *MySQLShareLinkRepository) getDocuments(
	ctx context.Context,
	querier database.Querier,
	linkID string,
) ([]shareLinkDomain.DocumentSnapshot, error) {
	query := `SELECT document_id, file_name, category, storage_path
			  FROM share_link_documents
			  WHERE share_link_id = ?
			  ORDER BY sort_order ASC`

	rows, err := querier.QueryContext(ctx, query, linkID)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list share link documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	documents := make([]shareLinkDomain.DocumentSnapshot, 0)
	for rows.Next() {
		var doc shareLinkDomain.DocumentSnapshot
		var documentID []byte
		if err := rows.Scan(&documentID, &doc.FileName, &doc.Category, &doc.StoragePath); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan share link document")
		}
		if err := doc.ID.UnmarshalBinary(documentID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal document id")
		}
		documents = append(documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate share link documents")
	}

	return documents, nil
}

// IncrementAccess adds one to access_count only while the link is active, unexpired at now and
// below max_access. It reports whether a row was updated.
func (m *MySQLShareLinkRepository) IncrementAccess(ctx context.Context, id string, now time.Time) (bool, error) {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE share_links
			  SET access_count = access_count + 1
			  WHERE id = ?
			    AND is_active = TRUE
			    AND expires_at >= ?
			    AND (max_access IS NULL OR access_count < max_access)`

	result, err := querier.ExecContext(ctx, query, id, now)
	if err != nil {
		return false, apperrors.Wrap(err, "failed to increment share link access")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to get rows affected")
	}

	return rowsAffected == 1, nil
}

// Deactivate sets is_active to false.
func (m *MySQLShareLinkRepository) Deactivate(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, m.db)

	query := `UPDATE share_links SET is_active = FALSE WHERE id = ?`

	if _, err := querier.ExecContext(ctx, query, id); err != nil {
		return apperrors.Wrap(err, "failed to deactivate share link")
	}
	return nil
}

// ListByCustomer returns a page of a customer's links ordered by creation time descending.
// Document snapshots are not loaded.
func (m *MySQLShareLinkRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := customerID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal customer id")
	}

	query := `SELECT id, customer_id, created_by, created_at, expires_at, access_count, max_access,
			  is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents, perm_notes
			  FROM share_links
			  WHERE customer_id = ?
			  ORDER BY created_at DESC
			  LIMIT ? OFFSET ?`

	rows, err := querier.QueryContext(ctx, query, id, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list share links")
	}
	defer func() {
		_ = rows.Close()
	}()

	links := make([]*shareLinkDomain.ShareLink, 0)
	for rows.Next() {
		link, err := scanMySQLShareLink(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan share link")
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate share links")
	}

	return links, nil
}

func scanMySQLShareLink(row rowScanner) (*shareLinkDomain.ShareLink, error) {
	var link shareLinkDomain.ShareLink
	var customerID, createdBy []byte
	var maxAccess sql.NullInt64

	err := row.Scan(
		&link.ID,
		&customerID,
		&createdBy,
		&link.CreatedAt,
		&link.ExpiresAt,
		&link.AccessCount,
		&maxAccess,
		&link.IsActive,
		&link.Permissions.PersonalData,
		&link.Permissions.Address,
		&link.Permissions.FinancialData,
		&link.Permissions.Documents,
		&link.Permissions.Notes,
	)
	if err != nil {
		return nil, err
	}

	if err := link.CustomerID.UnmarshalBinary(customerID); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal customer id")
	}
	if err := link.CreatedBy.UnmarshalBinary(createdBy); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal created by")
	}

	link.MaxAccess = int64Ptr(maxAccess)
	return &link, nil
}

// NewMySQLShareLinkRepository creates a new MySQL ShareLink repository.
func NewMySQLShareLinkRepository(db *sql.DB) *MySQLShareLinkRepository {
	return &MySQLShareLinkRepository{db: db}
}
