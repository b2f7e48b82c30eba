// Package repository implements share link persistence.
//
// Provides PostgreSQL and MySQL implementations with transaction support via database.GetTx().
// PostgreSQL uses native UUID types, MySQL uses BINARY(16) types. Access quota is enforced by a
// single conditional UPDATE so concurrent consumers can never overshoot max_access.
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

// PostgreSQLShareLinkRepository implements ShareLink persistence for PostgreSQL.
type PostgreSQLShareLinkRepository struct {
	db *sql.DB
}

// Create inserts a new ShareLink row. The document snapshot is stored by CreateDocuments.
func (p *PostgreSQLShareLinkRepository) Create(ctx context.Context, link *shareLinkDomain.ShareLink) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO share_links (id, customer_id, created_by, created_at, expires_at, access_count,
			  max_access, is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents,
			  perm_notes)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := querier.ExecContext(
		ctx,
		query,
		link.ID,
		link.CustomerID,
		link.CreatedBy,
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
func (p *PostgreSQLShareLinkRepository) CreateDocuments(
	ctx context.Context,
	linkID string,
	documents []shareLinkDomain.DocumentSnapshot,
) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO share_link_documents (share_link_id, sort_order, document_id, file_name, category,
			  storage_path)
			  VALUES ($1, $2, $3, $4, $5, $6)`

	for sortOrder, doc := range documents {
		_, err := querier.ExecContext(
			ctx,
			query,
			linkID,
			sortOrder,
			doc.ID,
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
func (p *PostgreSQLShareLinkRepository) Get(ctx context.Context, id string) (*shareLinkDomain.ShareLink, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, customer_id, created_by, created_at, expires_at, access_count, max_access,
			  is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents, perm_notes
			  FROM share_links WHERE id = $1`

	link, err := scanPostgreSQLShareLink(querier.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shareLinkDomain.ErrShareLinkNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get share link")
	}

	documents, err := p.getDocuments(ctx, querier, id)
	if err != nil {
		return nil, err
	}
	link.Documents = documents

	return link, nil
}

func (p *PostgreSQLShareLinkRepository) getDocuments(
	ctx context.Context,
	querier database.Querier,
	linkID string,
) ([]shareLinkDomain.DocumentSnapshot, error) {
	query := `SELECT document_id, file_name, category, storage_path
			  FROM share_link_documents
			  WHERE share_link_id = $1
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
		if err := rows.Scan(&doc.ID, &doc.FileName, &doc.Category, &doc.StoragePath); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan share link document")
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
func (p *PostgreSQLShareLinkRepository) IncrementAccess(
	ctx context.Context,
	id string,
	now time.Time,
) (bool, error) {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE share_links
			  SET access_count = access_count + 1
			  WHERE id = $1
			    AND is_active = TRUE
			    AND expires_at >= $2
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
func (p *PostgreSQLShareLinkRepository) Deactivate(ctx context.Context, id string) error {
	querier := database.GetTx(ctx, p.db)

	query := `UPDATE share_links SET is_active = FALSE WHERE id = $1`

	if _, err := querier.ExecContext(ctx, query, id); err != nil {
		return apperrors.Wrap(err, "failed to deactivate share link")
	}
	return nil
}

// ListByCustomer returns a page of a customer's links ordered by creation time descending.
// Document snapshots are not loaded.
func (p *PostgreSQLShareLinkRepository) ListByCustomer(
	ctx context.Context,
	customerID uuid.UUID,
	offset, limit int,
) ([]*shareLinkDomain.ShareLink, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, customer_id, created_by, created_at, expires_at, access_count, max_access,
			  is_active, perm_personal_data, perm_address, perm_financial_data, perm_documents, perm_notes
			  FROM share_links
			  WHERE customer_id = $1
			  ORDER BY created_at DESC
			  LIMIT $2 OFFSET $3`

	rows, err := querier.QueryContext(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list share links")
	}
	defer func() {
		_ = rows.Close()
	}()

	links := make([]*shareLinkDomain.ShareLink, 0)
	for rows.Next() {
		link, err := scanPostgreSQLShareLink(rows)
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

func scanPostgreSQLShareLink(row rowScanner) (*shareLinkDomain.ShareLink, error) {
	var link shareLinkDomain.ShareLink
	var maxAccess sql.NullInt64

	err := row.Scan(
		&link.ID,
		&link.CustomerID,
		&link.CreatedBy,
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

	link.MaxAccess = int64Ptr(maxAccess)
	return &link, nil
}

// NewPostgreSQLShareLinkRepository creates a new PostgreSQL ShareLink repository.
func NewPostgreSQLShareLinkRepository(db *sql.DB) *PostgreSQLShareLinkRepository {
	return &PostgreSQLShareLinkRepository{db: db}
}
