package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

func mustMarshalUUID(t *testing.T, id uuid.UUID) []byte {
	t.Helper()
	b, err := id.MarshalBinary()
	require.NoError(t, err)
	return b
}

func TestMySQLShareLinkRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)
	link := newTestShareLink()
	link.MaxAccess = nil

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_links")).
		WithArgs(
			link.ID,
			mustMarshalUUID(t, link.CustomerID),
			mustMarshalUUID(t, link.CreatedBy),
			link.CreatedAt,
			link.ExpiresAt,
			int64(0),
			nil,
			true, true, false, false, true, false,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), link))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLShareLinkRepository_CreateDocuments(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)
	doc := shareLinkDomain.DocumentSnapshot{
		ID:          uuid.New(),
		FileName:    "a.pdf",
		Category:    "identity",
		StoragePath: "docs/a.pdf",
	}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_link_documents")).
		WithArgs("abc", 0, mustMarshalUUID(t, doc.ID), "a.pdf", "identity", "docs/a.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.CreateDocuments(context.Background(), "abc", []shareLinkDomain.DocumentSnapshot{doc}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLShareLinkRepository_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)
	link := newTestShareLink()
	docID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM share_links WHERE id = ?")).
		WithArgs(link.ID).
		WillReturnRows(sqlmock.NewRows(shareLinkColumns).AddRow(
			link.ID,
			mustMarshalUUID(t, link.CustomerID),
			mustMarshalUUID(t, link.CreatedBy),
			link.CreatedAt,
			link.ExpiresAt,
			int64(1),
			int64(3),
			true, false, true, false, true, true,
		))
	mock.ExpectQuery(regexp.QuoteMeta("FROM share_link_documents")).
		WithArgs(link.ID).
		WillReturnRows(sqlmock.NewRows([]string{"document_id", "file_name", "category", "storage_path"}).
			AddRow(mustMarshalUUID(t, docID), "a.pdf", "identity", "docs/a.pdf"))

	result, err := repo.Get(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, link.CustomerID, result.CustomerID)
	assert.Equal(t, link.CreatedBy, result.CreatedBy)
	require.NotNil(t, result.MaxAccess)
	assert.Equal(t, int64(3), *result.MaxAccess)
	assert.True(t, result.Permissions.Address)
	assert.True(t, result.Permissions.Notes)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, docID, result.Documents[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLShareLinkRepository_Get_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM share_links WHERE id = ?")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(shareLinkColumns))

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, shareLinkDomain.ErrShareLinkNotFound)
}

func TestMySQLShareLinkRepository_IncrementAccess(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)
	incrementQuery := regexp.QuoteMeta("SET access_count = access_count + 1")

	t.Run("Applied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLShareLinkRepository(db)
		mock.ExpectExec(incrementQuery).WithArgs("abc", now).WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.NoError(t, err)
		assert.True(t, applied)
	})

	t.Run("NotApplied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLShareLinkRepository(db)
		mock.ExpectExec(incrementQuery).WithArgs("abc", now).WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("RowsAffectedError", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewMySQLShareLinkRepository(db)
		mock.ExpectExec(incrementQuery).
			WithArgs("abc", now).
			WillReturnResult(sqlmock.NewErrorResult(errors.New("unsupported")))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.Error(t, err)
		assert.False(t, applied)
	})
}

func TestMySQLShareLinkRepository_Deactivate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE share_links SET is_active = FALSE WHERE id = ?")).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Deactivate(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMySQLShareLinkRepository_ListByCustomer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewMySQLShareLinkRepository(db)
	customerID := uuid.New()
	link := newTestShareLink()

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT ? OFFSET ?")).
		WithArgs(mustMarshalUUID(t, customerID), 20, 40).
		WillReturnRows(sqlmock.NewRows(shareLinkColumns).AddRow(
			link.ID,
			mustMarshalUUID(t, customerID),
			mustMarshalUUID(t, link.CreatedBy),
			link.CreatedAt,
			link.ExpiresAt,
			int64(0),
			nil,
			true, false, false, false, false, false,
		))

	links, err := repo.ListByCustomer(context.Background(), customerID, 40, 20)
	require.NoError(t, err)
	require.Len(t, links, 1)
	assert.Equal(t, customerID, links[0].CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}
