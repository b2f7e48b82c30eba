package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/sharelink/internal/database"
	apperrors "github.com/allisson/sharelink/internal/errors"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

var shareLinkColumns = []string{
	"id", "customer_id", "created_by", "created_at", "expires_at", "access_count", "max_access",
	"is_active", "perm_personal_data", "perm_address", "perm_financial_data", "perm_documents", "perm_notes",
}

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, mock
}

func newTestShareLink() *shareLinkDomain.ShareLink {
	maxAccess := int64(3)
	now := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	return &shareLinkDomain.ShareLink{
		ID:          "w3Xq4zJ1o3T0mVdYpQ8sZfN2aBcDeFgHiJkLmNoPqRs",
		CustomerID:  uuid.New(),
		CreatedBy:   uuid.New(),
		CreatedAt:   now,
		ExpiresAt:   now.Add(time.Hour),
		AccessCount: 0,
		MaxAccess:   &maxAccess,
		IsActive:    true,
		Permissions: shareLinkDomain.Permissions{PersonalData: true, Documents: true},
	}
}

func TestPostgreSQLShareLinkRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)
	link := newTestShareLink()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_links")).
		WithArgs(
			link.ID, link.CustomerID, link.CreatedBy, link.CreatedAt, link.ExpiresAt, int64(0), int64(3),
			true, true, false, false, true, false,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), link)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLShareLinkRepository_Create_Error(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_links")).WillReturnError(errors.New("duplicate"))

	err := repo.Create(context.Background(), newTestShareLink())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create share link")
}

func TestPostgreSQLShareLinkRepository_CreateDocuments_WithinTransaction(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)
	txManager := database.NewTxManager(db)
	link := newTestShareLink()
	docs := []shareLinkDomain.DocumentSnapshot{
		{ID: uuid.New(), FileName: "a.pdf", Category: "identity", StoragePath: "docs/a.pdf"},
		{ID: uuid.New(), FileName: "b.pdf", Category: "income", StoragePath: "docs/b.pdf"},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_links")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_link_documents")).
		WithArgs(link.ID, 0, docs[0].ID, "a.pdf", "identity", "docs/a.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_link_documents")).
		WithArgs(link.ID, 1, docs[1].ID, "b.pdf", "income", "docs/b.pdf").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, link); err != nil {
			return err
		}
		return repo.CreateDocuments(ctx, link.ID, docs)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLShareLinkRepository_CreateDocuments_RollsBack(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)
	txManager := database.NewTxManager(db)
	link := newTestShareLink()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_links")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO share_link_documents")).
		WillReturnError(errors.New("constraint violation"))
	mock.ExpectRollback()

	err := txManager.WithTx(context.Background(), func(ctx context.Context) error {
		if err := repo.Create(ctx, link); err != nil {
			return err
		}
		return repo.CreateDocuments(ctx, link.ID, []shareLinkDomain.DocumentSnapshot{{ID: uuid.New()}})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create share link document")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLShareLinkRepository_Get(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)
	link := newTestShareLink()
	docID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM share_links WHERE id = $1")).
		WithArgs(link.ID).
		WillReturnRows(sqlmock.NewRows(shareLinkColumns).AddRow(
			link.ID, link.CustomerID.String(), link.CreatedBy.String(), link.CreatedAt, link.ExpiresAt,
			int64(2), nil, true, true, false, false, true, false,
		))
	mock.ExpectQuery(regexp.QuoteMeta("FROM share_link_documents")).
		WithArgs(link.ID).
		WillReturnRows(sqlmock.NewRows([]string{"document_id", "file_name", "category", "storage_path"}).
			AddRow(docID.String(), "a.pdf", "identity", "docs/a.pdf"))

	result, err := repo.Get(context.Background(), link.ID)
	require.NoError(t, err)
	assert.Equal(t, link.ID, result.ID)
	assert.Equal(t, link.CustomerID, result.CustomerID)
	assert.Equal(t, link.CreatedBy, result.CreatedBy)
	assert.Equal(t, int64(2), result.AccessCount)
	assert.Nil(t, result.MaxAccess)
	assert.True(t, result.Permissions.PersonalData)
	assert.True(t, result.Permissions.Documents)
	require.Len(t, result.Documents, 1)
	assert.Equal(t, docID, result.Documents[0].ID)
	assert.Equal(t, "docs/a.pdf", result.Documents[0].StoragePath)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLShareLinkRepository_Get_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM share_links WHERE id = $1")).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(shareLinkColumns))

	result, err := repo.Get(context.Background(), "missing")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, shareLinkDomain.ErrShareLinkNotFound)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPostgreSQLShareLinkRepository_IncrementAccess(t *testing.T) {
	now := time.Date(2026, 1, 10, 12, 30, 0, 0, time.UTC)
	incrementQuery := regexp.QuoteMeta("SET access_count = access_count + 1") +
		`(?s).*max_access IS NULL OR access_count < max_access`

	t.Run("Applied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLShareLinkRepository(db)

		mock.ExpectExec(incrementQuery).WithArgs("abc", now).WillReturnResult(sqlmock.NewResult(0, 1))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.NoError(t, err)
		assert.True(t, applied)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("NotApplied", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLShareLinkRepository(db)

		mock.ExpectExec(incrementQuery).WithArgs("abc", now).WillReturnResult(sqlmock.NewResult(0, 0))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.NoError(t, err)
		assert.False(t, applied)
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := setupMockDB(t)
		repo := NewPostgreSQLShareLinkRepository(db)

		mock.ExpectExec(incrementQuery).WillReturnError(errors.New("timeout"))

		applied, err := repo.IncrementAccess(context.Background(), "abc", now)
		require.Error(t, err)
		assert.False(t, applied)
	})
}

func TestPostgreSQLShareLinkRepository_Deactivate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE share_links SET is_active = FALSE WHERE id = $1")).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Deactivate(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgreSQLShareLinkRepository_ListByCustomer(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostgreSQLShareLinkRepository(db)
	customerID := uuid.New()
	first := newTestShareLink()
	second := newTestShareLink()
	second.ID = "second"

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC")).
		WithArgs(customerID, 10, 0).
		WillReturnRows(sqlmock.NewRows(shareLinkColumns).
			AddRow(
				first.ID, customerID.String(), first.CreatedBy.String(), first.CreatedAt, first.ExpiresAt,
				int64(1), int64(3), true, false, false, false, false, false,
			).
			AddRow(
				second.ID, customerID.String(), second.CreatedBy.String(), second.CreatedAt, second.ExpiresAt,
				int64(0), nil, false, false, false, false, false, false,
			))

	links, err := repo.ListByCustomer(context.Background(), customerID, 0, 10)
	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, first.ID, links[0].ID)
	require.NotNil(t, links[0].MaxAccess)
	assert.Equal(t, int64(3), *links[0].MaxAccess)
	assert.Equal(t, "second", links[1].ID)
	assert.False(t, links[1].IsActive)
	assert.NoError(t, mock.ExpectationsWereMet())
}
