package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	authDomain "github.com/allisson/sharelink/internal/auth/domain"
	"github.com/allisson/sharelink/internal/database"
	apperrors "github.com/allisson/sharelink/internal/errors"
)

// MySQLOperatorRepository implements operator persistence for MySQL using BINARY(16) ids.
type MySQLOperatorRepository struct {
	db *sql.DB
}

// Create inserts a new operator.
func (m *MySQLOperatorRepository) Create(ctx context.Context, operator *authDomain.Operator) error {
	querier := database.GetTx(ctx, m.db)

	id, err := operator.ID.MarshalBinary()
	if err != nil {
		return apperrors.Wrap(err, "failed to marshal operator id")
	}

	query := `INSERT INTO operators (id, secret, name, is_active, created_at)
			  VALUES (?, ?, ?, ?, ?)`

	_, err = querier.ExecContext(
		ctx,
		query,
		id,
		operator.Secret,
		operator.Name,
		operator.IsActive,
		operator.CreatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create operator")
	}
	return nil
}

// Get retrieves an operator by ID. Returns ErrOperatorNotFound when missing.
func (m *MySQLOperatorRepository) Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error) {
	querier := database.GetTx(ctx, m.db)

	id, err := operatorID.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal operator id")
	}

	query := `SELECT id, secret, name, is_active, created_at FROM operators WHERE id = ?`

	var operator authDomain.Operator
	var idBytes []byte
	err = querier.QueryRowContext(ctx, query, id).Scan(
		&idBytes,
		&operator.Secret,
		&operator.Name,
		&operator.IsActive,
		&operator.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, authDomain.ErrOperatorNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get operator")
	}

	if err := operator.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal operator id")
	}

	return &operator, nil
}

// NewMySQLOperatorRepository creates a new MySQL operator repository.
func NewMySQLOperatorRepository(db *sql.DB) *MySQLOperatorRepository {
	return &MySQLOperatorRepository{db: db}
}
