// Package repository persists operators and bearer tokens in PostgreSQL and MySQL.
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

// PostgreSQLOperatorRepository implements operator persistence for PostgreSQL.
type PostgreSQLOperatorRepository struct {
	db *sql.DB
}

// Create inserts a new operator.
func (p *PostgreSQLOperatorRepository) Create(ctx context.Context, operator *authDomain.Operator) error {
	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO operators (id, secret, name, is_active, created_at)
			  VALUES ($1, $2, $3, $4, $5)`

	_, err := querier.ExecContext(
		ctx,
		query,
		operator.ID,
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
func (p *PostgreSQLOperatorRepository) Get(ctx context.Context, operatorID uuid.UUID) (*authDomain.Operator, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, secret, name, is_active, created_at FROM operators WHERE id = $1`

	var operator authDomain.Operator
	err := querier.QueryRowContext(ctx, query, operatorID).Scan(
		&operator.ID,
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

	return &operator, nil
}

// NewPostgreSQLOperatorRepository creates a new PostgreSQL operator repository.
func NewPostgreSQLOperatorRepository(db *sql.DB) *PostgreSQLOperatorRepository {
	return &PostgreSQLOperatorRepository{db: db}
}
