// Package repository implements the read-only customer registry over the CRM tables.
//
// The registry never writes: customers and their documents are owned by the CRM. PostgreSQL uses
// native UUID types, MySQL uses BINARY(16) types.
package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	"github.com/allisson/sharelink/internal/database"
	apperrors "github.com/allisson/sharelink/internal/errors"
)

// PostgreSQLCustomerRepository reads customers from PostgreSQL.
type PostgreSQLCustomerRepository struct {
	db *sql.DB
}

// FindByID retrieves a customer and its current documents.
func (p *PostgreSQLCustomerRepository) FindByID(
	ctx context.Context,
	id uuid.UUID,
) (*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT id, name, cpf, email, phone, birth_date, marital_status,
			  street, number, complement, neighborhood, city, state, zip_code,
			  profession, employment_type, monthly_income, company_name,
			  has_property, property_value, property_type, notes, created_at
			  FROM customers WHERE id = $1`

	customer := &customerDomain.Customer{}
	err := scanCustomer(querier.QueryRowContext(ctx, query, id), customer, &customer.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerDomain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get customer")
	}

	docQuery := `SELECT id, file_name, category, storage_path, uploaded_at
				 FROM customer_documents
				 WHERE customer_id = $1
				 ORDER BY uploaded_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, docQuery, id)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customer documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	customer.Documents = make([]customerDomain.Document, 0)
	for rows.Next() {
		var doc customerDomain.Document
		if err := rows.Scan(&doc.ID, &doc.FileName, &doc.Category, &doc.StoragePath, &doc.UploadedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer document")
		}
		customer.Documents = append(customer.Documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customer documents")
	}

	return customer, nil
}

// NewPostgreSQLCustomerRepository creates a new PostgreSQL customer registry.
func NewPostgreSQLCustomerRepository(db *sql.DB) *PostgreSQLCustomerRepository {
	return &PostgreSQLCustomerRepository{db: db}
}
