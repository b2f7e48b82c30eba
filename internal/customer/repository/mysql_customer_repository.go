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

// MySQLCustomerRepository reads customers from MySQL using BINARY(16) UUIDs.
type MySQLCustomerRepository struct {
	db *sql.DB
}

// FindByID retrieves a customer and its current documents.
func (m *MySQLCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*customerDomain.Customer, error) {
	querier := database.GetTx(ctx, m.db)

	idBinary, err := id.MarshalBinary()
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to marshal customer id")
	}

	query := `SELECT id, name, cpf, email, phone, birth_date, marital_status,
			  street, number, complement, neighborhood, city, state, zip_code,
			  profession, employment_type, monthly_income, company_name,
			  has_property, property_value, property_type, notes, created_at
			  FROM customers WHERE id = ?`

	customer := &customerDomain.Customer{}
	var idBytes []byte
	if err := scanCustomer(querier.QueryRowContext(ctx, query, idBinary), customer, &idBytes); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, customerDomain.ErrCustomerNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get customer")
	}

	if err := customer.ID.UnmarshalBinary(idBytes); err != nil {
		return nil, apperrors.Wrap(err, "failed to unmarshal customer id")
	}

	docQuery := `SELECT id, file_name, category, storage_path, uploaded_at
				 FROM customer_documents
				 WHERE customer_id = ?
				 ORDER BY uploaded_at ASC, id ASC`

	rows, err := querier.QueryContext(ctx, docQuery, idBinary)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list customer documents")
	}
	defer func() {
		_ = rows.Close()
	}()

	customer.Documents = make([]customerDomain.Document, 0)
	for rows.Next() {
		var doc customerDomain.Document
		var docID []byte
		if err := rows.Scan(&docID, &doc.FileName, &doc.Category, &doc.StoragePath, &doc.UploadedAt); err != nil {
			return nil, apperrors.Wrap(err, "failed to scan customer document")
		}
		if err := doc.ID.UnmarshalBinary(docID); err != nil {
			return nil, apperrors.Wrap(err, "failed to unmarshal document id")
		}
		customer.Documents = append(customer.Documents, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to iterate customer documents")
	}

	return customer, nil
}

// NewMySQLCustomerRepository creates a new MySQL customer registry.
func NewMySQLCustomerRepository(db *sql.DB) *MySQLCustomerRepository {
	return &MySQLCustomerRepository{db: db}
}
