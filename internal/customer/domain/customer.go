// Package domain defines the customer record as exposed by the CRM registry.
// The registry owns these records; this service only reads them.
package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/allisson/sharelink/internal/errors"
)

// ErrCustomerNotFound indicates the customer registry has no record with the given ID.
var ErrCustomerNotFound = errors.Wrap(errors.ErrNotFound, "customer not found")

// Address is the customer's postal address.
type Address struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// Document is a file the CRM stored for a customer.
// StoragePath is the object key inside the blob bucket.
type Document struct {
	ID          uuid.UUID
	FileName    string
	Category    string
	StoragePath string
	UploadedAt  time.Time
}

// Customer is a full customer record as returned by the registry.
type Customer struct {
	ID            uuid.UUID
	Name          string
	CPF           string
	Email         string
	Phone         string
	BirthDate     *time.Time
	MaritalStatus string

	Address Address

	Profession     string
	EmploymentType string
	MonthlyIncome  float64
	CompanyName    string
	HasProperty    bool
	PropertyValue  float64
	PropertyType   string

	Documents []Document
	Notes     string

	CreatedAt time.Time
}
