package domain

import (
	"time"

	"github.com/google/uuid"
)

// RedactionMarker replaces identifying fields the viewer may not read in full.
const RedactionMarker = "[redacted]"

// PersonalDataView holds contact and civil data gated by Permissions.PersonalData.
type PersonalDataView struct {
	Email         string
	Phone         string
	BirthDate     *time.Time
	MaritalStatus string
}

// AddressView is gated by Permissions.Address.
type AddressView struct {
	Street       string
	Number       string
	Complement   string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

// FinancialDataView is gated by Permissions.FinancialData.
type FinancialDataView struct {
	Profession     string
	EmploymentType string
	MonthlyIncome  float64
	CompanyName    string
	HasProperty    bool
	PropertyValue  float64
	PropertyType   string
}

// FilteredCustomerView is the only customer representation handed to share link recipients.
// ID, Name and CPF are always present; every other group is nil unless its permission is granted.
type FilteredCustomerView struct {
	ID                uuid.UUID
	Name              string
	CPF               string
	PersonalData      *PersonalDataView
	Address           *AddressView
	FinancialData     *FinancialDataView
	UploadedDocuments []DocumentSnapshot
	Notes             *string
}

// RecipientView is what an unauthenticated recipient receives when opening a link.
type RecipientView struct {
	Link      *ShareLink
	Customer  FilteredCustomerView
	Remaining time.Duration
}

// DocumentURLResult is the outcome of minting a signed URL for one document.
// Exactly one of URL or Err is set.
type DocumentURLResult struct {
	Document  DocumentSnapshot
	URL       string
	ExpiresAt time.Time
	Err       error
}

// OK reports whether the URL was minted.
func (r DocumentURLResult) OK() bool {
	return r.Err == nil
}
