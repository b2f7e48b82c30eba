package dto

import (
	"time"

	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

// PermissionsResponse mirrors PermissionsRequest.
type PermissionsResponse struct {
	PersonalData  bool `json:"personal_data"`
	Address       bool `json:"address"`
	FinancialData bool `json:"financial_data"`
	Documents     bool `json:"documents"`
	Notes         bool `json:"notes"`
}

// DocumentResponse describes a snapshot entry. The storage path is never exposed.
type DocumentResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	Category string `json:"category"`
}

// ShareLinkResponse is the operator view of a link.
type ShareLinkResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	CreatedBy   string              `json:"created_by"`
	CreatedAt   time.Time           `json:"created_at"`
	ExpiresAt   time.Time           `json:"expires_at"`
	AccessCount int64               `json:"access_count"`
	MaxAccess   *int64              `json:"max_access"`
	IsActive    bool                `json:"is_active"`
	Status      string              `json:"status"`
	Permissions PermissionsResponse `json:"permissions"`
	Documents   []DocumentResponse  `json:"documents"`
}

// CreateShareLinkResponse wraps a newly created link.
type CreateShareLinkResponse struct {
	Success bool              `json:"success"`
	Data    ShareLinkResponse `json:"data"`
}

// ListShareLinksResponse wraps a page of links.
type ListShareLinksResponse struct {
	Success bool                `json:"success"`
	Data    []ShareLinkResponse `json:"data"`
}

// SuccessResponse is returned by operations without a payload.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PersonalDataResponse is present only with the personal_data permission.
type PersonalDataResponse struct {
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	BirthDate     *time.Time `json:"birth_date"`
	MaritalStatus string     `json:"marital_status"`
}

// AddressResponse is present only with the address permission.
type AddressResponse struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zip_code"`
}

// FinancialDataResponse is present only with the financial_data permission.
type FinancialDataResponse struct {
	Profession     string  `json:"profession"`
	EmploymentType string  `json:"employment_type"`
	MonthlyIncome  float64 `json:"monthly_income"`
	CompanyName    string  `json:"company_name"`
	HasProperty    bool    `json:"has_property"`
	PropertyValue  float64 `json:"property_value"`
	PropertyType   string  `json:"property_type"`
}

// CustomerViewResponse is the permission-filtered customer.
type CustomerViewResponse struct {
	ID                string                 `json:"id"`
	Name              string                 `json:"name"`
	CPF               string                 `json:"cpf"`
	PersonalData      *PersonalDataResponse  `json:"personal_data,omitempty"`
	Address           *AddressResponse       `json:"address,omitempty"`
	FinancialData     *FinancialDataResponse `json:"financial_data,omitempty"`
	UploadedDocuments []DocumentResponse     `json:"uploaded_documents,omitempty"`
	Notes             *string                `json:"notes,omitempty"`
}

// RecipientViewResponse is returned to unauthenticated recipients opening a link.
type RecipientViewResponse struct {
	Success          bool                 `json:"success"`
	Customer         CustomerViewResponse `json:"customer"`
	Permissions      PermissionsResponse  `json:"permissions"`
	ExpiresAt        time.Time            `json:"expires_at"`
	RemainingSeconds int64                `json:"remaining_seconds"`
}

// AccessResponse reports the quota after a recorded access.
type AccessResponse struct {
	Success           bool   `json:"success"`
	AccessCount       int64  `json:"access_count"`
	MaxAccess         *int64 `json:"max_access"`
	RemainingAccesses *int64 `json:"remaining_accesses"`
}

// DocumentURLResponse is one entry of a minting result. Exactly one of URL or Error is set.
type DocumentURLResponse struct {
	DocumentID string     `json:"document_id"`
	FileName   string     `json:"file_name"`
	Category   string     `json:"category"`
	URL        string     `json:"url,omitempty"`
	ExpiresAt  *time.Time `json:"expires_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// DocumentURLsResponse lists minting results in request order.
type DocumentURLsResponse struct {
	Success bool                  `json:"success"`
	Data    []DocumentURLResponse `json:"data"`
}

// signingFailed is the only reason surfaced for a per-document failure.
const signingFailed = "signed_url_unavailable"

func mapPermissions(p shareLinkDomain.Permissions) PermissionsResponse {
	return PermissionsResponse{
		PersonalData:  p.PersonalData,
		Address:       p.Address,
		FinancialData: p.FinancialData,
		Documents:     p.Documents,
		Notes:         p.Notes,
	}
}

func mapDocuments(documents []shareLinkDomain.DocumentSnapshot) []DocumentResponse {
	out := make([]DocumentResponse, 0, len(documents))
	for _, doc := range documents {
		out = append(out, DocumentResponse{
			ID:       doc.ID.String(),
			FileName: doc.FileName,
			Category: doc.Category,
		})
	}
	return out
}

// MapShareLinkToResponse converts a link into its operator representation.
func MapShareLinkToResponse(link *shareLinkDomain.ShareLink, now time.Time) ShareLinkResponse {
	return ShareLinkResponse{
		ID:          link.ID,
		CustomerID:  link.CustomerID.String(),
		CreatedBy:   link.CreatedBy.String(),
		CreatedAt:   link.CreatedAt,
		ExpiresAt:   link.ExpiresAt,
		AccessCount: link.AccessCount,
		MaxAccess:   link.MaxAccess,
		IsActive:    link.IsActive,
		Status:      string(link.Status(now)),
		Permissions: mapPermissions(link.Permissions),
		Documents:   mapDocuments(link.Documents),
	}
}

// MapShareLinksToListResponse converts a page of links.
func MapShareLinksToListResponse(links []*shareLinkDomain.ShareLink, now time.Time) ListShareLinksResponse {
	data := make([]ShareLinkResponse, 0, len(links))
	for _, link := range links {
		data = append(data, MapShareLinkToResponse(link, now))
	}
	return ListShareLinksResponse{Success: true, Data: data}
}

// MapRecipientViewToResponse converts the filtered view for a recipient.
func MapRecipientViewToResponse(view *shareLinkDomain.RecipientView) RecipientViewResponse {
	customer := view.Customer
	out := CustomerViewResponse{
		ID:    customer.ID.String(),
		Name:  customer.Name,
		CPF:   customer.CPF,
		Notes: customer.Notes,
	}

	if pd := customer.PersonalData; pd != nil {
		out.PersonalData = &PersonalDataResponse{
			Email:         pd.Email,
			Phone:         pd.Phone,
			BirthDate:     pd.BirthDate,
			MaritalStatus: pd.MaritalStatus,
		}
	}
	if addr := customer.Address; addr != nil {
		out.Address = &AddressResponse{
			Street:       addr.Street,
			Number:       addr.Number,
			Complement:   addr.Complement,
			Neighborhood: addr.Neighborhood,
			City:         addr.City,
			State:        addr.State,
			ZipCode:      addr.ZipCode,
		}
	}
	if fd := customer.FinancialData; fd != nil {
		out.FinancialData = &FinancialDataResponse{
			Profession:     fd.Profession,
			EmploymentType: fd.EmploymentType,
			MonthlyIncome:  fd.MonthlyIncome,
			CompanyName:    fd.CompanyName,
			HasProperty:    fd.HasProperty,
			PropertyValue:  fd.PropertyValue,
			PropertyType:   fd.PropertyType,
		}
	}
	if customer.UploadedDocuments != nil {
		out.UploadedDocuments = mapDocuments(customer.UploadedDocuments)
	}

	return RecipientViewResponse{
		Success:          true,
		Customer:         out,
		Permissions:      mapPermissions(view.Link.Permissions),
		ExpiresAt:        view.Link.ExpiresAt,
		RemainingSeconds: int64(view.Remaining.Seconds()),
	}
}

// MapAccessToResponse reports the link quota after an access.
func MapAccessToResponse(link *shareLinkDomain.ShareLink) AccessResponse {
	resp := AccessResponse{
		Success:     true,
		AccessCount: link.AccessCount,
		MaxAccess:   link.MaxAccess,
	}
	if link.MaxAccess != nil {
		left := max(*link.MaxAccess-link.AccessCount, 0)
		resp.RemainingAccesses = &left
	}
	return resp
}

// MapDocumentURLsToResponse converts minting results preserving their order.
func MapDocumentURLsToResponse(results []shareLinkDomain.DocumentURLResult) DocumentURLsResponse {
	data := make([]DocumentURLResponse, 0, len(results))
	for _, result := range results {
		entry := DocumentURLResponse{
			DocumentID: result.Document.ID.String(),
			FileName:   result.Document.FileName,
			Category:   result.Document.Category,
		}
		if result.OK() {
			expiresAt := result.ExpiresAt
			entry.URL = result.URL
			entry.ExpiresAt = &expiresAt
		} else {
			entry.Error = signingFailed
		}
		data = append(data, entry)
	}
	return DocumentURLsResponse{Success: true, Data: data}
}
