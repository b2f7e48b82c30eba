package service

import (
	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

type fieldProjector struct{}

// Project builds the recipient view of a customer.
//
// Name and CPF are always present but carry RedactionMarker without the personal data
// permission. Contact fields under the same permission are omitted instead. Documents come
// from the link snapshot, never from the customer's live list.
func (p *fieldProjector) Project(
	customer *customerDomain.Customer,
	link *shareLinkDomain.ShareLink,
) shareLinkDomain.FilteredCustomerView {
	perms := link.Permissions

	view := shareLinkDomain.FilteredCustomerView{
		ID:   customer.ID,
		Name: shareLinkDomain.RedactionMarker,
		CPF:  shareLinkDomain.RedactionMarker,
	}

	if perms.PersonalData {
		view.Name = customer.Name
		view.CPF = customer.CPF
		view.PersonalData = &shareLinkDomain.PersonalDataView{
			Email:         customer.Email,
			Phone:         customer.Phone,
			BirthDate:     customer.BirthDate,
			MaritalStatus: customer.MaritalStatus,
		}
	}

	if perms.Address {
		view.Address = &shareLinkDomain.AddressView{
			Street:       customer.Address.Street,
			Number:       customer.Address.Number,
			Complement:   customer.Address.Complement,
			Neighborhood: customer.Address.Neighborhood,
			City:         customer.Address.City,
			State:        customer.Address.State,
			ZipCode:      customer.Address.ZipCode,
		}
	}

	if perms.FinancialData {
		view.FinancialData = &shareLinkDomain.FinancialDataView{
			Profession:     customer.Profession,
			EmploymentType: customer.EmploymentType,
			MonthlyIncome:  customer.MonthlyIncome,
			CompanyName:    customer.CompanyName,
			HasProperty:    customer.HasProperty,
			PropertyValue:  customer.PropertyValue,
			PropertyType:   customer.PropertyType,
		}
	}

	if perms.Documents {
		docs := make([]shareLinkDomain.DocumentSnapshot, len(link.Documents))
		copy(docs, link.Documents)
		view.UploadedDocuments = docs
	}

	if perms.Notes {
		notes := customer.Notes
		view.Notes = &notes
	}

	return view
}

// NewFieldProjector creates the default FieldProjector.
func NewFieldProjector() FieldProjector {
	return &fieldProjector{}
}
