package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
	shareLinkDomain "github.com/allisson/sharelink/internal/sharelink/domain"
)

func newTestCustomer() *customerDomain.Customer {
	birthDate := time.Date(1985, 3, 14, 0, 0, 0, 0, time.UTC)
	return &customerDomain.Customer{
		ID:            uuid.New(),
		Name:          "Maria Souza",
		CPF:           "123.456.789-00",
		Email:         "maria@example.com",
		Phone:         "+55 11 99999-0000",
		BirthDate:     &birthDate,
		MaritalStatus: "married",
		Address: customerDomain.Address{
			Street:       "Rua das Flores",
			Number:       "100",
			Neighborhood: "Centro",
			City:         "Sao Paulo",
			State:        "SP",
			ZipCode:      "01000-000",
		},
		Profession:     "Engineer",
		EmploymentType: "clt",
		MonthlyIncome:  12000,
		CompanyName:    "ACME",
		HasProperty:    true,
		PropertyValue:  450000,
		PropertyType:   "apartment",
		Documents: []customerDomain.Document{
			{ID: uuid.New(), FileName: "rg.pdf", Category: "identity", StoragePath: "customers/1/rg.pdf"},
		},
		Notes: "prefers contact by email",
	}
}

func TestNewFieldProjector(t *testing.T) {
	projector := NewFieldProjector()
	assert.NotNil(t, projector)
	assert.IsType(t, &fieldProjector{}, projector)
}

func TestFieldProjector_Project_AllCombinations(t *testing.T) {
	projector := NewFieldProjector()
	customer := newTestCustomer()
	snapshot := []shareLinkDomain.DocumentSnapshot{
		{ID: uuid.New(), FileName: "old-contract.pdf", Category: "contract", StoragePath: "customers/1/old.pdf"},
	}

	for mask := 0; mask < 32; mask++ {
		perms := shareLinkDomain.Permissions{
			PersonalData:  mask&1 != 0,
			Address:       mask&2 != 0,
			FinancialData: mask&4 != 0,
			Documents:     mask&8 != 0,
			Notes:         mask&16 != 0,
		}
		link := &shareLinkDomain.ShareLink{Permissions: perms, Documents: snapshot}

		t.Run(fmt.Sprintf("%+v", perms), func(t *testing.T) {
			view := projector.Project(customer, link)

			assert.Equal(t, customer.ID, view.ID)

			if perms.PersonalData {
				assert.Equal(t, customer.Name, view.Name)
				assert.Equal(t, customer.CPF, view.CPF)
				if assert.NotNil(t, view.PersonalData) {
					assert.Equal(t, customer.Email, view.PersonalData.Email)
					assert.Equal(t, customer.Phone, view.PersonalData.Phone)
					assert.Equal(t, customer.BirthDate, view.PersonalData.BirthDate)
					assert.Equal(t, customer.MaritalStatus, view.PersonalData.MaritalStatus)
				}
			} else {
				assert.Equal(t, shareLinkDomain.RedactionMarker, view.Name)
				assert.Equal(t, shareLinkDomain.RedactionMarker, view.CPF)
				assert.Nil(t, view.PersonalData)
			}

			if perms.Address {
				if assert.NotNil(t, view.Address) {
					assert.Equal(t, customer.Address.Street, view.Address.Street)
					assert.Equal(t, customer.Address.ZipCode, view.Address.ZipCode)
				}
			} else {
				assert.Nil(t, view.Address)
			}

			if perms.FinancialData {
				if assert.NotNil(t, view.FinancialData) {
					assert.Equal(t, customer.MonthlyIncome, view.FinancialData.MonthlyIncome)
					assert.Equal(t, customer.HasProperty, view.FinancialData.HasProperty)
					assert.Equal(t, customer.PropertyValue, view.FinancialData.PropertyValue)
					assert.Equal(t, customer.PropertyType, view.FinancialData.PropertyType)
				}
			} else {
				assert.Nil(t, view.FinancialData)
			}

			if perms.Documents {
				assert.Equal(t, snapshot, view.UploadedDocuments)
			} else {
				assert.Nil(t, view.UploadedDocuments)
			}

			if perms.Notes {
				if assert.NotNil(t, view.Notes) {
					assert.Equal(t, customer.Notes, *view.Notes)
				}
			} else {
				assert.Nil(t, view.Notes)
			}
		})
	}
}

func TestFieldProjector_Project_UsesSnapshotNotLiveDocuments(t *testing.T) {
	projector := NewFieldProjector()
	customer := newTestCustomer()
	snapshotDoc := shareLinkDomain.DocumentSnapshot{ID: uuid.New(), FileName: "deleted.pdf"}
	link := &shareLinkDomain.ShareLink{
		Permissions: shareLinkDomain.Permissions{Documents: true},
		Documents:   []shareLinkDomain.DocumentSnapshot{snapshotDoc},
	}

	view := projector.Project(customer, link)

	assert.Equal(t, []shareLinkDomain.DocumentSnapshot{snapshotDoc}, view.UploadedDocuments)

	view.UploadedDocuments[0].FileName = "mutated.pdf"
	assert.Equal(t, "deleted.pdf", link.Documents[0].FileName)
}

func TestFieldProjector_Project_Deterministic(t *testing.T) {
	projector := NewFieldProjector()
	customer := newTestCustomer()
	link := &shareLinkDomain.ShareLink{
		Permissions: shareLinkDomain.Permissions{PersonalData: true, Notes: true},
	}

	assert.Equal(t, projector.Project(customer, link), projector.Project(customer, link))
}
