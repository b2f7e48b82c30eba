package repository

import (
	"database/sql"

	customerDomain "github.com/allisson/sharelink/internal/customer/domain"
)

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer reads the customers columns shared by both dialects into customer. idDest
// receives the primary key column so each dialect can decode it its own way.
func scanCustomer(row rowScanner, customer *customerDomain.Customer, idDest any) error {
	var email, phone, maritalStatus sql.NullString
	var street, number, complement, neighborhood, city, state, zipCode sql.NullString
	var profession, employmentType, companyName, propertyType, notes sql.NullString
	var birthDate sql.NullTime
	var monthlyIncome, propertyValue sql.NullFloat64
	var hasProperty sql.NullBool

	err := row.Scan(
		idDest,
		&customer.Name,
		&customer.CPF,
		&email,
		&phone,
		&birthDate,
		&maritalStatus,
		&street,
		&number,
		&complement,
		&neighborhood,
		&city,
		&state,
		&zipCode,
		&profession,
		&employmentType,
		&monthlyIncome,
		&companyName,
		&hasProperty,
		&propertyValue,
		&propertyType,
		&notes,
		&customer.CreatedAt,
	)
	if err != nil {
		return err
	}

	customer.Email = email.String
	customer.Phone = phone.String
	customer.MaritalStatus = maritalStatus.String
	if birthDate.Valid {
		value := birthDate.Time
		customer.BirthDate = &value
	}
	customer.Address = customerDomain.Address{
		Street:       street.String,
		Number:       number.String,
		Complement:   complement.String,
		Neighborhood: neighborhood.String,
		City:         city.String,
		State:        state.String,
		ZipCode:      zipCode.String,
	}
	customer.Profession = profession.String
	customer.EmploymentType = employmentType.String
	customer.MonthlyIncome = monthlyIncome.Float64
	customer.CompanyName = companyName.String
	customer.HasProperty = hasProperty.Bool
	customer.PropertyValue = propertyValue.Float64
	customer.PropertyType = propertyType.String
	customer.Notes = notes.String

	return nil
}
