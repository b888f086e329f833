package dto

import (
	"time"

	"bespokedbikes/internal/domain/models"
)

type CustomerDto struct {
	CustomerID  int64      `json:"customerId"`
	FirstName   string     `json:"firstName"`
	LastName    string     `json:"lastName"`
	Address1    string     `json:"address1"`
	Address2    string     `json:"address2"`
	City        string     `json:"city"`
	State       string     `json:"state"`
	PostalCode  string     `json:"postalCode"`
	PhoneNumber string     `json:"phoneNumber"`
	StartDate   *time.Time `json:"startDate"`
}

// CustomerForManipulationDto is the writable shape shared by create and update.
type CustomerForManipulationDto struct {
	FirstName   string     `json:"firstName" validate:"max=100"`
	LastName    string     `json:"lastName" validate:"max=100"`
	Address1    string     `json:"address1" validate:"max=200"`
	Address2    string     `json:"address2" validate:"max=200"`
	City        string     `json:"city" validate:"max=100"`
	State       string     `json:"state" validate:"max=50"`
	PostalCode  string     `json:"postalCode" validate:"max=20"`
	PhoneNumber string     `json:"phoneNumber" validate:"max=30"`
	StartDate   *time.Time `json:"startDate"`
}

type CustomerForCreationDto struct {
	CustomerForManipulationDto
}

type CustomerForUpdateDto struct {
	CustomerForManipulationDto
}

func CustomerToDto(c *models.Customer) CustomerDto {
	return CustomerDto{
		CustomerID:  c.CustomerID,
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address1:    c.Address1,
		Address2:    c.Address2,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		PhoneNumber: c.PhoneNumber,
		StartDate:   c.StartDate,
	}
}

func CustomerFromCreation(in CustomerForCreationDto) *models.Customer {
	c := &models.Customer{}
	ApplyCustomer(in.CustomerForManipulationDto, c)
	return c
}

// ApplyCustomer copies every writable field of in onto c.
func ApplyCustomer(in CustomerForManipulationDto, c *models.Customer) {
	c.FirstName = in.FirstName
	c.LastName = in.LastName
	c.Address1 = in.Address1
	c.Address2 = in.Address2
	c.City = in.City
	c.State = in.State
	c.PostalCode = in.PostalCode
	c.PhoneNumber = in.PhoneNumber
	c.StartDate = in.StartDate
}

func CustomerToUpdate(c *models.Customer) CustomerForUpdateDto {
	return CustomerForUpdateDto{CustomerForManipulationDto{
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		Address1:    c.Address1,
		Address2:    c.Address2,
		City:        c.City,
		State:       c.State,
		PostalCode:  c.PostalCode,
		PhoneNumber: c.PhoneNumber,
		StartDate:   c.StartDate,
	}}
}
