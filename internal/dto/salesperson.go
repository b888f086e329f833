package dto

import (
	"time"

	"bespokedbikes/internal/domain/models"
)

type SalespersonDto struct {
	SalespersonID   int64      `json:"salespersonId"`
	FirstName       string     `json:"firstName"`
	LastName        string     `json:"lastName"`
	Address1        string     `json:"address1"`
	Address2        string     `json:"address2"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	PostalCode      string     `json:"postalCode"`
	PhoneNumber     string     `json:"phoneNumber"`
	StartDate       *time.Time `json:"startDate"`
	TerminationDate *time.Time `json:"terminationDate"`
	Manager         string     `json:"manager"`
}

type SalespersonForManipulationDto struct {
	FirstName       string     `json:"firstName" validate:"max=100"`
	LastName        string     `json:"lastName" validate:"max=100"`
	Address1        string     `json:"address1" validate:"max=200"`
	Address2        string     `json:"address2" validate:"max=200"`
	City            string     `json:"city" validate:"max=100"`
	State           string     `json:"state" validate:"max=50"`
	PostalCode      string     `json:"postalCode" validate:"max=20"`
	PhoneNumber     string     `json:"phoneNumber" validate:"max=30"`
	StartDate       *time.Time `json:"startDate"`
	TerminationDate *time.Time `json:"terminationDate"`
	Manager         string     `json:"manager" validate:"max=100"`
}

type SalespersonForCreationDto struct {
	SalespersonForManipulationDto
}

type SalespersonForUpdateDto struct {
	SalespersonForManipulationDto
}

func SalespersonToDto(s *models.Salesperson) SalespersonDto {
	return SalespersonDto{
		SalespersonID:   s.SalespersonID,
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Address1:        s.Address1,
		Address2:        s.Address2,
		City:            s.City,
		State:           s.State,
		PostalCode:      s.PostalCode,
		PhoneNumber:     s.PhoneNumber,
		StartDate:       s.StartDate,
		TerminationDate: s.TerminationDate,
		Manager:         s.Manager,
	}
}

func salespersonRef(s *models.Salesperson) *SalespersonDto {
	if s == nil {
		return nil
	}
	d := SalespersonToDto(s)
	return &d
}

func SalespersonFromCreation(in SalespersonForCreationDto) *models.Salesperson {
	s := &models.Salesperson{}
	ApplySalesperson(in.SalespersonForManipulationDto, s)
	return s
}

func ApplySalesperson(in SalespersonForManipulationDto, s *models.Salesperson) {
	s.FirstName = in.FirstName
	s.LastName = in.LastName
	s.Address1 = in.Address1
	s.Address2 = in.Address2
	s.City = in.City
	s.State = in.State
	s.PostalCode = in.PostalCode
	s.PhoneNumber = in.PhoneNumber
	s.StartDate = in.StartDate
	s.TerminationDate = in.TerminationDate
	s.Manager = in.Manager
}

func SalespersonToUpdate(s *models.Salesperson) SalespersonForUpdateDto {
	return SalespersonForUpdateDto{SalespersonForManipulationDto{
		FirstName:       s.FirstName,
		LastName:        s.LastName,
		Address1:        s.Address1,
		Address2:        s.Address2,
		City:            s.City,
		State:           s.State,
		PostalCode:      s.PostalCode,
		PhoneNumber:     s.PhoneNumber,
		StartDate:       s.StartDate,
		TerminationDate: s.TerminationDate,
		Manager:         s.Manager,
	}}
}
