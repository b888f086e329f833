package models

import "time"

type Salesperson struct {
	SalespersonID   int64
	FirstName       string
	LastName        string
	Address1        string
	Address2        string
	City            string
	State           string
	PostalCode      string
	PhoneNumber     string
	StartDate       *time.Time
	TerminationDate *time.Time
	Manager         string
}
