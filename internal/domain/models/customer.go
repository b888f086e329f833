package models

import "time"

// Customer is a retail buyer.
type Customer struct {
	CustomerID  int64
	FirstName   string
	LastName    string
	Address1    string
	Address2    string
	City        string
	State       string
	PostalCode  string
	PhoneNumber string
	StartDate   *time.Time
}
