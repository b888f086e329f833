package models

import "time"

// Sale records one product sold by a salesperson to a customer.
// Product, Salesperson and Customer are loaded with the sale and stay nil
// when the referenced row does not exist.
type Sale struct {
	SaleID        int64
	ProductID     int64
	SalespersonID int64
	CustomerID    int64
	SaleDate      *time.Time

	Product     *Product
	Salesperson *Salesperson
	Customer    *Customer
}
