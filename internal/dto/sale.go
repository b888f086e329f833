package dto

import (
	"time"

	"bespokedbikes/internal/domain/models"
)

// SaleDto embeds the related rows; each is null when the reference is dangling.
type SaleDto struct {
	SaleID        int64           `json:"saleId"`
	ProductID     int64           `json:"productId"`
	SalespersonID int64           `json:"salespersonId"`
	CustomerID    int64           `json:"customerId"`
	SaleDate      *time.Time      `json:"saleDate"`
	Product       *ProductDto     `json:"product"`
	Salesperson   *SalespersonDto `json:"salesperson"`
	Customer      *CustomerDto    `json:"customer"`
}

type SaleForManipulationDto struct {
	ProductID     int64      `json:"productId"`
	SalespersonID int64      `json:"salespersonId"`
	CustomerID    int64      `json:"customerId"`
	SaleDate      *time.Time `json:"saleDate"`
}

type SaleForCreationDto struct {
	SaleForManipulationDto
}

type SaleForUpdateDto struct {
	SaleForManipulationDto
}

func SaleToDto(s *models.Sale) SaleDto {
	return SaleDto{
		SaleID:        s.SaleID,
		ProductID:     s.ProductID,
		SalespersonID: s.SalespersonID,
		CustomerID:    s.CustomerID,
		SaleDate:      s.SaleDate,
		Product:       productRef(s.Product),
		Salesperson:   salespersonRef(s.Salesperson),
		Customer:      customerRef(s.Customer),
	}
}

func customerRef(c *models.Customer) *CustomerDto {
	if c == nil {
		return nil
	}
	d := CustomerToDto(c)
	return &d
}

func SaleFromCreation(in SaleForCreationDto) *models.Sale {
	s := &models.Sale{}
	ApplySale(in.SaleForManipulationDto, s)
	return s
}

// ApplySale copies the writable fields. Related rows loaded with s are
// dropped when their id changes so they never disagree with the foreign key.
func ApplySale(in SaleForManipulationDto, s *models.Sale) {
	if s.Product != nil && s.Product.ProductID != in.ProductID {
		s.Product = nil
	}
	if s.Salesperson != nil && s.Salesperson.SalespersonID != in.SalespersonID {
		s.Salesperson = nil
	}
	if s.Customer != nil && s.Customer.CustomerID != in.CustomerID {
		s.Customer = nil
	}
	s.ProductID = in.ProductID
	s.SalespersonID = in.SalespersonID
	s.CustomerID = in.CustomerID
	s.SaleDate = in.SaleDate
}

func SaleToUpdate(s *models.Sale) SaleForUpdateDto {
	return SaleForUpdateDto{SaleForManipulationDto{
		ProductID:     s.ProductID,
		SalespersonID: s.SalespersonID,
		CustomerID:    s.CustomerID,
		SaleDate:      s.SaleDate,
	}}
}
