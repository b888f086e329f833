package dto

import "bespokedbikes/internal/domain/models"

type ProductDto struct {
	ProductID            int64  `json:"productId"`
	Name                 string `json:"name"`
	Manufacturer         string `json:"manufacturer"`
	Style                string `json:"style"`
	PurchasePrice        int    `json:"purchasePrice"`
	SalePrice            int    `json:"salePrice"`
	QuantityOnHand       int    `json:"quantityOnHand"`
	CommissionPercentage int    `json:"commissionPercentage"`
}

type ProductForManipulationDto struct {
	Name                 string `json:"name" validate:"max=100"`
	Manufacturer         string `json:"manufacturer" validate:"max=100"`
	Style                string `json:"style" validate:"max=50"`
	PurchasePrice        int    `json:"purchasePrice"`
	SalePrice            int    `json:"salePrice"`
	QuantityOnHand       int    `json:"quantityOnHand"`
	CommissionPercentage int    `json:"commissionPercentage"`
}

type ProductForCreationDto struct {
	ProductForManipulationDto
}

type ProductForUpdateDto struct {
	ProductForManipulationDto
}

func ProductToDto(p *models.Product) ProductDto {
	return ProductDto{
		ProductID:            p.ProductID,
		Name:                 p.Name,
		Manufacturer:         p.Manufacturer,
		Style:                p.Style,
		PurchasePrice:        p.PurchasePrice,
		SalePrice:            p.SalePrice,
		QuantityOnHand:       p.QuantityOnHand,
		CommissionPercentage: p.CommissionPercentage,
	}
}

// productRef maps an optional related product.
func productRef(p *models.Product) *ProductDto {
	if p == nil {
		return nil
	}
	d := ProductToDto(p)
	return &d
}

func ProductFromCreation(in ProductForCreationDto) *models.Product {
	p := &models.Product{}
	ApplyProduct(in.ProductForManipulationDto, p)
	return p
}

func ApplyProduct(in ProductForManipulationDto, p *models.Product) {
	p.Name = in.Name
	p.Manufacturer = in.Manufacturer
	p.Style = in.Style
	p.PurchasePrice = in.PurchasePrice
	p.SalePrice = in.SalePrice
	p.QuantityOnHand = in.QuantityOnHand
	p.CommissionPercentage = in.CommissionPercentage
}

func ProductToUpdate(p *models.Product) ProductForUpdateDto {
	return ProductForUpdateDto{ProductForManipulationDto{
		Name:                 p.Name,
		Manufacturer:         p.Manufacturer,
		Style:                p.Style,
		PurchasePrice:        p.PurchasePrice,
		SalePrice:            p.SalePrice,
		QuantityOnHand:       p.QuantityOnHand,
		CommissionPercentage: p.CommissionPercentage,
	}}
}
