package dto

import (
	"time"

	"bespokedbikes/internal/domain/models"

	"github.com/shopspring/decimal"
)

// DiscountDto serializes DiscountPercentage as a decimal string, e.g. "0.15".
type DiscountDto struct {
	DiscountID         int64               `json:"discountId"`
	ProductID          int64               `json:"productId"`
	BeginDate          *time.Time          `json:"beginDate"`
	EndDate            *time.Time          `json:"endDate"`
	DiscountPercentage decimal.NullDecimal `json:"discountPercentage"`
	Product            *ProductDto         `json:"product"`
}

type DiscountForManipulationDto struct {
	ProductID          int64               `json:"productId"`
	BeginDate          *time.Time          `json:"beginDate"`
	EndDate            *time.Time          `json:"endDate"`
	DiscountPercentage decimal.NullDecimal `json:"discountPercentage"`
}

type DiscountForCreationDto struct {
	DiscountForManipulationDto
}

type DiscountForUpdateDto struct {
	DiscountForManipulationDto
}

func DiscountToDto(d *models.Discount) DiscountDto {
	return DiscountDto{
		DiscountID:         d.DiscountID,
		ProductID:          d.ProductID,
		BeginDate:          d.BeginDate,
		EndDate:            d.EndDate,
		DiscountPercentage: d.DiscountPercentage,
		Product:            productRef(d.Product),
	}
}

func DiscountFromCreation(in DiscountForCreationDto) *models.Discount {
	d := &models.Discount{}
	ApplyDiscount(in.DiscountForManipulationDto, d)
	return d
}

func ApplyDiscount(in DiscountForManipulationDto, d *models.Discount) {
	if d.Product != nil && d.Product.ProductID != in.ProductID {
		d.Product = nil
	}
	d.ProductID = in.ProductID
	d.BeginDate = in.BeginDate
	d.EndDate = in.EndDate
	d.DiscountPercentage = in.DiscountPercentage
}

func DiscountToUpdate(d *models.Discount) DiscountForUpdateDto {
	return DiscountForUpdateDto{DiscountForManipulationDto{
		ProductID:          d.ProductID,
		BeginDate:          d.BeginDate,
		EndDate:            d.EndDate,
		DiscountPercentage: d.DiscountPercentage,
	}}
}
