package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Discount is a time-boxed percentage off a product's sale price.
// DiscountPercentage is a fraction (0.15 means 15%).
type Discount struct {
	DiscountID         int64
	ProductID          int64
	BeginDate          *time.Time
	EndDate            *time.Time
	DiscountPercentage decimal.NullDecimal

	Product *Product
}

// ActiveOn reports whether the discount window contains t. Open ends are unbounded.
func (d Discount) ActiveOn(t time.Time) bool {
	if d.BeginDate != nil && t.Before(*d.BeginDate) {
		return false
	}
	if d.EndDate != nil && t.After(*d.EndDate) {
		return false
	}
	return true
}
