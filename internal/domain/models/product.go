package models

// Product is a bicycle model carried in stock. Prices are whole currency units.
type Product struct {
	ProductID            int64
	Name                 string
	Manufacturer         string
	Style                string
	PurchasePrice        int
	SalePrice            int
	QuantityOnHand       int
	CommissionPercentage int
}
