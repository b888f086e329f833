package repositories

import (
	"database/sql"

	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/store"
)

// Row holders read every column through a nullable type so the same scan code
// serves both the owning table and a LEFT JOIN that found nothing.

var (
	customerColumns = []string{
		"first_name", "last_name", "address1", "address2", "city",
		"state", "postal_code", "phone_number", "start_date",
	}
	productColumns = []string{
		"name", "manufacturer", "style", "purchase_price", "sale_price",
		"quantity_on_hand", "commission_percentage",
	}
	salespersonColumns = []string{
		"first_name", "last_name", "address1", "address2", "city",
		"state", "postal_code", "phone_number", "start_date",
		"termination_date", "manager",
	}
	saleColumns     = []string{"product_id", "salesperson_id", "customer_id", "sale_date"}
	discountColumns = []string{"product_id", "begin_date", "end_date", "discount_percentage"}
)

type customerRow struct {
	id                                            sql.NullInt64
	firstName, lastName, address1, address2, city sql.NullString
	state, postalCode, phoneNumber                sql.NullString
	startDate                                     sql.NullTime
}

func (r *customerRow) dest() []any {
	return []any{
		&r.id, &r.firstName, &r.lastName, &r.address1, &r.address2, &r.city,
		&r.state, &r.postalCode, &r.phoneNumber, &r.startDate,
	}
}

func (r *customerRow) entity() *models.Customer {
	if !r.id.Valid {
		return nil
	}
	return &models.Customer{
		CustomerID:  r.id.Int64,
		FirstName:   r.firstName.String,
		LastName:    r.lastName.String,
		Address1:    r.address1.String,
		Address2:    r.address2.String,
		City:        r.city.String,
		State:       r.state.String,
		PostalCode:  r.postalCode.String,
		PhoneNumber: r.phoneNumber.String,
		StartDate:   store.TimePtr(r.startDate),
	}
}

func customerValues(c *models.Customer) []any {
	return []any{
		c.FirstName, c.LastName, c.Address1, c.Address2, c.City,
		c.State, c.PostalCode, c.PhoneNumber, store.NullTime(c.StartDate),
	}
}

type productRow struct {
	id                                 sql.NullInt64
	name, manufacturer, style          sql.NullString
	purchasePrice, salePrice, quantity sql.NullInt64
	commissionPercentage               sql.NullInt64
}

func (r *productRow) dest() []any {
	return []any{
		&r.id, &r.name, &r.manufacturer, &r.style, &r.purchasePrice,
		&r.salePrice, &r.quantity, &r.commissionPercentage,
	}
}

func (r *productRow) entity() *models.Product {
	if !r.id.Valid {
		return nil
	}
	return &models.Product{
		ProductID:            r.id.Int64,
		Name:                 r.name.String,
		Manufacturer:         r.manufacturer.String,
		Style:                r.style.String,
		PurchasePrice:        int(r.purchasePrice.Int64),
		SalePrice:            int(r.salePrice.Int64),
		QuantityOnHand:       int(r.quantity.Int64),
		CommissionPercentage: int(r.commissionPercentage.Int64),
	}
}

func productValues(p *models.Product) []any {
	return []any{
		p.Name, p.Manufacturer, p.Style, p.PurchasePrice, p.SalePrice,
		p.QuantityOnHand, p.CommissionPercentage,
	}
}

type salespersonRow struct {
	id                                            sql.NullInt64
	firstName, lastName, address1, address2, city sql.NullString
	state, postalCode, phoneNumber                sql.NullString
	startDate, terminationDate                    sql.NullTime
	manager                                       sql.NullString
}

func (r *salespersonRow) dest() []any {
	return []any{
		&r.id, &r.firstName, &r.lastName, &r.address1, &r.address2, &r.city,
		&r.state, &r.postalCode, &r.phoneNumber, &r.startDate,
		&r.terminationDate, &r.manager,
	}
}

func (r *salespersonRow) entity() *models.Salesperson {
	if !r.id.Valid {
		return nil
	}
	return &models.Salesperson{
		SalespersonID:   r.id.Int64,
		FirstName:       r.firstName.String,
		LastName:        r.lastName.String,
		Address1:        r.address1.String,
		Address2:        r.address2.String,
		City:            r.city.String,
		State:           r.state.String,
		PostalCode:      r.postalCode.String,
		PhoneNumber:     r.phoneNumber.String,
		StartDate:       store.TimePtr(r.startDate),
		TerminationDate: store.TimePtr(r.terminationDate),
		Manager:         r.manager.String,
	}
}

func salespersonValues(s *models.Salesperson) []any {
	return []any{
		s.FirstName, s.LastName, s.Address1, s.Address2, s.City,
		s.State, s.PostalCode, s.PhoneNumber, store.NullTime(s.StartDate),
		store.NullTime(s.TerminationDate), s.Manager,
	}
}
