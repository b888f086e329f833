package repositories

import (
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"
)

// CustomerFields lists what list requests may filter and sort customers by.
// Address lines and the phone number are filter-only; a sort on them is
// dropped like any other undeclared field.
var CustomerFields = query.Fields{
	{Name: "CustomerId", Column: "c.customer_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "FirstName", Column: "c.first_name", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "LastName", Column: "c.last_name", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "Address1", Column: "c.address1", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "Address2", Column: "c.address2", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "City", Column: "c.city", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "State", Column: "c.state", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "PostalCode", Column: "c.postal_code", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "PhoneNumber", Column: "c.phone_number", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "StartDate", Column: "c.start_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
}

var customerMapping = store.Mapping[models.Customer]{
	Table:   "customers",
	Alias:   "c",
	Key:     "customer_id",
	Columns: customerColumns,
	Values:  customerValues,
	ID:      func(c *models.Customer) int64 { return c.CustomerID },
	SetID:   func(c *models.Customer, id int64) { c.CustomerID = id },
	Scan: func(s store.Scanner) (*models.Customer, error) {
		var r customerRow
		if err := s.Scan(r.dest()...); err != nil {
			return nil, err
		}
		return r.entity(), nil
	},
	Fields: CustomerFields,
}

type CustomerRepository struct {
	*store.Set[models.Customer]
}

func NewCustomerRepository(uow *store.UnitOfWork) CustomerRepository {
	return CustomerRepository{store.NewSet(uow, customerMapping)}
}

// Update is where customer-specific rules would run before Save. Changes to a
// customer loaded through GetByID are already tracked, so it does nothing.
func (CustomerRepository) Update(*models.Customer) {}

var _ Repository[models.Customer] = CustomerRepository{}
