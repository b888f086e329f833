package repositories

import (
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"
)

// SalespersonFields matches CustomerFields: address lines and the phone
// number are filter-only.
var SalespersonFields = query.Fields{
	{Name: "SalespersonId", Column: "sp.salesperson_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "FirstName", Column: "sp.first_name", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "LastName", Column: "sp.last_name", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "Address1", Column: "sp.address1", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "Address2", Column: "sp.address2", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "City", Column: "sp.city", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "State", Column: "sp.state", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "PostalCode", Column: "sp.postal_code", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "PhoneNumber", Column: "sp.phone_number", Kind: query.String, Filterable: true, Nullable: true},
	{Name: "StartDate", Column: "sp.start_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
	{Name: "TerminationDate", Column: "sp.termination_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
	{Name: "Manager", Column: "sp.manager", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
}

var salespersonMapping = store.Mapping[models.Salesperson]{
	Table:   "salespersons",
	Alias:   "sp",
	Key:     "salesperson_id",
	Columns: salespersonColumns,
	Values:  salespersonValues,
	ID:      func(s *models.Salesperson) int64 { return s.SalespersonID },
	SetID:   func(s *models.Salesperson, id int64) { s.SalespersonID = id },
	Scan: func(s store.Scanner) (*models.Salesperson, error) {
		var r salespersonRow
		if err := s.Scan(r.dest()...); err != nil {
			return nil, err
		}
		return r.entity(), nil
	},
	Fields: SalespersonFields,
}

type SalespersonRepository struct {
	*store.Set[models.Salesperson]
}

func NewSalespersonRepository(uow *store.UnitOfWork) SalespersonRepository {
	return SalespersonRepository{store.NewSet(uow, salespersonMapping)}
}

// Update does nothing; tracked salespersons are written back by Save.
func (SalespersonRepository) Update(*models.Salesperson) {}

var _ Repository[models.Salesperson] = SalespersonRepository{}
