package repositories

import (
	"database/sql"

	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"
)

// SaleFields cover the sale row only; joined relations are not addressable.
var SaleFields = query.Fields{
	{Name: "SaleId", Column: "s.sale_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "ProductId", Column: "s.product_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "SalespersonId", Column: "s.salesperson_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "CustomerId", Column: "s.customer_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "SaleDate", Column: "s.sale_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
}

const saleJoins = "LEFT JOIN products p ON p.product_id = s.product_id" +
	" LEFT JOIN salespersons sp ON sp.salesperson_id = s.salesperson_id" +
	" LEFT JOIN customers cu ON cu.customer_id = s.customer_id"

func saleExtra() []string {
	extra := store.Qualify("p", "product_id", productColumns)
	extra = append(extra, store.Qualify("sp", "salesperson_id", salespersonColumns)...)
	return append(extra, store.Qualify("cu", "customer_id", customerColumns)...)
}

type saleRow struct {
	id, productID, salespersonID, customerID sql.NullInt64
	saleDate                                 sql.NullTime

	product     productRow
	salesperson salespersonRow
	customer    customerRow
}

func (r *saleRow) dest() []any {
	dest := []any{&r.id, &r.productID, &r.salespersonID, &r.customerID, &r.saleDate}
	dest = append(dest, r.product.dest()...)
	dest = append(dest, r.salesperson.dest()...)
	return append(dest, r.customer.dest()...)
}

func (r *saleRow) entity() *models.Sale {
	return &models.Sale{
		SaleID:        r.id.Int64,
		ProductID:     r.productID.Int64,
		SalespersonID: r.salespersonID.Int64,
		CustomerID:    r.customerID.Int64,
		SaleDate:      store.TimePtr(r.saleDate),
		Product:       r.product.entity(),
		Salesperson:   r.salesperson.entity(),
		Customer:      r.customer.entity(),
	}
}

var saleMapping = store.Mapping[models.Sale]{
	Table:   "sales",
	Alias:   "s",
	Key:     "sale_id",
	Columns: saleColumns,
	Values: func(s *models.Sale) []any {
		return []any{s.ProductID, s.SalespersonID, s.CustomerID, store.NullTime(s.SaleDate)}
	},
	ID:    func(s *models.Sale) int64 { return s.SaleID },
	SetID: func(s *models.Sale, id int64) { s.SaleID = id },
	Joins: saleJoins,
	Extra: saleExtra(),
	Scan: func(sc store.Scanner) (*models.Sale, error) {
		var r saleRow
		if err := sc.Scan(r.dest()...); err != nil {
			return nil, err
		}
		return r.entity(), nil
	},
	Fields: SaleFields,
}

// SaleRepository loads each sale with its product, salesperson and customer.
type SaleRepository struct {
	*store.Set[models.Sale]
}

func NewSaleRepository(uow *store.UnitOfWork) SaleRepository {
	return SaleRepository{store.NewSet(uow, saleMapping)}
}

// Update does nothing; tracked sales are written back by Save.
func (SaleRepository) Update(*models.Sale) {}

var _ Repository[models.Sale] = SaleRepository{}
