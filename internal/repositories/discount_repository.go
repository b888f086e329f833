package repositories

import (
	"database/sql"

	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"

	"github.com/shopspring/decimal"
)

var DiscountFields = query.Fields{
	{Name: "DiscountId", Column: "d.discount_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "ProductId", Column: "d.product_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "BeginDate", Column: "d.begin_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
	{Name: "EndDate", Column: "d.end_date", Kind: query.Date, Filterable: true, Sortable: true, Nullable: true},
	{Name: "DiscountPercentage", Column: "d.discount_percentage", Kind: query.Decimal, Filterable: true, Sortable: true, Nullable: true},
}

type discountRow struct {
	id, productID      sql.NullInt64
	beginDate, endDate sql.NullTime
	percentage         decimal.NullDecimal

	product productRow
}

func (r *discountRow) dest() []any {
	dest := []any{&r.id, &r.productID, &r.beginDate, &r.endDate, &r.percentage}
	return append(dest, r.product.dest()...)
}

func (r *discountRow) entity() *models.Discount {
	return &models.Discount{
		DiscountID:         r.id.Int64,
		ProductID:          r.productID.Int64,
		BeginDate:          store.TimePtr(r.beginDate),
		EndDate:            store.TimePtr(r.endDate),
		DiscountPercentage: r.percentage,
		Product:            r.product.entity(),
	}
}

var discountMapping = store.Mapping[models.Discount]{
	Table:   "discounts",
	Alias:   "d",
	Key:     "discount_id",
	Columns: discountColumns,
	Values: func(d *models.Discount) []any {
		return []any{d.ProductID, store.NullTime(d.BeginDate), store.NullTime(d.EndDate), d.DiscountPercentage}
	},
	ID:    func(d *models.Discount) int64 { return d.DiscountID },
	SetID: func(d *models.Discount, id int64) { d.DiscountID = id },
	Joins: "LEFT JOIN products p ON p.product_id = d.product_id",
	Extra: store.Qualify("p", "product_id", productColumns),
	Scan: func(sc store.Scanner) (*models.Discount, error) {
		var r discountRow
		if err := sc.Scan(r.dest()...); err != nil {
			return nil, err
		}
		return r.entity(), nil
	},
	Fields: DiscountFields,
}

// DiscountRepository loads each discount with its product.
type DiscountRepository struct {
	*store.Set[models.Discount]
}

func NewDiscountRepository(uow *store.UnitOfWork) DiscountRepository {
	return DiscountRepository{store.NewSet(uow, discountMapping)}
}

// Update does nothing; tracked discounts are written back by Save.
func (DiscountRepository) Update(*models.Discount) {}

var _ Repository[models.Discount] = DiscountRepository{}
