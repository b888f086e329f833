package repositories

import (
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"
)

// Every product field filters and sorts.
var ProductFields = query.Fields{
	{Name: "ProductId", Column: "p.product_id", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "Name", Column: "p.name", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "Manufacturer", Column: "p.manufacturer", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "Style", Column: "p.style", Kind: query.String, Filterable: true, Sortable: true, Nullable: true},
	{Name: "PurchasePrice", Column: "p.purchase_price", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "SalePrice", Column: "p.sale_price", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "QuantityOnHand", Column: "p.quantity_on_hand", Kind: query.Int, Filterable: true, Sortable: true},
	{Name: "CommissionPercentage", Column: "p.commission_percentage", Kind: query.Int, Filterable: true, Sortable: true},
}

var productMapping = store.Mapping[models.Product]{
	Table:   "products",
	Alias:   "p",
	Key:     "product_id",
	Columns: productColumns,
	Values:  productValues,
	ID:      func(p *models.Product) int64 { return p.ProductID },
	SetID:   func(p *models.Product, id int64) { p.ProductID = id },
	Scan: func(s store.Scanner) (*models.Product, error) {
		var r productRow
		if err := s.Scan(r.dest()...); err != nil {
			return nil, err
		}
		return r.entity(), nil
	},
	Fields: ProductFields,
}

type ProductRepository struct {
	*store.Set[models.Product]
}

func NewProductRepository(uow *store.UnitOfWork) ProductRepository {
	return ProductRepository{store.NewSet(uow, productMapping)}
}

// Update does nothing; tracked products are written back by Save.
func (ProductRepository) Update(*models.Product) {}

var _ Repository[models.Product] = ProductRepository{}
