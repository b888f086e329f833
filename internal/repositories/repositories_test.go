package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"regexp"
	"strings"
	"testing"
	"time"

	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"
	"bespokedbikes/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	customerSelect = "SELECT c.customer_id, c.first_name, c.last_name, c.address1, c.address2, c.city, c.state, c.postal_code, c.phone_number, c.start_date FROM customers c"
	productSelect  = "SELECT p.product_id, p.name, p.manufacturer, p.style, p.purchase_price, p.sale_price, p.quantity_on_hand, p.commission_percentage FROM products p"
)

func newRepos(t *testing.T) (Repositories, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(store.NewUnitOfWork(db)), mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

func customerRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"customer_id", "first_name", "last_name", "address1", "address2", "city",
		"state", "postal_code", "phone_number", "start_date",
	})
}

func TestCustomerListFiltersByFirstName(t *testing.T) {
	repos, mock := newRepos(t)
	start := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM customers c WHERE BINARY c.first_name = ?")).
		WithArgs("bravo").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q(customerSelect + " WHERE BINARY c.first_name = ? ORDER BY c.customer_id ASC LIMIT ? OFFSET ?")).
		WithArgs("bravo", 10, 0).
		WillReturnRows(customerRows().AddRow(2, "bravo", "Two", "2 Main St", nil, "Austin", "TX", "78701", "555-0102", start))

	page, err := repos.Customers.List(context.Background(), query.Parameters{Filters: "FirstName == bravo"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	c := page.Items[0]
	assert.Equal(t, int64(2), c.CustomerID)
	assert.Equal(t, "bravo", c.FirstName)
	assert.Equal(t, "", c.Address2)
	require.NotNil(t, c.StartDate)
	assert.True(t, start.Equal(*c.StartDate))
	assert.Equal(t, 1, page.TotalCount)
	assert.Equal(t, 1, page.TotalPages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerListIgnoresUnknownField(t *testing.T) {
	repos, mock := newRepos(t)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM customers c")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	page, err := repos.Customers.List(context.Background(), query.Parameters{Filters: "Nickname == bravo"})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalPages)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestProductListFiltersByPurchasePrice(t *testing.T) {
	repos, mock := newRepos(t)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM products p WHERE p.purchase_price = ?")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q(productSelect + " WHERE p.purchase_price = ? ORDER BY p.product_id ASC LIMIT ? OFFSET ?")).
		WithArgs(int64(2), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"product_id", "name", "manufacturer", "style", "purchase_price",
			"sale_price", "quantity_on_hand", "commission_percentage",
		}).AddRow(4, "Roadster", "Trek", "Road", 2, 5, 9, 10))

	page, err := repos.Products.List(context.Background(), query.Parameters{Filters: "PurchasePrice == 2"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, models.Product{
		ProductID: 4, Name: "Roadster", Manufacturer: "Trek", Style: "Road",
		PurchasePrice: 2, SalePrice: 5, QuantityOnHand: 9, CommissionPercentage: 10,
	}, *page.Items[0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func saleSelect() string {
	cols := store.Qualify("s", "sale_id", saleColumns)
	cols = append(cols, saleExtra()...)
	return "SELECT " + strings.Join(cols, ", ") + " FROM sales s " + saleJoins
}

func saleRowsWith(values ...[]driver.Value) *sqlmock.Rows {
	names := make([]string, 0, 35)
	for _, c := range append(store.Qualify("s", "sale_id", saleColumns), saleExtra()...) {
		names = append(names, strings.ReplaceAll(c, ".", "_"))
	}
	rows := sqlmock.NewRows(names)
	for _, v := range values {
		rows.AddRow(v...)
	}
	return rows
}

// saleValues builds a joined sale row; nil related ids leave their columns NULL.
func saleValues(id, productID, salespersonID, customerID int64, withRelations bool) []driver.Value {
	v := []driver.Value{id, productID, salespersonID, customerID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	if withRelations {
		v = append(v, productID, "Roadster", "Trek", "Road", 2, 5, 9, 10)
		v = append(v, salespersonID, "Sam", "Seller", "", "", "Austin", "TX", "78701", "555-0200", nil, nil, "Morgan")
		v = append(v, customerID, "Cara", "Client", "", "", "Austin", "TX", "78701", "555-0300", nil)
		return v
	}
	return append(v, make([]driver.Value, 8+12+10)...)
}

func TestSaleListSecondPageOfOne(t *testing.T) {
	repos, mock := newRepos(t)

	mock.ExpectQuery(q("SELECT COUNT(*) FROM sales s " + saleJoins)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(q(saleSelect() + " ORDER BY s.sale_id ASC LIMIT ? OFFSET ?")).
		WithArgs(1, 1).
		WillReturnRows(saleRowsWith(saleValues(2, 4, 5, 6, true)))

	page, err := repos.Sales.List(context.Background(), query.Parameters{
		Params: paging.Params{PageNumber: 2, PageSize: 1},
	})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	s := page.Items[0]
	assert.Equal(t, int64(2), s.SaleID)
	require.NotNil(t, s.Product)
	assert.Equal(t, "Roadster", s.Product.Name)
	require.NotNil(t, s.Salesperson)
	assert.Equal(t, "Morgan", s.Salesperson.Manager)
	assert.Nil(t, s.Salesperson.TerminationDate)
	require.NotNil(t, s.Customer)
	assert.Equal(t, int64(6), s.Customer.CustomerID)

	assert.Equal(t, 2, page.PageNumber)
	assert.Equal(t, 1, page.PageSize)
	assert.Equal(t, 3, page.TotalCount)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.HasPrevious())
	assert.True(t, page.HasNext())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaleGetByIDLeavesMissingRelationsNil(t *testing.T) {
	repos, mock := newRepos(t)

	mock.ExpectQuery(q(saleSelect() + " WHERE s.sale_id = ? LIMIT 1")).
		WithArgs(9).
		WillReturnRows(saleRowsWith(saleValues(9, 40, 50, 60, false)))

	s, err := repos.Sales.GetByID(context.Background(), 9)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, int64(40), s.ProductID)
	assert.Nil(t, s.Product)
	assert.Nil(t, s.Salesperson)
	assert.Nil(t, s.Customer)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDiscountListFiltersByProduct(t *testing.T) {
	repos, mock := newRepos(t)

	discountSelect := "SELECT d.discount_id, d.product_id, d.begin_date, d.end_date, d.discount_percentage, " +
		"p.product_id, p.name, p.manufacturer, p.style, p.purchase_price, p.sale_price, p.quantity_on_hand, p.commission_percentage " +
		"FROM discounts d LEFT JOIN products p ON p.product_id = d.product_id"

	mock.ExpectQuery(q("SELECT COUNT(*) FROM discounts d LEFT JOIN products p ON p.product_id = d.product_id WHERE d.product_id = ?")).
		WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(q(discountSelect + " WHERE d.product_id = ? ORDER BY d.discount_id ASC LIMIT ? OFFSET ?")).
		WithArgs(int64(4), 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"discount_id", "product_id", "begin_date", "end_date", "discount_percentage",
			"p_product_id", "name", "manufacturer", "style", "purchase_price", "sale_price", "quantity_on_hand", "commission_percentage",
		}).AddRow(1, 4, nil, nil, "0.15", 4, "Roadster", "Trek", "Road", 2, 5, 9, 10))

	page, err := repos.Discounts.List(context.Background(), query.Parameters{Filters: "ProductId == 4"})
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	d := page.Items[0]
	require.True(t, d.DiscountPercentage.Valid)
	assert.Equal(t, "0.15", d.DiscountPercentage.Decimal.String())
	assert.Nil(t, d.BeginDate)
	require.NotNil(t, d.Product)
	assert.True(t, d.ActiveOn(time.Now()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerAddSaveThenGet(t *testing.T) {
	repos, mock := newRepos(t)
	ctx := context.Background()

	c := &models.Customer{FirstName: "Ada", LastName: "Lovelace", City: "London"}
	require.NoError(t, repos.Customers.Add(c))

	mock.ExpectBegin()
	mock.ExpectExec(q("INSERT INTO customers (first_name, last_name, address1, address2, city, state, postal_code, phone_number, start_date) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)")).
		WithArgs("Ada", "Lovelace", "", "", "London", "", "", "", sql.NullTime{}).
		WillReturnResult(sqlmock.NewResult(7, 1))
	mock.ExpectCommit()

	saved, err := repos.Customers.Save(ctx)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, int64(7), c.CustomerID)

	got, err := repos.Customers.GetByID(ctx, 7)
	require.NoError(t, err)
	assert.Same(t, c, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCustomerDeleteRemovesRow(t *testing.T) {
	repos, mock := newRepos(t)
	ctx := context.Background()

	mock.ExpectQuery(q(customerSelect + " WHERE c.customer_id = ? LIMIT 1")).
		WithArgs(1).
		WillReturnRows(customerRows().AddRow(1, "alpha", "One", "", "", "", "", "", "", nil))

	c, err := repos.Customers.GetByID(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, c)
	require.NoError(t, repos.Customers.Delete(c))

	mock.ExpectBegin()
	mock.ExpectExec(q("DELETE FROM customers WHERE customer_id = ?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repos.Customers.Save(ctx)
	require.NoError(t, err)
	assert.True(t, saved)

	mock.ExpectQuery(q(customerSelect + " WHERE c.customer_id = ? LIMIT 1")).
		WithArgs(1).
		WillReturnError(sql.ErrNoRows)

	gone, err := repos.Customers.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, gone)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateIsNoOpAndTrackedChangesStillSave(t *testing.T) {
	repos, mock := newRepos(t)
	ctx := context.Background()

	mock.ExpectQuery(q(productSelect + " WHERE p.product_id = ? LIMIT 1")).
		WithArgs(4).
		WillReturnRows(sqlmock.NewRows([]string{
			"product_id", "name", "manufacturer", "style", "purchase_price",
			"sale_price", "quantity_on_hand", "commission_percentage",
		}).AddRow(4, "Roadster", "Trek", "Road", 2, 5, 9, 10))

	p, err := repos.Products.GetByID(ctx, 4)
	require.NoError(t, err)

	before := *p
	repos.Products.Update(p)
	assert.Equal(t, before, *p)
	ok, err := repos.UOW.Save(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	p.QuantityOnHand = 8
	mock.ExpectBegin()
	mock.ExpectExec(q("UPDATE products SET name = ?, manufacturer = ?, style = ?, purchase_price = ?, sale_price = ?, quantity_on_hand = ?, commission_percentage = ? WHERE product_id = ?")).
		WithArgs("Roadster", "Trek", "Road", 2, 5, 8, 10, 4).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	saved, err := repos.Products.Save(ctx)
	require.NoError(t, err)
	assert.True(t, saved)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestAddressAndPhoneAreFilterOnly(t *testing.T) {
	for _, fields := range []query.Fields{CustomerFields, SalespersonFields} {
		s := query.ParseSort("Address1,Address2,PhoneNumber,-City", fields)
		require.Len(t, s, 1)
		assert.True(t, s[0].Desc)

		for _, name := range []string{"Address1", "Address2", "PhoneNumber"} {
			f, ok := fields.Lookup(name)
			require.True(t, ok, name)
			assert.True(t, f.Filterable, name)
		}
	}
}
