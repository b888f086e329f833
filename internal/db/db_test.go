package db

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"bespokedbikes/internal/repositories"
	"bespokedbikes/internal/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func TestMigrateCreatesOnlyMissingTables(t *testing.T) {
	db, mock := newMock(t)

	for _, tbl := range Schema {
		q := mock.ExpectQuery("FROM information_schema.tables").WithArgs(tbl.Name)
		if tbl.Name == "products" {
			q.WillReturnRows(sqlmock.NewRows([]string{"table_name"}).AddRow("products"))
			continue
		}
		q.WillReturnError(sql.ErrNoRows)
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS " + tbl.Name).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	created, err := Migrate(context.Background(), db)
	require.NoError(t, err)
	assert.Equal(t, []string{"salespersons", "customers", "sales", "discounts"}, created)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateStopsOnError(t *testing.T) {
	db, mock := newMock(t)

	mock.ExpectQuery("FROM information_schema.tables").WithArgs("products").WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS products").WillReturnError(sql.ErrConnDone)

	created, err := Migrate(context.Background(), db)
	require.ErrorIs(t, err, sql.ErrConnDone)
	assert.Empty(t, created)
}

func expectEmpty(mock sqlmock.Sqlmock, table string) {
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM ` + table + ` `).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
}

func expectInsert(mock sqlmock.Sqlmock, table string, id int64, args ...driver.Value) {
	mock.ExpectBegin()
	e := mock.ExpectExec("INSERT INTO " + table + " ")
	if len(args) > 0 {
		e.WithArgs(args...)
	}
	e.WillReturnResult(sqlmock.NewResult(id, 1))
	mock.ExpectCommit()
}

func seedOptions() SeedOptions {
	return SeedOptions{
		Products: 1, Salespersons: 1, Customers: 1, Sales: 1, Discounts: 1,
		RandSeed: 7,
		Now:      time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestSeedFillsEmptyTablesInOrder(t *testing.T) {
	db, mock := newMock(t)
	repos := repositories.New(store.NewUnitOfWork(db))
	anyArg := sqlmock.AnyArg()

	expectEmpty(mock, "products")
	expectInsert(mock, "products", 11)
	expectEmpty(mock, "salespersons")
	expectInsert(mock, "salespersons", 21)
	expectEmpty(mock, "customers")
	expectInsert(mock, "customers", 31)
	expectEmpty(mock, "sales")
	expectInsert(mock, "sales", 41, int64(11), int64(21), int64(31), anyArg)
	expectEmpty(mock, "discounts")
	expectInsert(mock, "discounts", 51, int64(11), anyArg, anyArg, anyArg)

	report, err := Seed(context.Background(), repos, seedOptions())
	require.NoError(t, err)
	assert.Equal(t, SeedReport{"products": 1, "salespersons": 1, "customers": 1, "sales": 1, "discounts": 1}, report)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedReusesExistingRows(t *testing.T) {
	db, mock := newMock(t)
	repos := repositories.New(store.NewUnitOfWork(db))
	anyArg := sqlmock.AnyArg()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products p`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`FROM products p ORDER BY p.product_id ASC LIMIT \? OFFSET \?`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows([]string{
			"product_id", "name", "manufacturer", "style", "purchase_price",
			"sale_price", "quantity_on_hand", "commission_percentage",
		}).AddRow(42, "Roadster", "Trek", "Road", 700, 1000, 3, 15))
	expectEmpty(mock, "salespersons")
	expectInsert(mock, "salespersons", 21)
	expectEmpty(mock, "customers")
	expectInsert(mock, "customers", 31)
	expectEmpty(mock, "sales")
	expectInsert(mock, "sales", 41, int64(42), int64(21), int64(31), anyArg)
	expectEmpty(mock, "discounts")
	expectInsert(mock, "discounts", 51, int64(42), anyArg, anyArg, anyArg)

	report, err := Seed(context.Background(), repos, seedOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, report["products"])
	assert.Equal(t, 1, report["sales"])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedCommitsOnePagePerTransaction(t *testing.T) {
	db, mock := newMock(t)
	repos := repositories.New(store.NewUnitOfWork(db))

	expectEmpty(mock, "products")
	mock.ExpectBegin()
	for i := range 50 {
		mock.ExpectExec("INSERT INTO products ").WillReturnResult(sqlmock.NewResult(int64(i+1), 1))
	}
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO products ").WillReturnResult(sqlmock.NewResult(51, 1))
	mock.ExpectCommit()
	expectEmpty(mock, "salespersons")
	expectEmpty(mock, "customers")
	expectEmpty(mock, "discounts")

	opts := seedOptions()
	opts.Products = 51
	opts.Salespersons, opts.Customers, opts.Sales, opts.Discounts = 0, 0, 0, 0

	report, err := Seed(context.Background(), repos, opts)
	require.NoError(t, err)
	assert.Equal(t, 51, report["products"])
	require.NoError(t, mock.ExpectationsWereMet())
}
