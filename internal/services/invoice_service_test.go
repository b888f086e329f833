package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/domain/models"
	"bespokedbikes/internal/paging"
	"bespokedbikes/internal/query"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSales map[int64]*models.Sale

func (f fakeSales) GetByID(_ context.Context, id int64) (*models.Sale, error) {
	return f[id], nil
}

type fakeDiscounts struct {
	items   []*models.Discount
	filters []string
	err     error
}

func (f *fakeDiscounts) List(_ context.Context, params query.Parameters) (paging.Page[*models.Discount], error) {
	f.filters = append(f.filters, params.Filters)
	if f.err != nil {
		return paging.Page[*models.Discount]{}, f.err
	}
	return paging.FromSlice(f.items, params.Params), nil
}

func pct(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func sampleSale() *models.Sale {
	return &models.Sale{
		SaleID: 7, ProductID: 3, SalespersonID: 2, CustomerID: 1,
		SaleDate:    day(2024, 3, 15),
		Product:     &models.Product{ProductID: 3, Name: "Domane", Manufacturer: "Trek", Style: "Road", SalePrice: 1000, CommissionPercentage: 10},
		Salesperson: &models.Salesperson{SalespersonID: 2, FirstName: "Sam", LastName: "Seller"},
		Customer:    &models.Customer{CustomerID: 1, FirstName: "Ada", LastName: "Lovelace", City: "London"},
	}
}

func TestInvoiceAppliesLargestActiveDiscount(t *testing.T) {
	discounts := &fakeDiscounts{items: []*models.Discount{
		{DiscountID: 1, ProductID: 3, BeginDate: day(2024, 1, 1), EndDate: day(2024, 12, 31), DiscountPercentage: pct("0.10")},
		{DiscountID: 2, ProductID: 3, BeginDate: day(2024, 3, 1), EndDate: day(2024, 3, 31), DiscountPercentage: pct("0.20")},
		{DiscountID: 3, ProductID: 3, BeginDate: day(2023, 1, 1), EndDate: day(2023, 2, 1), DiscountPercentage: pct("0.50")},
		{DiscountID: 4, ProductID: 3},
	}}
	svc := InvoiceService{Sales: fakeSales{7: sampleSale()}, Discounts: discounts}

	data, err := svc.loadSaleDocData(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []string{"ProductId == 3"}, discounts.filters)
	require.True(t, data.Discount.Valid)
	assert.Equal(t, "0.2", data.Discount.Decimal.String())
	assert.Equal(t, "800", data.Price.String())
	assert.Equal(t, "80", data.Commission.String())
	assert.Equal(t, "Ada Lovelace", data.CustomerName)
	assert.Equal(t, "London", data.CustomerAddress)
	assert.Equal(t, "Sam Seller", data.SalespersonName)
}

func TestInvoiceReadsDiscountsPastFirstPage(t *testing.T) {
	discounts := &fakeDiscounts{}
	for i := range paging.MaxPageSize {
		discounts.items = append(discounts.items, &models.Discount{
			DiscountID: int64(i + 1), ProductID: 3,
			BeginDate: day(2024, 1, 1), EndDate: day(2024, 12, 31), DiscountPercentage: pct("0.05"),
		})
	}
	discounts.items = append(discounts.items, &models.Discount{
		DiscountID: 99, ProductID: 3,
		BeginDate: day(2024, 3, 1), EndDate: day(2024, 3, 31), DiscountPercentage: pct("0.25"),
	})
	svc := InvoiceService{Sales: fakeSales{7: sampleSale()}, Discounts: discounts}

	data, err := svc.loadSaleDocData(context.Background(), 7)
	require.NoError(t, err)

	assert.Len(t, discounts.filters, 2)
	require.True(t, data.Discount.Valid)
	assert.Equal(t, "0.25", data.Discount.Decimal.String())
	assert.Equal(t, "750", data.Price.String())
}

func TestInvoiceWithoutDiscountUsesListPrice(t *testing.T) {
	svc := InvoiceService{Sales: fakeSales{7: sampleSale()}, Discounts: &fakeDiscounts{}}

	data, err := svc.loadSaleDocData(context.Background(), 7)
	require.NoError(t, err)
	assert.False(t, data.Discount.Valid)
	assert.Equal(t, "1000", data.Price.String())
	assert.Equal(t, "100", data.Commission.String())
}

func TestInvoiceMissingSale(t *testing.T) {
	svc := InvoiceService{Sales: fakeSales{}, Discounts: &fakeDiscounts{}}

	_, _, err := svc.GenerateSaleInvoice(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, domain.IsNotFound(err))
}

func TestInvoiceDiscountLookupError(t *testing.T) {
	boom := errors.New("boom")
	svc := InvoiceService{Sales: fakeSales{7: sampleSale()}, Discounts: &fakeDiscounts{err: boom}}

	_, _, err := svc.GenerateSaleInvoice(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
}

func TestInvoiceToleratesMissingRelations(t *testing.T) {
	svc := InvoiceService{Sales: fakeSales{5: {SaleID: 5}}, Discounts: &fakeDiscounts{}}

	pdf, filename, err := svc.GenerateSaleInvoice(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
	assert.Equal(t, "INVOICE_5_NA.pdf", filename)
}

func TestInvoiceServiceGenerateWithLoader(t *testing.T) {
	loader := func(_ context.Context, id int64) (saleDocData, error) {
		return saleDocData{
			SaleID:          id,
			SaleDate:        time.Now(),
			CustomerName:    "Tester Person",
			SalespersonName: "Seller",
			ProductName:     "Domane",
			ListPrice:       decimal.NewFromInt(1000),
			Discount:        pct("0.15"),
			Price:           decimal.NewFromInt(850),
			CommissionPct:   10,
			Commission:      decimal.RequireFromString("85"),
		}, nil
	}

	svc := InvoiceService{Loader: loader}

	pdf, filename, err := svc.GenerateSaleInvoice(context.Background(), 1)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "INVOICE_1_Tester_Person.pdf", filename)
}
