package dto

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"bespokedbikes/internal/domain"
	"bespokedbikes/internal/domain/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsEmptyCustomer(t *testing.T) {
	assert.NoError(t, Validate(CustomerForCreationDto{}))
}

func TestValidateReportsProblemsByJSONName(t *testing.T) {
	in := ProductForCreationDto{ProductForManipulationDto{
		Name:  strings.Repeat("x", 101),
		Style: strings.Repeat("y", 51),
	}}

	err := Validate(in)
	require.Error(t, err)

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Problems, 2)
	assert.Contains(t, ve.Problems, "name")
	assert.Contains(t, ve.Problems, "style")
	assert.Equal(t, []string{"The field name must be at most 100 characters long."}, ve.Problems["name"])
}

func TestValidateAcceptsAnyNumbersAndReferences(t *testing.T) {
	assert.NoError(t, Validate(ProductForCreationDto{ProductForManipulationDto{
		PurchasePrice:        -1,
		SalePrice:            -5,
		CommissionPercentage: 150,
	}}))
	assert.NoError(t, Validate(SaleForCreationDto{}))
	assert.NoError(t, Validate(DiscountForCreationDto{DiscountForManipulationDto{
		DiscountPercentage: decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
	}}))
}

func TestValidateAcceptsAnyDateOrder(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	before := start.AddDate(0, 0, -1)

	assert.NoError(t, Validate(SalespersonForUpdateDto{SalespersonForManipulationDto{StartDate: &start, TerminationDate: &before}}))
	assert.NoError(t, Validate(DiscountForUpdateDto{DiscountForManipulationDto{ProductID: 1, BeginDate: &start, EndDate: &before}}))
}

func TestValidateSalespersonManagerLength(t *testing.T) {
	err := Validate(SalespersonForCreationDto{SalespersonForManipulationDto{Manager: strings.Repeat("m", 101)}})

	var ve domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Problems, "manager")
}

func TestSaleToDtoKeepsMissingRelationsNull(t *testing.T) {
	s := &models.Sale{SaleID: 3, ProductID: 1, SalespersonID: 2, CustomerID: 4,
		Product: &models.Product{ProductID: 1, Name: "Roadster"}}

	raw, err := json.Marshal(SaleToDto(s))
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, float64(3), got["saleId"])
	assert.Nil(t, got["salesperson"])
	assert.Nil(t, got["customer"])
	require.IsType(t, map[string]any{}, got["product"])
	assert.Equal(t, "Roadster", got["product"].(map[string]any)["name"])
}

func TestApplySaleDropsStaleRelation(t *testing.T) {
	s := &models.Sale{
		ProductID: 1, SalespersonID: 2, CustomerID: 3,
		Product:     &models.Product{ProductID: 1},
		Salesperson: &models.Salesperson{SalespersonID: 2},
	}

	ApplySale(SaleForManipulationDto{ProductID: 9, SalespersonID: 2, CustomerID: 3}, s)

	assert.Equal(t, int64(9), s.ProductID)
	assert.Nil(t, s.Product)
	assert.NotNil(t, s.Salesperson)
}

func TestDiscountPercentageJSON(t *testing.T) {
	d := DiscountToDto(&models.Discount{
		DiscountID:         1,
		ProductID:          2,
		DiscountPercentage: decimal.NewNullDecimal(decimal.RequireFromString("0.15")),
	})
	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"discountPercentage":"0.15"`)
	assert.Contains(t, string(raw), `"product":null`)

	var in DiscountForUpdateDto
	require.NoError(t, json.Unmarshal([]byte(`{"productId":2,"discountPercentage":0.2}`), &in))
	require.True(t, in.DiscountPercentage.Valid)
	assert.True(t, in.DiscountPercentage.Decimal.Equal(decimal.RequireFromString("0.2")))

	require.NoError(t, json.Unmarshal([]byte(`{"productId":2,"discountPercentage":null}`), &in))
	assert.False(t, in.DiscountPercentage.Valid)
}

func TestCustomerUpdateRoundTrip(t *testing.T) {
	start := time.Date(2021, 2, 3, 0, 0, 0, 0, time.UTC)
	c := &models.Customer{CustomerID: 5, FirstName: "Ada", City: "London", StartDate: &start}

	upd := CustomerToUpdate(c)
	upd.City = "Paris"

	ApplyCustomer(upd.CustomerForManipulationDto, c)
	assert.Equal(t, int64(5), c.CustomerID)
	assert.Equal(t, "Paris", c.City)
	assert.Equal(t, "Ada", c.FirstName)
	assert.Same(t, &start, c.StartDate)
}
