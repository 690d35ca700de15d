package services_test

import (
	"testing"

	"bananina-api/models"
	"bananina-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func TestPriceCartSingleLine(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, ProductName: "Leather Tote", Quantity: 2, UnitPrice: 100000, UnitWeight: 800},
	}

	result, err := services.PriceCart(lines, 50000)
	require.NoError(t, err)

	assert.Equal(t, 200000, result.Subtotal)
	assert.Equal(t, 100000, result.ShippingCost)
	assert.Equal(t, 300000, result.Total)
	assert.Equal(t, 2, result.TotalItems)
	assert.Equal(t, 1600, result.TotalWeight)

	require.Len(t, result.Lines, 1)
	assert.Equal(t, 100000, result.Lines[0].UnitPrice)
	assert.Equal(t, 200000, result.Lines[0].Subtotal)
}

func TestPriceCartUsesSalePriceWhenSet(t *testing.T) {
	lines := []models.CartLine{
		{ProductID: 1, Quantity: 1, UnitPrice: 500000, UnitSalePrice: intPtr(350000)},
		{ProductID: 2, Quantity: 3, UnitPrice: 120000},
	}

	result, err := services.PriceCart(lines, 50000)
	require.NoError(t, err)

	assert.Equal(t, 350000+3*120000, result.Subtotal)
	assert.Equal(t, 4*50000, result.ShippingCost)
	assert.Equal(t, result.Subtotal+result.ShippingCost, result.Total)
	assert.Equal(t, 350000, result.Lines[0].UnitPrice)
	assert.Equal(t, 120000, result.Lines[1].UnitPrice)
}

func TestPriceCartEmpty(t *testing.T) {
	_, err := services.PriceCart(nil, 50000)
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	_, err = services.PriceCart([]models.CartLine{}, 50000)
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestPriceCartInvariants(t *testing.T) {
	carts := [][]models.CartLine{
		{{ProductID: 1, Quantity: 1, UnitPrice: 75000}},
		{
			{ProductID: 1, Quantity: 4, UnitPrice: 99000, UnitSalePrice: intPtr(79000), UnitWeight: 250},
			{ProductID: 2, Quantity: 2, UnitPrice: 1250000, UnitWeight: 1200},
			{ProductID: 3, Quantity: 7, UnitPrice: 15000},
		},
	}

	for _, lines := range carts {
		result, err := services.PriceCart(lines, 50000)
		require.NoError(t, err)

		assert.Equal(t, result.Subtotal+result.ShippingCost, result.Total)

		lineSum := 0
		qtySum := 0
		for _, l := range result.Lines {
			assert.Equal(t, l.UnitPrice*l.Quantity, l.Subtotal)
			lineSum += l.Subtotal
			qtySum += l.Quantity
		}
		assert.Equal(t, lineSum, result.Subtotal)
		assert.Equal(t, qtySum, result.TotalItems)
		assert.Equal(t, qtySum*50000, result.ShippingCost)
	}
}
