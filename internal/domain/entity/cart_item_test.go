package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestCartItem_ClampQuantity(t *testing.T) {
	item := &CartItem{Quantity: 0, MaxQuantity: 5}
	item.ClampQuantity()
	assert.Equal(t, 1, item.Quantity)

	item.Quantity = 9
	item.ClampQuantity()
	assert.Equal(t, 5, item.Quantity)

	item.Quantity = 3
	item.ClampQuantity()
	assert.Equal(t, 3, item.Quantity)
}

func TestCartItem_ClampQuantityUnlimited(t *testing.T) {
	item := &CartItem{Quantity: 250, MaxQuantity: UnlimitedMaxQuantity}
	item.ClampQuantity()
	assert.Equal(t, 250, item.Quantity)
}

func TestCartItem_LineTotal(t *testing.T) {
	item := &CartItem{
		UnitPrice: decimal.NewFromFloat(49.5),
		Quantity:  3,
	}
	assert.True(t, decimal.NewFromFloat(148.5).Equal(item.LineTotal()))
}

func TestSummarizeCart(t *testing.T) {
	items := []*CartItem{
		{VariantID: uuid.New(), UnitPrice: decimal.NewFromInt(120), Quantity: 2},
		{VariantID: uuid.New(), UnitPrice: decimal.NewFromInt(80), Quantity: 1},
	}

	summary := SummarizeCart(items)
	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, decimal.NewFromInt(320).Equal(summary.Subtotal))
	assert.Len(t, summary.Items, 2)
}

func TestSummarizeCart_Empty(t *testing.T) {
	summary := SummarizeCart(nil)
	assert.Equal(t, 0, summary.ItemCount)
	assert.True(t, summary.Subtotal.IsZero())
}
