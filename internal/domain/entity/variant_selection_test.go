package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildShirtProduct() (*Product, []*Variant) {
	product := &Product{
		ID:        uuid.New(),
		Name:      "經典T恤",
		BasePrice: decimal.NewFromInt(390),
		Options: []ProductOption{
			{Name: "Size", Values: []string{"S", "M", "L"}},
			{Name: "Color", Values: []string{"Black", "White"}},
		},
		TracksQuantity: true,
		Active:         true,
	}

	variants := []*Variant{
		{
			ID:        uuid.New(),
			ProductID: product.ID,
			Price:     decimal.NewFromInt(390),
			Quantity:  5,
			Active:    true,
			Options: []OptionValue{
				{Name: "Size", Value: "S"},
				{Name: "Color", Value: "Black"},
			},
		},
		{
			ID:        uuid.New(),
			ProductID: product.ID,
			Price:     decimal.NewFromInt(420),
			Quantity:  0,
			Active:    true,
			Options: []OptionValue{
				{Name: "Size", Value: "M"},
				{Name: "Color", Value: "Black"},
			},
		},
		{
			ID:        uuid.New(),
			ProductID: product.ID,
			Price:     decimal.NewFromInt(420),
			Quantity:  3,
			Active:    true,
			Options: []OptionValue{
				{Name: "Size", Value: "M"},
				{Name: "Color", Value: "White"},
			},
		},
	}

	return product, variants
}

func TestVariantSelection_PartialSelectionIsIncomplete(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	state, err := selection.SelectOption("Size", "M")
	require.NoError(t, err)
	assert.Equal(t, ResolverIncomplete, state)

	_, ok := selection.Resolved()
	assert.False(t, ok)
}

func TestVariantSelection_FullSelectionResolves(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	_, err := selection.SelectOption("Size", "M")
	require.NoError(t, err)
	state, err := selection.SelectOption("Color", "White")
	require.NoError(t, err)
	assert.Equal(t, ResolverResolved, state)

	variant, ok := selection.Resolved()
	require.True(t, ok)
	require.NotNil(t, variant)
	assert.Equal(t, variants[2].ID, variant.ID)
	assert.True(t, decimal.NewFromInt(420).Equal(variant.Price))
}

func TestVariantSelection_ReplacingAValueKeepsOneEntryPerOption(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	_, err := selection.SelectOption("Size", "S")
	require.NoError(t, err)
	_, err = selection.SelectOption("Size", "M")
	require.NoError(t, err)

	selected := selection.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, OptionValue{Name: "Size", Value: "M"}, selected[0])
}

func TestVariantSelection_UnknownOptionRejected(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	_, err := selection.SelectOption("Material", "Cotton")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestVariantSelection_SelectionWithoutMatchingVariantStaysIncomplete(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	// No variant carries Size=L; the catalog simply never produced that SKU.
	_, err := selection.SelectOption("Size", "L")
	require.NoError(t, err)
	_, err = selection.SelectOption("Color", "Black")
	require.NoError(t, err)

	assert.Equal(t, ResolverIncomplete, selection.State())
	assert.Nil(t, selection.CurrentMatch())
}

func TestVariantSelection_DuplicateVariantOptionsNeverResolve(t *testing.T) {
	product, variants := buildShirtProduct()
	duplicate := &Variant{
		ID:        uuid.New(),
		ProductID: product.ID,
		Price:     decimal.NewFromInt(999),
		Quantity:  1,
		Active:    true,
		Options: []OptionValue{
			{Name: "Size", Value: "M"},
			{Name: "Color", Value: "White"},
		},
	}
	selection := NewVariantSelection(product, append(variants, duplicate))

	_, err := selection.SelectOption("Size", "M")
	require.NoError(t, err)
	_, err = selection.SelectOption("Color", "White")
	require.NoError(t, err)

	assert.Nil(t, selection.CurrentMatch())
	assert.Equal(t, ResolverIncomplete, selection.State())
}

func TestVariantSelection_OptionlessProductResolvesImmediately(t *testing.T) {
	product := &Product{
		ID:        uuid.New(),
		Name:      "禮物卡",
		BasePrice: decimal.NewFromInt(100),
		Active:    true,
	}
	selection := NewVariantSelection(product, nil)

	assert.Equal(t, ResolverResolved, selection.State())

	variant, ok := selection.Resolved()
	assert.True(t, ok)
	assert.Nil(t, variant)
}

func TestVariantSelection_AvailableValuesFiltersOutOfStock(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	_, err := selection.SelectOption("Size", "M")
	require.NoError(t, err)

	// Size=M exists in Black (sold out) and White (3 left).
	assert.Equal(t, []string{"White"}, selection.AvailableValues("Color"))

	// The queried axis ignores its own selection: Size availability is
	// derived from the Color selection only.
	assert.Equal(t, []string{"S", "M"}, selection.AvailableValues("Size"))
}

func TestVariantSelection_AvailableValuesWithoutTrackingReturnsAll(t *testing.T) {
	product, variants := buildShirtProduct()
	product.TracksQuantity = false
	selection := NewVariantSelection(product, variants)

	assert.Equal(t, []string{"S", "M", "L"}, selection.AvailableValues("Size"))
	assert.Equal(t, []string{"Black", "White"}, selection.AvailableValues("Color"))
}

func TestVariantSelection_AvailableValuesUnknownOption(t *testing.T) {
	product, variants := buildShirtProduct()
	selection := NewVariantSelection(product, variants)

	assert.Nil(t, selection.AvailableValues("Material"))
}
