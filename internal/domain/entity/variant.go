package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OptionValue is one (option name, selected value) pair on a variant.
// Variants carry an ordered list of these rather than an open map so that
// "all options selected" is a structural check against the product schema.
type OptionValue struct {
	Name  string `json:"name"`  // The option name, e.g., "Size".
	Value string `json:"value"` // The selected value, e.g., "L".
}

// Variant is a concrete purchasable SKU of a product, identified by a
// specific combination of option values. The set of option names on every
// variant of a product equals the product's declared option names.
type Variant struct {
	ID             uuid.UUID        `json:"id"`                         // The unique identifier for the variant.
	ProductID      uuid.UUID        `json:"product_id"`                 // The owning product.
	Price          decimal.Decimal  `json:"price"`                      // Current selling price.
	CompareAtPrice *decimal.Decimal `json:"compare_at_price,omitempty"` // Optional pre-discount price for display.
	PointsPrice    int              `json:"points_price"`               // Loyalty points required to redeem this SKU as a reward; 0 for regular SKUs.
	Quantity       int              `json:"quantity"`                   // Units on hand; meaningful only when the product tracks quantity.
	Options        []OptionValue    `json:"options"`                    // The option values identifying this SKU.
	Active         bool             `json:"active"`                     // Whether this SKU is sellable.
}

// OptionValue returns the value selected for the given option name.
func (v *Variant) OptionValue(name string) (string, bool) {
	for _, opt := range v.Options {
		if opt.Name == name {
			return opt.Value, true
		}
	}

	return "", false
}

// MatchesSelection reports whether the variant carries every (name, value)
// pair in the selection. A partial selection matches any variant that agrees
// on the selected names.
func (v *Variant) MatchesSelection(selection []OptionValue) bool {
	for _, sel := range selection {
		value, ok := v.OptionValue(sel.Name)
		if !ok || value != sel.Value {
			return false
		}
	}

	return true
}

// InStock reports whether the variant can be added to a cart given the
// product's quantity-tracking setting.
func (v *Variant) InStock(tracksQuantity bool) bool {
	if !tracksQuantity {
		return true
	}

	return v.Quantity > 0
}
