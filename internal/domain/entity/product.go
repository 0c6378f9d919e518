// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductOption is a named axis of product variation with its ordered set of allowed values.
type ProductOption struct {
	Name   string   `json:"name"`   // The option name, e.g., "Size".
	Values []string `json:"values"` // The ordered list of allowed values, e.g., ["S", "M", "L"].
}

// Product is the catalog entity a customer browses. Its purchasable units are
// the variants; the product itself only carries the option schema and defaults.
type Product struct {
	ID             uuid.UUID       `json:"id"`              // The unique identifier for the product.
	Name           string          `json:"name"`            // Display name.
	Images         []string        `json:"images"`          // Image URLs, first one is the primary image.
	BasePrice      decimal.Decimal `json:"base_price"`      // Price used when the product has no variants.
	Options        []ProductOption `json:"options"`         // Declared option schema; empty for single-variant products.
	TracksQuantity bool            `json:"tracks_quantity"` // Whether variant stock levels are enforced.
	Active         bool            `json:"active"`          // Whether the product is purchasable.
	CreatedAt      time.Time       `json:"created_at"`      // Timestamp of when the product was created.
	UpdatedAt      time.Time       `json:"updated_at"`      // Timestamp of the last modification.
}

// OptionNames returns the declared option names in schema order.
func (p *Product) OptionNames() []string {
	names := make([]string, 0, len(p.Options))
	for _, opt := range p.Options {
		names = append(names, opt.Name)
	}

	return names
}

// HasOption reports whether the product declares an option with the given name.
func (p *Product) HasOption(name string) bool {
	for _, opt := range p.Options {
		if opt.Name == name {
			return true
		}
	}

	return false
}
