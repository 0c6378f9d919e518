package entity

import (
	"storefront/internal/errors"
)

// ResolverState describes whether a selection set pins down a concrete variant.
type ResolverState string

const (
	// ResolverIncomplete means the selection does not yet identify a single variant.
	ResolverIncomplete ResolverState = "incomplete"
	// ResolverResolved means every declared option is selected and exactly one variant matches.
	ResolverResolved ResolverState = "resolved"
)

// ErrUnknownOption is returned when a selection names an option the product does not declare.
var ErrUnknownOption = errors.New("unknown option name")

// VariantSelection turns a product's option schema plus a (possibly partial)
// set of selected option values into either a concrete variant or "incomplete".
// Selections that become incompatible with stock are never auto-cleared; the
// caller re-derives availability via AvailableValues.
type VariantSelection struct {
	product  *Product
	variants []*Variant
	selected []OptionValue
}

// NewVariantSelection creates a resolver over a product and its variants.
func NewVariantSelection(product *Product, variants []*Variant) *VariantSelection {
	return &VariantSelection{
		product:  product,
		variants: variants,
		selected: make([]OptionValue, 0, len(product.Options)),
	}
}

// SelectOption records a value for the named option, replacing any prior value
// for that option, and returns the resulting resolver state.
func (s *VariantSelection) SelectOption(name, value string) (ResolverState, error) {
	if !s.product.HasOption(name) {
		return s.State(), errors.Wrapf(ErrUnknownOption, "option %q", name)
	}

	for i, sel := range s.selected {
		if sel.Name == name {
			s.selected[i].Value = value

			return s.State(), nil
		}
	}

	s.selected = append(s.selected, OptionValue{Name: name, Value: value})

	return s.State(), nil
}

// Selected returns a copy of the current selection pairs.
func (s *VariantSelection) Selected() []OptionValue {
	out := make([]OptionValue, len(s.selected))
	copy(out, s.selected)

	return out
}

// complete reports whether every declared option has a selected value.
func (s *VariantSelection) complete() bool {
	return len(s.selected) == len(s.product.Options)
}

// CurrentMatch returns the variant matching the full or partial selection set
// exactly, or nil when no single variant matches all selected pairs. Duplicate
// option maps in the catalog therefore surface as "no variant selected".
func (s *VariantSelection) CurrentMatch() *Variant {
	var match *Variant
	for _, variant := range s.variants {
		if !variant.MatchesSelection(s.selected) {
			continue
		}
		if match != nil {
			return nil
		}
		match = variant
	}

	return match
}

// State returns Resolved iff the selection covers every declared option and a
// single matching variant exists. A product with zero declared options and no
// variants resolves immediately to its base price.
func (s *VariantSelection) State() ResolverState {
	if !s.complete() {
		return ResolverIncomplete
	}
	if s.CurrentMatch() != nil {
		return ResolverResolved
	}
	if len(s.variants) == 0 && len(s.product.Options) == 0 {
		return ResolverResolved
	}

	return ResolverIncomplete
}

// Resolved returns the matched variant when the state is Resolved. The variant
// is nil for option-less products without variants (base-price fallback).
func (s *VariantSelection) Resolved() (*Variant, bool) {
	if s.State() != ResolverResolved {
		return nil, false
	}

	return s.CurrentMatch(), true
}

// AvailableValues returns, in declared order, the values of optionName that
// occur among in-stock variants matching the other currently-selected options.
// When the product does not track quantity, all declared values are available.
func (s *VariantSelection) AvailableValues(optionName string) []string {
	var declared []string
	for _, opt := range s.product.Options {
		if opt.Name == optionName {
			declared = opt.Values

			break
		}
	}
	if declared == nil {
		return nil
	}

	if !s.product.TracksQuantity {
		out := make([]string, len(declared))
		copy(out, declared)

		return out
	}

	// Selections on every axis except the one being queried.
	others := make([]OptionValue, 0, len(s.selected))
	for _, sel := range s.selected {
		if sel.Name != optionName {
			others = append(others, sel)
		}
	}

	occurring := make(map[string]struct{})
	for _, variant := range s.variants {
		if !variant.Active || variant.Quantity <= 0 {
			continue
		}
		if !variant.MatchesSelection(others) {
			continue
		}
		if value, ok := variant.OptionValue(optionName); ok {
			occurring[value] = struct{}{}
		}
	}

	available := make([]string, 0, len(declared))
	for _, value := range declared {
		if _, ok := occurring[value]; ok {
			available = append(available, value)
		}
	}

	return available
}
