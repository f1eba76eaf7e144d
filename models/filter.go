package models

import "github.com/shopspring/decimal"

// FilterParams holds the raw, still-untyped query parameters of the public
// catalog endpoints. Values arrive exactly as the client sent them.
type FilterParams struct {
	InStock   string
	PriceFrom string
	PriceTo   string
}

// ProductFilter is the canonical predicate executed against the products
// collection. Active is implied: every filter built here selects published
// products only, no caller input can switch that off.
type ProductFilter struct {
	InStock *bool
	// Inclusive price bounds on pricing.price.
	PriceFrom *decimal.Decimal
	PriceTo   *decimal.Decimal
	// Unsatisfiable marks a filter that can never match, e.g. a price
	// bound that failed to parse. It degrades to an empty result set
	// instead of an error.
	Unsatisfiable bool
	// Type restricts to a single category. Validated by the caller
	// before the filter is built.
	Type string
}

// BuildProductFilter translates raw query parameters into a ProductFilter.
//
// inStock is honored only when it is exactly "true" or "false"; any other
// value leaves both stock states eligible. A price bound that is present
// but not a valid number makes the whole filter unsatisfiable.
func BuildProductFilter(params FilterParams) ProductFilter {
	var f ProductFilter

	switch params.InStock {
	case "true":
		v := true
		f.InStock = &v
	case "false":
		v := false
		f.InStock = &v
	}

	if params.PriceFrom != "" {
		if d, err := decimal.NewFromString(params.PriceFrom); err == nil {
			f.PriceFrom = &d
		} else {
			f.Unsatisfiable = true
		}
	}
	if params.PriceTo != "" {
		if d, err := decimal.NewFromString(params.PriceTo); err == nil {
			f.PriceTo = &d
		} else {
			f.Unsatisfiable = true
		}
	}

	return f
}
