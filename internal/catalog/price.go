package catalog

import "github.com/shopspring/decimal"

// ResolvePrice returns the effective unit price for the current selection.
// Priority: variant final price, variant price, product final price, product
// price. A nil or non-positive tier is skipped.
func ResolvePrice(s *Selection, p *Product) decimal.Decimal {
	if s != nil && s.Variant != nil {
		if d := positivePrice(s.Variant.FinalPrice); d != nil {
			return *d
		}
		if d := positivePrice(s.Variant.Price); d != nil {
			return *d
		}
	}
	if d := positivePrice(p.FinalPrice); d != nil {
		return *d
	}
	return p.Price
}

// ResolveOriginalPrice returns the strike-through price, variant first, or
// nil when none applies.
func ResolveOriginalPrice(s *Selection, p *Product) *decimal.Decimal {
	if s != nil && s.Variant != nil {
		if d := positivePrice(s.Variant.OriginalPrice); d != nil {
			return d
		}
	}
	return positivePrice(p.OriginalPrice)
}

// HasDiscount reports whether the original price exceeds the effective price.
func HasDiscount(s *Selection, p *Product) bool {
	original := ResolveOriginalPrice(s, p)
	return original != nil && original.GreaterThan(ResolvePrice(s, p))
}

func positivePrice(d *decimal.Decimal) *decimal.Decimal {
	if d == nil || d.Sign() <= 0 {
		return nil
	}
	return d
}
