package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Normalize converts a raw wire record into the canonical Product. Model
// priority is color > legacy variants > flat fields; field groups of the
// losing representations are discarded, never mixed.
func Normalize(raw RawProduct) *Product {
	p := &Product{
		ID:             raw.ID,
		Name:           raw.Name,
		Description:    raw.Description,
		Price:          decimal.NewFromFloat(raw.Price),
		FinalPrice:     decimalPtr(raw.FinalPrice),
		OriginalPrice:  decimalPtr(raw.OriginalPrice),
		Category:       raw.Category,
		Subcategory:    raw.Subcategory,
		Rating:         raw.Rating,
		IsCODAvailable: raw.IsCODAvailable,
		Images:         imageSet(raw.Images, raw.Image),
	}

	switch {
	case len(raw.Colors) > 0:
		p.Model = ModelColor
		p.Colors = make([]Color, 0, len(raw.Colors))
		for _, c := range raw.Colors {
			p.Colors = append(p.Colors, Color{
				Name:       c.Name,
				Sizes:      c.Sizes,
				SizeCounts: c.SizeCounts,
				Images:     c.Images,
			})
		}

	case len(raw.Variants) > 0:
		p.Model = ModelLegacyVariant
		p.Variants = make([]Variant, 0, len(raw.Variants))
		for _, v := range raw.Variants {
			p.Variants = append(p.Variants, Variant{
				Color:         v.Color,
				ColorCode:     v.ColorCode,
				Size:          v.Size,
				Stock:         v.Stock,
				Available:     v.IsAvailable == nil || *v.IsAvailable,
				Price:         decimalPtr(v.Price),
				FinalPrice:    decimalPtr(v.FinalPrice),
				OriginalPrice: decimalPtr(v.OriginalPrice),
				Images:        imageSet(v.Images, v.Image),
			})
		}

	default:
		p.Model = ModelFlat
		p.FlatColors = splitColors(raw.Color)
		p.FlatSizes = raw.Sizes
		p.FlatAvailableSizes = raw.AvailableSizes
		if len(p.FlatAvailableSizes) == 0 && len(raw.Sizes) > 0 {
			p.FlatAvailableSizes = sortedKeys(raw.Sizes)
		}
	}

	return p
}

func splitColors(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	colors := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			colors = append(colors, trimmed)
		}
	}
	return colors
}

// sortedKeys gives the size list a stable order; the wire map has none.
func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func imageSet(images []string, single string) []string {
	if len(images) > 0 {
		return images
	}
	if single != "" {
		return []string{single}
	}
	return nil
}

func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := decimal.NewFromFloat(*f)
	return &d
}
