package catalog

import "github.com/shopspring/decimal"

// Model identifies which variant representation is authoritative for a
// product. Exactly one applies; downstream code switches on the tag and never
// re-inspects raw optional fields.
type Model int

const (
	// ModelFlat is the oldest shape: one color string, a size->stock map
	// and/or a plain size list, and a single image set.
	ModelFlat Model = iota
	// ModelColor is the current shape: ordered colors, each carrying its
	// own sizes, per-size counts and image set.
	ModelColor
	// ModelLegacyVariant is the transitional shape: a flat list of
	// (color, size) combinations with per-combination stock and price.
	ModelLegacyVariant
)

func (m Model) String() string {
	switch m {
	case ModelColor:
		return "color"
	case ModelLegacyVariant:
		return "legacy_variant"
	default:
		return "flat"
	}
}

// Color is one entry of the color model. SizeCounts keys are the entries of
// Sizes; a missing key reads as zero stock.
type Color struct {
	Name       string
	Sizes      []string
	SizeCounts map[string]int
	Images     []string
}

// Variant is one purchasable (color, size) combination of the legacy model.
type Variant struct {
	Color     string
	ColorCode string
	Size      string
	Stock     int
	Available bool

	Price         *decimal.Decimal
	FinalPrice    *decimal.Decimal
	OriginalPrice *decimal.Decimal

	Images []string
}

// Product is the canonical normalized shape the resolver operates on.
// Only the field group matching Model is populated.
type Product struct {
	ID          uint
	Name        string
	Description string

	Price         decimal.Decimal
	FinalPrice    *decimal.Decimal
	OriginalPrice *decimal.Decimal

	Category    string
	Subcategory string
	Rating      float64

	IsCODAvailable bool

	Model Model

	Colors   []Color
	Variants []Variant

	FlatColors         []string
	FlatSizes          map[string]int
	FlatAvailableSizes []string

	Images []string
}

// AvailableColors returns the selectable color names in declaration order
// (legacy model: order of first occurrence).
func (p *Product) AvailableColors() []string {
	switch p.Model {
	case ModelColor:
		names := make([]string, 0, len(p.Colors))
		for _, c := range p.Colors {
			names = append(names, c.Name)
		}
		return names
	case ModelLegacyVariant:
		seen := make(map[string]struct{}, len(p.Variants))
		names := make([]string, 0, len(p.Variants))
		for _, v := range p.Variants {
			if _, ok := seen[v.Color]; ok {
				continue
			}
			seen[v.Color] = struct{}{}
			names = append(names, v.Color)
		}
		return names
	default:
		return p.FlatColors
	}
}

// AvailableSizes returns the size list for the initially selected color.
func (p *Product) AvailableSizes() []string {
	switch p.Model {
	case ModelColor:
		if len(p.Colors) == 0 {
			return nil
		}
		return p.Colors[0].Sizes
	case ModelLegacyVariant:
		seen := make(map[string]struct{}, len(p.Variants))
		sizes := make([]string, 0, len(p.Variants))
		for _, v := range p.Variants {
			if _, ok := seen[v.Size]; ok {
				continue
			}
			seen[v.Size] = struct{}{}
			sizes = append(sizes, v.Size)
		}
		return sizes
	default:
		return p.FlatAvailableSizes
	}
}

// SizesInStockForColor narrows the size list to combinations with stock.
// Only meaningful under the legacy model; other models return AvailableSizes.
func (p *Product) SizesInStockForColor(color string) []string {
	if p.Model != ModelLegacyVariant {
		return p.AvailableSizes()
	}
	sizes := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.Color == color && v.Available && v.Stock > 0 {
			sizes = append(sizes, v.Size)
		}
	}
	return sizes
}

// ColorsInStockForSize is the mirror of SizesInStockForColor.
func (p *Product) ColorsInStockForSize(size string) []string {
	if p.Model != ModelLegacyVariant {
		return p.AvailableColors()
	}
	colors := make([]string, 0, len(p.Variants))
	for _, v := range p.Variants {
		if v.Size == size && v.Available && v.Stock > 0 {
			colors = append(colors, v.Color)
		}
	}
	return colors
}

func (p *Product) colorByName(name string) *Color {
	for i := range p.Colors {
		if p.Colors[i].Name == name {
			return &p.Colors[i]
		}
	}
	return nil
}

// findVariant matches a purchasable variant on the joint (color, size) key.
func (p *Product) findVariant(color, size string) *Variant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Color == color && v.Size == size && v.Available && v.Stock > 0 {
			return v
		}
	}
	return nil
}

func (p *Product) findVariantByColor(color string) *Variant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Color == color && v.Available && v.Stock > 0 {
			return v
		}
	}
	return nil
}

func (p *Product) findVariantBySize(size string) *Variant {
	for i := range p.Variants {
		v := &p.Variants[i]
		if v.Size == size && v.Available && v.Stock > 0 {
			return v
		}
	}
	return nil
}
