package catalog

// maxCartQuantity caps a single cart line regardless of stock.
const maxCartQuantity = 10

// Selection is the mutable per-session state the resolver operates on. It is
// owned by exactly one page session; no concurrent writers exist.
type Selection struct {
	product *Product

	Color     string
	Size      string
	ColorData *Color
	Variant   *Variant
	Images    []string
	Quantity  int
}

// NewSelection builds the default selection for a normalized product.
//
// Color model: first color, then the first size of that color with stock.
// Legacy model: first variant that is available with positive stock.
// Flat model: nothing preselected.
func NewSelection(p *Product) *Selection {
	s := &Selection{
		product:  p,
		Images:   p.Images,
		Quantity: 1,
	}

	switch p.Model {
	case ModelColor:
		first := &p.Colors[0]
		s.ColorData = first
		s.Color = first.Name
		s.Images = first.Images
		if size, ok := firstInStockSize(first); ok {
			s.Size = size
		}

	case ModelLegacyVariant:
		for i := range p.Variants {
			v := &p.Variants[i]
			if v.Available && v.Stock > 0 {
				s.Variant = v
				s.Color = v.Color
				s.Size = v.Size
				break
			}
		}
	}

	return s
}

// Product returns the normalized product this selection resolves against.
func (s *Selection) Product() *Product {
	return s.product
}

// SelectColor applies a color choice.
//
// Color model: swap to the color's own sizes and images, clear the size, then
// auto-pick the first size with stock. Size stays unset when the color is
// sold out.
//
// Legacy model: color and size form a joint key. Try (color, current size)
// first; fall back to any purchasable variant of that color and adopt its
// size; clear the variant when the color has none.
func (s *Selection) SelectColor(name string) {
	s.Color = name

	switch s.product.Model {
	case ModelColor:
		colorData := s.product.colorByName(name)
		if colorData == nil {
			return
		}
		s.ColorData = colorData
		s.Images = colorData.Images
		s.Size = ""
		if size, ok := firstInStockSize(colorData); ok {
			s.Size = size
		}

	case ModelLegacyVariant:
		target := s.product.findVariant(name, s.Size)
		if target == nil {
			if target = s.product.findVariantByColor(name); target != nil {
				s.Size = target.Size
			}
		}
		s.Variant = target
	}
}

// SelectSize applies a size choice.
//
// Color model: sizes are sub-attributes of the chosen color, so nothing else
// changes. Legacy model: mirror of SelectColor, matching (size, current
// color) first and falling back to any purchasable variant of that size.
func (s *Selection) SelectSize(size string) {
	s.Size = size

	switch s.product.Model {
	case ModelColor:
		return

	case ModelLegacyVariant:
		target := s.product.findVariant(s.Color, size)
		if target == nil {
			if target = s.product.findVariantBySize(size); target != nil {
				s.Color = target.Color
			}
		}
		s.Variant = target
	}
}

// MaxQuantity resolves the orderable cap for the current selection. Stock is
// read, in priority order, from the selected color's per-size count, the
// selected variant, then the flat size map. Zero stock returns 0; no size
// concept returns the default cap.
func (s *Selection) MaxQuantity() int {
	if s.ColorData != nil && s.Size != "" {
		return capStock(s.ColorData.SizeCounts[s.Size])
	}
	if s.Variant != nil {
		return capStock(s.Variant.Stock)
	}
	if s.Size != "" && len(s.product.FlatSizes) > 0 {
		return capStock(s.product.FlatSizes[s.Size])
	}
	return maxCartQuantity
}

// SetQuantity accepts n only when 1 <= n <= MaxQuantity(); out-of-range
// requests are silently ignored.
func (s *Selection) SetQuantity(n int) {
	if n >= 1 && n <= s.MaxQuantity() {
		s.Quantity = n
	}
}

func firstInStockSize(c *Color) (string, bool) {
	for _, size := range c.Sizes {
		if c.SizeCounts[size] > 0 {
			return size, true
		}
	}
	return "", false
}

func capStock(stock int) int {
	if stock <= 0 {
		return 0
	}
	if stock > maxCartQuantity {
		return maxCartQuantity
	}
	return stock
}
