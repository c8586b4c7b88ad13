package products

import (
	"time"

	"github.com/rohitvarpe/stitchkart-backend/internal/catalog"
	"github.com/rohitvarpe/stitchkart-backend/internal/reviews"
)

// ProductDTO is the storefront product payload. The colors/variants/flat
// field groups are emitted exactly as the catalog normalizer consumes them.
type ProductDTO struct {
	ID          uint   `json:"id"`
	Name        string `json:"pname"`
	Description string `json:"pdescription"`

	Price         float64 `json:"price"`
	DiscountValue float64 `json:"discount_value"`
	FinalPrice    float64 `json:"final_price"`
	OriginalPrice float64 `json:"original_price"`

	Colors   []catalog.RawColor   `json:"colors,omitempty"`
	Variants []catalog.RawVariant `json:"variants,omitempty"`

	Color          string         `json:"color,omitempty"`
	Sizes          map[string]int `json:"sizes,omitempty"`
	AvailableSizes []string       `json:"available_sizes,omitempty"`

	Image  string   `json:"image,omitempty"`
	Images []string `json:"images"`

	Category    string `json:"category,omitempty"`
	Subcategory string `json:"subcategory,omitempty"`
	Tag         string `json:"tag,omitempty"`

	Stock      int  `json:"stock"`
	TotalStock int  `json:"total_stock"`
	Visibility bool `json:"visibility"`
	IsActive   bool `json:"is_active"`

	IsReturnable   bool    `json:"is_returnable"`
	IsCODAvailable bool    `json:"is_cod_available"`
	Rating         float64 `json:"rating"`
	IsFeatured     bool    `json:"is_featured"`
	IsLatest       bool    `json:"is_latest"`
	IsTrending     bool    `json:"is_trending"`
	IsNew          bool    `json:"is_new"`

	CreatedAt time.Time `json:"created_at"`
}

// ProductListDTO wraps a product collection.
type ProductListDTO struct {
	Products []ProductDTO `json:"products"`
}

// ProductDetailDTO is the detail page payload: the product plus its live
// review stats.
type ProductDetailDTO struct {
	Product ProductDTO       `json:"product"`
	Stats   reviews.StatsDTO `json:"stats"`
}

// Raw converts the DTO back into the normalizer's input shape.
func (d ProductDTO) Raw() catalog.RawProduct {
	return catalog.RawProduct{
		ID:             d.ID,
		Name:           d.Name,
		Description:    d.Description,
		Price:          d.Price,
		FinalPrice:     &d.FinalPrice,
		OriginalPrice:  &d.OriginalPrice,
		Category:       d.Category,
		Subcategory:    d.Subcategory,
		Rating:         d.Rating,
		IsCODAvailable: d.IsCODAvailable,
		Colors:         d.Colors,
		Variants:       d.Variants,
		Color:          d.Color,
		Sizes:          d.Sizes,
		AvailableSizes: d.AvailableSizes,
		Image:          d.Image,
		Images:         d.Images,
	}
}
