package models

import "time"

// Product mirrors the catalog table. The three variant representations live
// in separate columns: ColorsJSON (color model), VariantsJSON (legacy
// variants), and SizesJSON + Color (flat fields). At most one is populated
// per row; precedence is resolved by the catalog normalizer, not here.
type Product struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"column:pname;size:120;not null"`
	Description string `gorm:"column:pdescription;type:text"`

	Price         float64 `gorm:"not null"`
	DiscountValue float64 `gorm:"default:0"`

	SizesJSON    string `gorm:"column:size_json;type:text"`
	Color        string `gorm:"size:120"`
	ColorsJSON   string `gorm:"column:colors_json;type:text"`
	VariantsJSON string `gorm:"column:variants_json;type:text"`

	Image      string `gorm:"size:512"`
	ImagesJSON string `gorm:"column:images_json;type:text"`

	Category    string `gorm:"size:100;index"`
	Subcategory string `gorm:"size:100"`
	Tag         string `gorm:"size:50"`

	Stock      int  `gorm:"default:0"`
	Visibility bool `gorm:"default:true"`
	IsActive   bool `gorm:"default:true"`

	IsReturnable   bool    `gorm:"default:true"`
	IsCODAvailable bool    `gorm:"column:is_cod_available;default:true"`
	Rating         float64 `gorm:"default:0"`
	IsFeatured     bool    `gorm:"default:false"`
	IsLatest       bool    `gorm:"default:false"`
	IsTrending     bool    `gorm:"default:false"`
	IsNew          bool    `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Product) TableName() string { return "products" }
