package models

import "time"

// CartItem is one purchasable line for a customer: product plus the chosen
// color/size and optional legacy variant key.
type CartItem struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index:idx_cart_customer_product,unique;not null"`
	ProductID  uint `gorm:"index:idx_cart_customer_product,unique;not null"`

	Quantity  int    `gorm:"not null;default:1"`
	Size      string `gorm:"size:20"`
	Color     string `gorm:"size:120"`
	VariantID *uint

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CartItem) TableName() string { return "cart_items" }
