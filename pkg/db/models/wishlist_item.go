package models

import "time"

// WishlistItem is a customer-product like.
type WishlistItem struct {
	ID         uint `gorm:"primaryKey"`
	CustomerID uint `gorm:"index:idx_wishlist_customer_product,unique;not null"`
	ProductID  uint `gorm:"index:idx_wishlist_customer_product,unique;not null"`

	CreatedAt time.Time
}

func (WishlistItem) TableName() string { return "wishlist_items" }
