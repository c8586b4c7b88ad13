package models

import "time"

// Review moderation states.
const (
	ReviewStatusPending  = "pending"
	ReviewStatusApproved = "approved"
	ReviewStatusRejected = "rejected"
)

// ProductReview holds a customer review. Media URLs are comma-joined, the
// same encoding the original storefront produced.
type ProductReview struct {
	ID         uint `gorm:"primaryKey"`
	ProductID  uint `gorm:"index;not null"`
	CustomerID uint `gorm:"index;not null"`

	Rating  int    `gorm:"not null"`
	Title   string `gorm:"size:200"`
	Content string `gorm:"type:text"`

	ImageURLs string `gorm:"type:text"`
	VideoURLs string `gorm:"type:text"`

	IsVerifiedPurchase bool   `gorm:"default:false"`
	Status             string `gorm:"size:20;default:pending;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ProductReview) TableName() string { return "product_reviews" }
