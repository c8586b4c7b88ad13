package models

import "time"

// Customer is the minimal identity slice this service reads; account
// management lives elsewhere.
type Customer struct {
	ID       uint   `gorm:"primaryKey"`
	Username string `gorm:"size:120"`
	Email    string `gorm:"size:255;uniqueIndex"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Customer) TableName() string { return "customers" }
