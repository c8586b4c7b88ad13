package models

import "time"

// Address is a customer delivery address; ZipCode links it to the pincode
// serviceability table.
type Address struct {
	ID         uint   `gorm:"primaryKey"`
	CustomerID uint   `gorm:"index;not null"`
	Name       string `gorm:"size:120"`
	Line1      string `gorm:"size:255"`
	Line2      string `gorm:"size:255"`
	City       string `gorm:"size:100"`
	State      string `gorm:"size:100"`
	ZipCode    string `gorm:"size:20;index;not null"`
	IsDefault  bool   `gorm:"default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Address) TableName() string { return "addresses" }
