package models

import "time"

// Pincode is the serviceability lookup table.
type Pincode struct {
	ID            uint   `gorm:"primaryKey"`
	Code          string `gorm:"size:20;uniqueIndex;not null"`
	City          string `gorm:"size:100"`
	State         string `gorm:"size:100"`
	IsServiceable bool   `gorm:"default:true;index"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pincode) TableName() string { return "pincodes" }
