package models

import (
	"time"

	"gorm.io/gorm"
)

// SafeProduct is a scanned product the user marked as tolerated.
type SafeProduct struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	ProductName string `gorm:"size:200;not null"`
	Ingredients string `gorm:"type:text;not null"` // comma-joined, as scanned
	ScanDate    time.Time
}

// AllergicProduct is a scanned product the user reacted to.
type AllergicProduct struct {
	gorm.Model
	UserID           uint   `gorm:"index;not null"`
	ProductName      string `gorm:"size:200;not null"`
	Ingredients      string `gorm:"type:text;not null"`
	ScanDate         time.Time
	ReactionSeverity string `gorm:"size:50;default:unknown"`
}
