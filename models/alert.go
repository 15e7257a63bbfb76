package models

import "time"

// Alert is a persisted notification: a severe personal allergen found
// in a scan, or a missed medication dose.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "allergen" | "reminder" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}
