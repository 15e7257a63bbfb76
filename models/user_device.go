package models

import "time"

// UserDevice is one mobile device registered for push delivery of
// allergen alerts and medication reminders. The raw push token is
// never stored; only its hash (for dedup) and the SNS endpoint built
// from it. Enabled is the user's notifications toggle.
type UserDevice struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index"`
	Platform    string    `gorm:"size:16"` // "android" | "ios"
	TokenHash   string    `gorm:"size:64"` // sha256 of the push token
	EndpointARN string    `gorm:"size:256"`
	Enabled     bool      `gorm:"default:true"`
	UpdatedAt   time.Time
	CreatedAt   time.Time
}
