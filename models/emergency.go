package models

import (
	"time"

	"gorm.io/gorm"
)

type EmergencyContact struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Name     string `gorm:"size:120;not null"`
	Phone    string `gorm:"size:40"`
	Relation string `gorm:"size:80"`
}

// EmergencyCard is a generated wallet card: the QR payload carries the
// user's allergens and medications for first responders.
type EmergencyCard struct {
	gorm.Model
	UserID    uint   `gorm:"index;not null"`
	ImageURL  string `gorm:"size:512"`
	Lang      string `gorm:"size:8;default:en"`
	QRData    string `gorm:"type:text"`
	CreatedOn time.Time
}
