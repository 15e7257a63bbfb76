package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string `gorm:"uniqueIndex;not null"`
	Email          string `gorm:"uniqueIndex;not null"`
	Password       string `gorm:"not null"`
	ProfilePicture string
	MFAEnabled     bool
	MFACode        string

	// Security questions for password recovery; answers stored hashed.
	SecurityQuestion1 string
	SecurityAnswer1   string
	SecurityQuestion2 string
	SecurityAnswer2   string
	SecurityQuestion3 string
	SecurityAnswer3   string

	Disabled bool `gorm:"default:false"`

	Allergens        []UserAllergen    `gorm:"constraint:OnDelete:CASCADE"`
	SafeProducts     []SafeProduct     `gorm:"constraint:OnDelete:CASCADE"`
	AllergicProducts []AllergicProduct `gorm:"constraint:OnDelete:CASCADE"`
}
