package models

import "gorm.io/gorm"

// UserAllergen is one ingredient a user has declared themselves
// allergic to. Owned exclusively by that user; never shared.
type UserAllergen struct {
	gorm.Model
	UserID         uint   `gorm:"index;not null"`
	IngredientName string `gorm:"size:200;not null"`
	Severity       string `gorm:"size:50;default:unknown"` // mild | moderate | severe | unknown
}
