package models

import (
	"time"

	"gorm.io/gorm"
)

// ScanRecord is one label-scan in a user's history: where the image
// went, what the OCR read, and the aggregate verdict. The full
// per-ingredient report is ephemeral and returned to the client only.
type ScanRecord struct {
	gorm.Model
	UserID          uint   `gorm:"index;not null"`
	ImageURL        string `gorm:"size:512"`
	OCRText         string `gorm:"type:text"`
	OCRMethod       string `gorm:"size:32"` // "rekognition" | "client"
	IngredientCount int
	PersonalMatches int
	CatalogMatches  int
	SafeCount       int
	ScannedAt       time.Time `gorm:"index"`
}
