package models

import (
	"time"

	"gorm.io/gorm"
)

// Medication is a recurring reminder entry (antihistamines,
// prescription creams, epinephrine auto-injectors). Injectors carry
// an expiration date, storage location and lot number so the app can
// warn before the device goes stale.
type Medication struct {
	gorm.Model
	UserID         uint       `gorm:"index;not null"`
	Name           string     `gorm:"size:200;not null"`
	Dosage         string     `gorm:"size:100"`
	Frequency      string     `gorm:"size:50;not null"` // "daily" | "twice_daily" | "weekly" | "as_needed"
	Times          string     `gorm:"type:text"`        // JSON array of "HH:MM"
	Notes          string     `gorm:"type:text"`
	Active         bool       `gorm:"default:true"`
	ExpirationDate *time.Time `gorm:"index"`
	Location       string     `gorm:"size:120"`
	LotNumber      string     `gorm:"size:60"`
}

// IsExpired reports whether the medication's expiration date has
// passed. Medications without one never expire.
func (m *Medication) IsExpired(ref time.Time) bool {
	return m.ExpirationDate != nil && m.ExpirationDate.Before(startOfDay(ref))
}

// DaysUntilExpiration counts whole days from ref to the expiration
// date; negative once expired. Zero when no date is set.
func (m *Medication) DaysUntilExpiration(ref time.Time) int {
	if m.ExpirationDate == nil {
		return 0
	}
	return int(startOfDay(*m.ExpirationDate).Sub(startOfDay(ref)).Hours() / 24)
}

// NeedsExpiryReminder reports whether the medication expires within
// windowDays and is not yet expired.
func (m *Medication) NeedsExpiryReminder(ref time.Time, windowDays int) bool {
	if m.ExpirationDate == nil || m.IsExpired(ref) {
		return false
	}
	return m.DaysUntilExpiration(ref) <= windowDays
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MedicationLog records one dose taken or skipped.
type MedicationLog struct {
	gorm.Model
	MedicationID uint      `gorm:"index;not null"`
	UserID       uint      `gorm:"index;not null"`
	TakenAt      time.Time `gorm:"index"`
	Status       string    `gorm:"size:20"` // "taken" | "skipped"
	Notes        string    `gorm:"type:text"`
}
