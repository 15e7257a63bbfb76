package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"backend/config"
	"backend/models"
)

var medicationFrequencies = map[string]bool{
	"daily": true, "twice_daily": true, "weekly": true, "as_needed": true,
}

type MedicationInput struct {
	Name           string   `json:"name"`
	Dosage         string   `json:"dosage"`
	Frequency      string   `json:"frequency"`
	Times          []string `json:"times"` // "HH:MM"
	Notes          string   `json:"notes"`
	ExpirationDate string   `json:"expiration_date"` // "YYYY-MM-DD", optional
	Location       string   `json:"location"`
	LotNumber      string   `json:"lot_number"`
}

func (in *MedicationInput) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return errors.New("medication name is required")
	}
	if !medicationFrequencies[in.Frequency] {
		return errors.New("frequency must be daily, twice_daily, weekly or as_needed")
	}
	for _, t := range in.Times {
		if _, err := time.Parse("15:04", t); err != nil {
			return fmt.Errorf("invalid time %q, use HH:MM", t)
		}
	}
	if _, err := in.expirationDate(); err != nil {
		return err
	}
	return nil
}

func (in *MedicationInput) expirationDate() (*time.Time, error) {
	if in.ExpirationDate == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", in.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("invalid expiration date %q, use YYYY-MM-DD", in.ExpirationDate)
	}
	return &d, nil
}

func CreateMedication(userID uint, in MedicationInput) (*models.Medication, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	times, _ := json.Marshal(in.Times)
	expiry, _ := in.expirationDate()
	med := &models.Medication{
		UserID:         userID,
		Name:           strings.TrimSpace(in.Name),
		Dosage:         in.Dosage,
		Frequency:      in.Frequency,
		Times:          string(times),
		Notes:          in.Notes,
		Active:         true,
		ExpirationDate: expiry,
		Location:       in.Location,
		LotNumber:      in.LotNumber,
	}
	return med, config.DB.Create(med).Error
}

func ListMedications(userID uint, activeOnly bool) ([]models.Medication, error) {
	q := config.DB.Where("user_id = ?", userID)
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var meds []models.Medication
	err := q.Order("id").Find(&meds).Error
	return meds, err
}

func UpdateMedication(userID, medID uint, in MedicationInput, active *bool) (*models.Medication, error) {
	var med models.Medication
	if err := config.DB.First(&med, medID).Error; err != nil {
		return nil, errors.New("medication not found")
	}
	if med.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	if err := in.validate(); err != nil {
		return nil, err
	}
	times, _ := json.Marshal(in.Times)
	expiry, _ := in.expirationDate()
	med.Name = strings.TrimSpace(in.Name)
	med.Dosage = in.Dosage
	med.Frequency = in.Frequency
	med.Times = string(times)
	med.Notes = in.Notes
	med.ExpirationDate = expiry
	med.Location = in.Location
	med.LotNumber = in.LotNumber
	if active != nil {
		med.Active = *active
	}
	return &med, config.DB.Save(&med).Error
}

func DeleteMedication(userID, medID uint) error {
	var med models.Medication
	if err := config.DB.First(&med, medID).Error; err != nil {
		return errors.New("medication not found")
	}
	if med.UserID != userID {
		return errors.New("unauthorized")
	}
	return config.DB.Delete(&med).Error
}

// LogDose records that a dose was taken or skipped.
func LogDose(userID, medID uint, status, notes string) (*models.MedicationLog, error) {
	if status != "taken" && status != "skipped" {
		return nil, errors.New("status must be taken or skipped")
	}
	var med models.Medication
	if err := config.DB.First(&med, medID).Error; err != nil {
		return nil, errors.New("medication not found")
	}
	if med.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	entry := &models.MedicationLog{
		MedicationID: medID,
		UserID:       userID,
		TakenAt:      time.Now(),
		Status:       status,
		Notes:        notes,
	}
	return entry, config.DB.Create(entry).Error
}

func ListDoseLogs(userID, medID uint) ([]models.MedicationLog, error) {
	var logs []models.MedicationLog
	err := config.DB.Where("user_id = ? AND medication_id = ?", userID, medID).
		Order("taken_at DESC").Find(&logs).Error
	return logs, err
}

// DueDose is one scheduled dose in today's plan.
type DueDose struct {
	MedicationID uint   `json:"medication_id"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"`
	Time         string `json:"time"` // "HH:MM"
	Taken        bool   `json:"taken"`
}

// DueDosesAt computes the day's schedule for a user at a reference
// time: every active scheduled medication's dose times, each marked
// taken if a log exists for that day. Pure over its inputs so it can
// be tested without a clock.
func DueDosesAt(meds []models.Medication, logs []models.MedicationLog, now time.Time) []DueDose {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	takenToday := make(map[uint]int)
	for _, l := range logs {
		if l.Status == "taken" && !l.TakenAt.Before(dayStart) && l.TakenAt.Before(dayStart.Add(24*time.Hour)) {
			takenToday[l.MedicationID]++
		}
	}

	var due []DueDose
	for _, m := range meds {
		if !m.Active || m.Frequency == "as_needed" {
			continue
		}
		if m.Frequency == "weekly" && now.Weekday() != time.Monday {
			continue
		}
		var times []string
		if m.Times != "" {
			if err := json.Unmarshal([]byte(m.Times), &times); err != nil {
				continue
			}
		}
		remaining := takenToday[m.ID]
		for _, t := range times {
			d := DueDose{MedicationID: m.ID, Name: m.Name, Dosage: m.Dosage, Time: t}
			if remaining > 0 {
				d.Taken = true
				remaining--
			}
			due = append(due, d)
		}
	}
	return due
}

// TodaysDoses loads a user's schedule for the current day.
func TodaysDoses(userID uint) ([]DueDose, error) {
	meds, err := ListMedications(userID, true)
	if err != nil {
		return nil, err
	}
	var logs []models.MedicationLog
	if err := config.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
		return nil, err
	}
	return DueDosesAt(meds, logs, time.Now()), nil
}

// expiryReminderDays is how far ahead expiration warnings start
// (auto-injectors are useless past their date, so warn early).
const expiryReminderDays = 30

// ExpiryNotice flags a medication that is expired or close to it.
type ExpiryNotice struct {
	Medication models.Medication
	DaysLeft   int
	Expired    bool
}

// ExpiryNotices scans active medications for expired ones and ones
// inside the reminder window. Pure over its inputs, like DueDosesAt.
func ExpiryNotices(meds []models.Medication, now time.Time, windowDays int) []ExpiryNotice {
	var notices []ExpiryNotice
	for _, m := range meds {
		if !m.Active || m.ExpirationDate == nil {
			continue
		}
		switch {
		case m.IsExpired(now):
			notices = append(notices, ExpiryNotice{Medication: m, DaysLeft: m.DaysUntilExpiration(now), Expired: true})
		case m.NeedsExpiryReminder(now, windowDays):
			notices = append(notices, ExpiryNotice{Medication: m, DaysLeft: m.DaysUntilExpiration(now)})
		}
	}
	return notices
}

// StartReminderLoop emits an alert for every untaken dose whose time
// has just passed, and a daily warning for medications that are
// expired or expiring soon. Runs until the process exits.
func StartReminderLoop(interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			remindDueDoses(time.Now(), interval)
		}
	}()
}

func remindDueDoses(now time.Time, window time.Duration) {
	var meds []models.Medication
	if err := config.DB.Where("active = ?", true).Find(&meds).Error; err != nil {
		log.Printf("reminder loop: %v", err)
		return
	}

	byUser := make(map[uint][]models.Medication)
	for _, m := range meds {
		byUser[m.UserID] = append(byUser[m.UserID], m)
	}

	for userID, userMeds := range byUser {
		var logs []models.MedicationLog
		if err := config.DB.Where("user_id = ?", userID).Find(&logs).Error; err != nil {
			continue
		}
		for _, d := range DueDosesAt(userMeds, logs, now) {
			if d.Taken {
				continue
			}
			doseTime, err := time.Parse("15:04", d.Time)
			if err != nil {
				continue
			}
			scheduled := time.Date(now.Year(), now.Month(), now.Day(),
				doseTime.Hour(), doseTime.Minute(), 0, 0, now.Location())
			if scheduled.After(now) || now.Sub(scheduled) > window {
				continue
			}
			msg := fmt.Sprintf("Time to take %s (%s)", d.Name, d.Dosage)
			// EmitAlert also pushes when a PushService is wired in
			EmitAlert(userID, "reminder", msg)
		}

		// expiry warnings go out once a day, on the tick after 09:00
		nine := time.Date(now.Year(), now.Month(), now.Day(), 9, 0, 0, 0, now.Location())
		if nine.After(now) || now.Sub(nine) > window {
			continue
		}
		for _, n := range ExpiryNotices(userMeds, now, expiryReminderDays) {
			name := n.Medication.Name
			if n.Medication.LotNumber != "" {
				name = fmt.Sprintf("%s (lot %s)", name, n.Medication.LotNumber)
			}
			var msg string
			if n.Expired {
				msg = fmt.Sprintf("%s expired %d days ago. Replace it.", name, -n.DaysLeft)
			} else {
				msg = fmt.Sprintf("%s expires in %d days. Plan a replacement.", name, n.DaysLeft)
			}
			EmitAlert(userID, "reminder", msg)
		}
	}
}
