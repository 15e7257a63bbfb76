package services

import (
	"testing"
	"time"

	"backend/models"
)

func med(id uint, name, freq string, times string, active bool) models.Medication {
	m := models.Medication{Name: name, Frequency: freq, Times: times, Active: active}
	m.ID = id
	return m
}

func TestDueDosesAt(t *testing.T) {
	// A Tuesday.
	now := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)

	meds := []models.Medication{
		med(1, "Antihistamine", "daily", `["08:00"]`, true),
		med(2, "Cortisone Cream", "twice_daily", `["08:00","20:00"]`, true),
		med(3, "Allergy Shot", "weekly", `["10:00"]`, true),
		med(4, "EpiPen", "as_needed", `[]`, true),
		med(5, "Old Prescription", "daily", `["08:00"]`, false),
	}

	logs := []models.MedicationLog{
		{MedicationID: 2, Status: "taken", TakenAt: now.Add(-time.Hour)},
		{MedicationID: 1, Status: "skipped", TakenAt: now.Add(-time.Hour)},
		{MedicationID: 1, Status: "taken", TakenAt: now.Add(-48 * time.Hour)}, // not today
	}

	due := DueDosesAt(meds, logs, now)

	// Weekly med is Monday-only, as-needed and inactive meds never
	// schedule: only the daily and the two twice_daily doses remain.
	if len(due) != 3 {
		t.Fatalf("DueDosesAt returned %d doses, want 3: %+v", len(due), due)
	}

	if due[0].MedicationID != 1 || due[0].Taken {
		t.Errorf("daily dose = %+v, want medication 1 untaken (skip logs and old logs don't count)", due[0])
	}
	if due[1].MedicationID != 2 || !due[1].Taken {
		t.Errorf("first twice_daily dose = %+v, want taken", due[1])
	}
	if due[2].MedicationID != 2 || due[2].Taken {
		t.Errorf("second twice_daily dose = %+v, want untaken", due[2])
	}
}

func TestDueDosesAtWeeklyOnMonday(t *testing.T) {
	monday := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)

	meds := []models.Medication{
		med(3, "Allergy Shot", "weekly", `["10:00"]`, true),
	}

	due := DueDosesAt(meds, nil, monday)
	if len(due) != 1 || due[0].Time != "10:00" {
		t.Fatalf("DueDosesAt on Monday = %+v, want one 10:00 dose", due)
	}
}

func expiringMed(id uint, name string, expiry time.Time, active bool) models.Medication {
	m := models.Medication{Name: name, Frequency: "as_needed", Active: active, ExpirationDate: &expiry}
	m.ID = id
	return m
}

func TestMedicationExpiry(t *testing.T) {
	now := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)

	expired := expiringMed(1, "EpiPen Jr", now.AddDate(0, 0, -30), true)
	if !expired.IsExpired(now) {
		t.Error("IsExpired = false for a 30-day-old date, want true")
	}
	if d := expired.DaysUntilExpiration(now); d != -30 {
		t.Errorf("DaysUntilExpiration = %d, want -30", d)
	}

	soon := expiringMed(2, "EpiPen", now.AddDate(0, 0, 15), true)
	if soon.IsExpired(now) {
		t.Error("IsExpired = true for a future date, want false")
	}
	if !soon.NeedsExpiryReminder(now, 30) {
		t.Error("NeedsExpiryReminder(30) = false at 15 days out, want true")
	}
	if d := soon.DaysUntilExpiration(now); d != 15 {
		t.Errorf("DaysUntilExpiration = %d, want 15", d)
	}

	current := expiringMed(3, "EpiPen Spare", now.AddDate(0, 0, 180), true)
	if current.IsExpired(now) || current.NeedsExpiryReminder(now, 30) {
		t.Error("a medication 180 days from expiry needs no reminder")
	}

	undated := models.Medication{Name: "Antihistamine", Frequency: "daily", Active: true}
	if undated.IsExpired(now) || undated.NeedsExpiryReminder(now, 30) {
		t.Error("a medication without an expiration date never expires")
	}
}

func TestExpiryNotices(t *testing.T) {
	now := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)

	meds := []models.Medication{
		expiringMed(1, "EpiPen Jr", now.AddDate(0, 0, -30), true),  // expired
		expiringMed(2, "EpiPen", now.AddDate(0, 0, 15), true),      // expiring soon
		expiringMed(3, "EpiPen Spare", now.AddDate(0, 0, 180), true),
		expiringMed(4, "Old EpiPen", now.AddDate(0, 0, 10), false), // inactive
		med(5, "Antihistamine", "daily", `["08:00"]`, true),        // no date
	}

	notices := ExpiryNotices(meds, now, 30)
	if len(notices) != 2 {
		t.Fatalf("ExpiryNotices returned %d notices, want 2: %+v", len(notices), notices)
	}
	if notices[0].Medication.ID != 1 || !notices[0].Expired || notices[0].DaysLeft != -30 {
		t.Errorf("first notice = %+v, want medication 1 expired 30 days ago", notices[0])
	}
	if notices[1].Medication.ID != 2 || notices[1].Expired || notices[1].DaysLeft != 15 {
		t.Errorf("second notice = %+v, want medication 2 expiring in 15 days", notices[1])
	}
}

func TestMedicationInputValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      MedicationInput
		wantErr bool
	}{
		{"valid daily", MedicationInput{Name: "Antihistamine", Frequency: "daily", Times: []string{"08:00"}}, false},
		{"missing name", MedicationInput{Name: "  ", Frequency: "daily"}, true},
		{"bad frequency", MedicationInput{Name: "X", Frequency: "hourly"}, true},
		{"bad time", MedicationInput{Name: "X", Frequency: "daily", Times: []string{"25:61"}}, true},
		{"as needed no times", MedicationInput{Name: "EpiPen", Frequency: "as_needed"}, false},
		{"valid expiry", MedicationInput{Name: "EpiPen", Frequency: "as_needed", ExpirationDate: "2027-05-01"}, false},
		{"bad expiry", MedicationInput{Name: "EpiPen", Frequency: "as_needed", ExpirationDate: "05/01/2027"}, true},
	}
	for _, tt := range tests {
		err := tt.in.validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}
