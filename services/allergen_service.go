package services

import (
	"errors"
	"strings"

	"backend/allergen"
	"backend/config"
	"backend/models"
)

// AddPersonalAllergen validates and stores one user-declared allergen.
func AddPersonalAllergen(userID uint, ingredientName string, severity string) (*models.UserAllergen, error) {
	name := strings.TrimSpace(ingredientName)
	if name == "" || len(name) > 200 {
		return nil, errors.New("ingredient name must be 1-200 characters")
	}
	if severity == "" {
		severity = string(allergen.SeverityUnknown)
	}
	if !allergen.ValidSeverity(allergen.Severity(severity)) {
		return nil, errors.New("severity must be mild, moderate, severe or unknown")
	}

	entry := &models.UserAllergen{
		UserID:         userID,
		IngredientName: name,
		Severity:       severity,
	}
	if err := config.DB.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func ListPersonalAllergens(userID uint) ([]models.UserAllergen, error) {
	var allergens []models.UserAllergen
	err := config.DB.Where("user_id = ?", userID).Order("id").Find(&allergens).Error
	return allergens, err
}

// DeletePersonalAllergen removes an entry, but only for its owner.
func DeletePersonalAllergen(userID, allergenID uint) error {
	var entry models.UserAllergen
	if err := config.DB.First(&entry, allergenID).Error; err != nil {
		return errors.New("allergen not found")
	}
	if entry.UserID != userID {
		return errors.New("unauthorized")
	}
	return config.DB.Delete(&entry).Error
}

// PersonalAllergenSet converts a user's stored entries into the form
// the analyzer consumes.
func PersonalAllergenSet(userID uint) ([]allergen.PersonalAllergen, error) {
	entries, err := ListPersonalAllergens(userID)
	if err != nil {
		return nil, err
	}
	set := make([]allergen.PersonalAllergen, 0, len(entries))
	for _, e := range entries {
		set = append(set, allergen.PersonalAllergen{
			Name:     e.IngredientName,
			Severity: allergen.Severity(e.Severity),
		})
	}
	return set, nil
}
