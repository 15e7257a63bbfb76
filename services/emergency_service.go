package services

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"backend/config"
	"backend/models"
)

func AddEmergencyContact(userID uint, name, phone, relation string) (*models.EmergencyContact, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("contact name is required")
	}
	contact := &models.EmergencyContact{
		UserID:   userID,
		Name:     strings.TrimSpace(name),
		Phone:    phone,
		Relation: relation,
	}
	return contact, config.DB.Create(contact).Error
}

func ListEmergencyContacts(userID uint) ([]models.EmergencyContact, error) {
	var contacts []models.EmergencyContact
	err := config.DB.Where("user_id = ?", userID).Order("id").Find(&contacts).Error
	return contacts, err
}

func DeleteEmergencyContact(userID, contactID uint) error {
	var contact models.EmergencyContact
	if err := config.DB.First(&contact, contactID).Error; err != nil {
		return errors.New("contact not found")
	}
	if contact.UserID != userID {
		return errors.New("unauthorized")
	}
	return config.DB.Delete(&contact).Error
}

// emergencyCardPayload is what first responders see when scanning the
// card's QR code.
type emergencyCardPayload struct {
	Name        string   `json:"name"`
	UserID      uint     `json:"user_id"`
	Allergies   []string `json:"allergies"`
	Medications []string `json:"meds"`
	Contacts    []string `json:"contacts"`
}

// GenerateEmergencyCard snapshots the user's allergens, medications
// and contacts into a stored card record. Rendering the QR image is
// the client's job; the payload is canonical here.
func GenerateEmergencyCard(userID uint, lang string) (*models.EmergencyCard, error) {
	user, err := findUserByID(userID)
	if err != nil {
		return nil, errors.New("user not found")
	}
	if lang == "" {
		lang = "en"
	}

	allergens, err := ListPersonalAllergens(userID)
	if err != nil {
		return nil, err
	}
	meds, err := ListMedications(userID, true)
	if err != nil {
		return nil, err
	}
	contacts, err := ListEmergencyContacts(userID)
	if err != nil {
		return nil, err
	}

	payload := emergencyCardPayload{
		Name:   user.Username,
		UserID: user.ID,
	}
	for _, a := range allergens {
		payload.Allergies = append(payload.Allergies, a.IngredientName+" ("+a.Severity+")")
	}
	for _, m := range meds {
		payload.Medications = append(payload.Medications, m.Name+" "+m.Dosage)
	}
	for _, c := range contacts {
		payload.Contacts = append(payload.Contacts, c.Name+": "+c.Phone)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	card := &models.EmergencyCard{
		UserID:    userID,
		Lang:      lang,
		QRData:    string(raw),
		CreatedOn: time.Now(),
	}
	return card, config.DB.Create(card).Error
}

func GetEmergencyCard(userID, cardID uint) (*models.EmergencyCard, error) {
	var card models.EmergencyCard
	if err := config.DB.First(&card, cardID).Error; err != nil {
		return nil, errors.New("card not found")
	}
	if card.UserID != userID {
		return nil, errors.New("unauthorized")
	}
	return &card, nil
}
