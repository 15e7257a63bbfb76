package services

import (
	"backend/config"
	"backend/models"
)

// DashboardData aggregates what the app's home screen shows.
type DashboardData struct {
	Allergens          []models.UserAllergen    `json:"allergens"`
	RecentScans        []models.ScanRecord      `json:"recent_scans"`
	SafeProducts       []models.SafeProduct     `json:"safe_products"`
	AllergicProducts   []models.AllergicProduct `json:"allergic_products"`
	PotentialAllergens []PotentialAllergen      `json:"potential_allergens"`
}

func GetDashboard(userID uint) (*DashboardData, error) {
	data := &DashboardData{}

	var err error
	if data.Allergens, err = ListPersonalAllergens(userID); err != nil {
		return nil, err
	}
	if data.RecentScans, err = ListScanHistory(userID, 5); err != nil {
		return nil, err
	}

	if err = config.DB.Where("user_id = ?", userID).
		Order("scan_date DESC").Limit(5).Find(&data.SafeProducts).Error; err != nil {
		return nil, err
	}
	if err = config.DB.Where("user_id = ?", userID).
		Order("scan_date DESC").Limit(5).Find(&data.AllergicProducts).Error; err != nil {
		return nil, err
	}

	potentials, err := DetectPotentialAllergens(userID)
	if err != nil {
		return nil, err
	}
	if len(potentials) > 5 {
		potentials = potentials[:5]
	}
	data.PotentialAllergens = potentials

	return data, nil
}
