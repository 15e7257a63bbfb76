package services

import (
	"errors"
	"fmt"

	"backend/config"
	"backend/models"
	"backend/utils"
)

type ProfileInput struct {
	Email          string `json:"email"`
	ProfilePicture string `json:"profile_picture"` // base64 data URI
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	user, err := findUserByID(userID)
	if err != nil || user.Disabled {
		return nil, errors.New("user not found or disabled")
	}

	var allergenCount int64
	config.DB.Model(&models.UserAllergen{}).Where("user_id = ?", userID).Count(&allergenCount)
	var scanCount int64
	config.DB.Model(&models.ScanRecord{}).Where("user_id = ?", userID).Count(&scanCount)

	return map[string]interface{}{
		"id":              user.ID,
		"username":        user.Username,
		"email":           user.Email,
		"profile_picture": user.ProfilePicture,
		"mfa_enabled":     user.MFAEnabled,
		"allergen_count":  allergenCount,
		"scan_count":      scanCount,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	user, err := findUserByID(userID)
	if err != nil || user.Disabled {
		return errors.New("user not found or disabled")
	}

	if input.Email != "" {
		user.Email = input.Email
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, "profile-pictures/"+user.Username)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(user).Error
}
