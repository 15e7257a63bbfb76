package controllers

import (
	"net/http"

	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	profile, err := services.GetUserProfile(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func UpdateProfile(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.UpdateUserProfile(userID, input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated"})
}

type MFAInput struct {
	Enabled bool `json:"enabled"`
}

func SetMFA(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input MFAInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := config.DB.Table("users").Where("id = ?", userID).
		Update("mfa_enabled", input.Enabled).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update MFA setting"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mfa_enabled": input.Enabled})
}

func DisableAccount(c *gin.Context) {
	email := c.MustGet("email").(string)

	user, err := services.FindUserByEmail(email)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := services.DisableUser(user.Username); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disable account"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Account disabled"})
}
