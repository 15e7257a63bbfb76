package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ContactInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Relation string `json:"relation"`
}

func AddEmergencyContact(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := services.AddEmergencyContact(userID, input.Name, input.Phone, input.Relation)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"contact": contact})
}

func ListEmergencyContacts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	contacts, err := services.ListEmergencyContacts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch contacts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

func DeleteEmergencyContact(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	if err := services.DeleteEmergencyContact(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Contact removed"})
}

// GenerateEmergencyCard snapshots the user's allergies, medications and
// contacts into a card whose QR payload a client can render offline.
func GenerateEmergencyCard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Language string `json:"language"`
	}
	// Body is optional; default language is English.
	_ = c.ShouldBindJSON(&input)
	if input.Language == "" {
		input.Language = "en"
	}

	card, err := services.GenerateEmergencyCard(userID, input.Language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"card": card})
}

func GetEmergencyCard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid card id"})
		return
	}

	card, err := services.GetEmergencyCard(userID, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card})
}
