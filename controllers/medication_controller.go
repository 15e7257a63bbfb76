package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

func CreateMedication(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input services.MedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.CreateMedication(userID, input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"medication": med})
}

func ListMedications(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	activeOnly := c.DefaultQuery("active", "true") != "false"

	meds, err := services.ListMedications(userID, activeOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch medications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medications": meds})
}

type UpdateMedicationInput struct {
	services.MedicationInput
	Active *bool `json:"active"`
}

func UpdateMedication(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	var input UpdateMedicationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	med, err := services.UpdateMedication(userID, uint(id), input.MedicationInput, input.Active)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"medication": med})
}

func DeleteMedication(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	if err := services.DeleteMedication(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Medication removed"})
}

type LogDoseInput struct {
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

func LogDose(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	var input LogDoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := services.LogDose(userID, uint(id), input.Status, input.Notes)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"log": entry})
}

func ListDoseLogs(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid medication id"})
		return
	}

	logs, err := services.ListDoseLogs(userID, uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch dose logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

func TodaysDoses(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	doses, err := services.TodaysDoses(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute today's doses"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"doses": doses})
}
