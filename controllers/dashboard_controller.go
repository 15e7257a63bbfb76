package controllers

import (
	"net/http"
	"strconv"

	"backend/config"
	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

func GetDashboard(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	data, err := services.GetDashboard(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, data)
}

func ListAlerts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	limit := 50
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "50")); err == nil && l > 0 && l <= 200 {
		limit = l
	}

	var alerts []models.Alert
	if err := config.DB.Where("user_id = ?", userID).
		Order("created_at DESC").Limit(limit).Find(&alerts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
