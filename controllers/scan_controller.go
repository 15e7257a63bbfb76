package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ScanController struct {
	Scans *services.ScanService
}

func NewScanController(scans *services.ScanService) *ScanController {
	return &ScanController{Scans: scans}
}

type ScanImageInput struct {
	Image string `json:"image" binding:"required"`
}

func (sc *ScanController) ScanImage(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ScanImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.Scans.ScanImage(userID, input.Image)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

type ScanTextInput struct {
	Text string `json:"text" binding:"required"`
}

func (sc *ScanController) ScanText(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input ScanTextInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := sc.Scans.ScanText(userID, input.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (sc *ScanController) History(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	limit := 20
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	scans, err := services.ListScanHistory(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch scan history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"scans": scans})
}
