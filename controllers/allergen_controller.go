package controllers

import (
	"net/http"
	"strconv"

	"backend/allergen"
	"backend/config"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type AddAllergenInput struct {
	Name     string `json:"name" binding:"required"`
	Severity string `json:"severity"`
}

func AddAllergen(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input AddAllergenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ua, err := services.AddPersonalAllergen(userID, input.Name, input.Severity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"allergen": ua})
}

func ListAllergens(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	allergens, err := services.ListPersonalAllergens(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch allergens"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"allergens": allergens})
}

func DeleteAllergen(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid allergen id"})
		return
	}

	if err := services.DeletePersonalAllergen(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Allergen not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Allergen removed"})
}

// AllergenInfo answers with the catalog record for an ingredient.
// When the catalog has no entry it falls back to the AI assistant,
// clearly marking the answer as unverified.
func AllergenInfo(gem *services.GeminiService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter required"})
			return
		}

		if rec, ok := services.CatalogIndex().Lookup(allergen.Normalize(name)); ok {
			c.JSON(http.StatusOK, gin.H{"source": "catalog", "record": rec})
			return
		}

		if gem != nil && gem.Available() {
			info, err := gem.LookupIngredient(name)
			if err == nil {
				c.JSON(http.StatusOK, gin.H{"source": "ai", "record": info})
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{"error": "No information found for this ingredient"})
	}
}

// SuggestSynonyms returns AI-proposed alternate names for an
// ingredient, for review before they land in the reference dataset.
func SuggestSynonyms(gem *services.GeminiService) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.Query("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name query parameter required"})
			return
		}
		if gem == nil || !gem.Available() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI enrichment not configured"})
			return
		}

		synonyms, err := gem.SuggestSynonyms(name)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"name": name, "synonyms": synonyms})
	}
}

// ReloadCatalog rebuilds the allergen index from the data file and
// swaps it in without interrupting in-flight scans.
func ReloadCatalog(c *gin.Context) {
	warnings, err := services.ReloadCatalog(config.AllergenDataPath())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Catalog reloaded",
		"entries":  services.CatalogIndex().Len(),
		"warnings": warnings,
	})
}
