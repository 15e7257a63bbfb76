package controllers

import (
	"net/http"
	"strconv"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type SaveProductInput struct {
	ProductName      string   `json:"product_name" binding:"required"`
	Ingredients      []string `json:"ingredients" binding:"required"`
	ReactionSeverity string   `json:"reaction_severity"`
}

func SaveSafeProduct(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SaveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.SaveSafeProduct(userID, input.ProductName, input.Ingredients)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func SaveAllergicProduct(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input SaveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	product, err := services.SaveAllergicProduct(userID, input.ProductName, input.Ingredients, input.ReactionSeverity)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func ListSafeProducts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	products, err := services.ListSafeProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func ListAllergicProducts(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	products, err := services.ListAllergicProducts(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func DeleteSafeProduct(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := services.DeleteSafeProduct(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

func DeleteAllergicProduct(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product id"})
		return
	}

	if err := services.DeleteAllergicProduct(userID, uint(id)); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product removed"})
}

// PotentialAllergens cross-references the user's allergic products
// against their safe list and reports suspect ingredients.
func PotentialAllergens(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	suspects, err := services.DetectPotentialAllergens(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to analyze products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"potential_allergens": suspects})
}

type RenameIngredientInput struct {
	OldName string `json:"old_name" binding:"required"`
	NewName string `json:"new_name" binding:"required"`
}

func RenameIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input RenameIngredientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := services.RenameIngredient(userID, input.OldName, input.NewName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated_products": updated})
}

func RemoveIngredient(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := services.RemoveIngredient(userID, input.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated_products": updated})
}
