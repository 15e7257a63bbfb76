package services

import (
	"errors"
	"strings"
	"time"

	"backend/allergen"
	"backend/config"
	"backend/models"
)

// SaveSafeProduct records a product the user tolerated.
func SaveSafeProduct(userID uint, productName string, ingredients []string) (*models.SafeProduct, error) {
	if strings.TrimSpace(productName) == "" {
		productName = "Unknown Product"
	}
	p := &models.SafeProduct{
		UserID:      userID,
		ProductName: productName,
		Ingredients: strings.Join(ingredients, ", "),
		ScanDate:    time.Now(),
	}
	return p, config.DB.Create(p).Error
}

// SaveAllergicProduct records a product the user reacted to.
func SaveAllergicProduct(userID uint, productName string, ingredients []string, reactionSeverity string) (*models.AllergicProduct, error) {
	if strings.TrimSpace(productName) == "" {
		productName = "Unknown Product"
	}
	if !allergen.ValidSeverity(allergen.Severity(reactionSeverity)) {
		reactionSeverity = string(allergen.SeverityUnknown)
	}
	p := &models.AllergicProduct{
		UserID:           userID,
		ProductName:      productName,
		Ingredients:      strings.Join(ingredients, ", "),
		ScanDate:         time.Now(),
		ReactionSeverity: reactionSeverity,
	}
	return p, config.DB.Create(p).Error
}

func ListSafeProducts(userID uint) ([]models.SafeProduct, error) {
	var products []models.SafeProduct
	err := config.DB.Where("user_id = ?", userID).Order("scan_date DESC").Find(&products).Error
	return products, err
}

func ListAllergicProducts(userID uint) ([]models.AllergicProduct, error) {
	var products []models.AllergicProduct
	err := config.DB.Where("user_id = ?", userID).Order("scan_date DESC").Find(&products).Error
	return products, err
}

func DeleteSafeProduct(userID, productID uint) error {
	var p models.SafeProduct
	if err := config.DB.First(&p, productID).Error; err != nil {
		return errors.New("product not found")
	}
	if p.UserID != userID {
		return errors.New("unauthorized")
	}
	return config.DB.Delete(&p).Error
}

func DeleteAllergicProduct(userID, productID uint) error {
	var p models.AllergicProduct
	if err := config.DB.First(&p, productID).Error; err != nil {
		return errors.New("product not found")
	}
	if p.UserID != userID {
		return errors.New("unauthorized")
	}
	return config.DB.Delete(&p).Error
}

// PotentialAllergen is an ingredient that shows up in the user's
// reaction history but never in a tolerated product.
type PotentialAllergen struct {
	Name  string `json:"name"`
	Count int    `json:"count"` // allergic products containing it
}

// DetectPotentialAllergens cross-references the user's allergic and
// safe product histories: an ingredient present only on the allergic
// side is a candidate culprit, ranked by how often it appears. The
// catalog index widens both sides with known synonyms so "Parfum" in
// one list and "Fragrance" in the other cancel out.
func DetectPotentialAllergens(userID uint) ([]PotentialAllergen, error) {
	allergic, err := ListAllergicProducts(userID)
	if err != nil {
		return nil, err
	}
	safe, err := ListSafeProducts(userID)
	if err != nil {
		return nil, err
	}
	if len(allergic) == 0 || len(safe) == 0 {
		return []PotentialAllergen{}, nil
	}

	idx := CatalogIndex()

	safeKeys := make(map[string]struct{})
	for _, p := range safe {
		for _, key := range ingredientKeys(p.Ingredients, idx) {
			safeKeys[key] = struct{}{}
		}
	}

	// collect the suspect names in first-appearance order, counting
	// how many distinct allergic products carry each
	var suspects []PotentialAllergen
	pos := make(map[string]int)
	countedIn := make(map[string]map[uint]struct{})
	for _, p := range allergic {
		for _, raw := range allergen.ParseIngredients(p.Ingredients) {
			key := allergen.Normalize(raw)
			if _, tolerated := safeKeys[key]; tolerated {
				continue
			}
			if cleared(key, safeKeys, idx) {
				continue
			}
			i, seen := pos[key]
			if !seen {
				i = len(suspects)
				pos[key] = i
				suspects = append(suspects, PotentialAllergen{Name: raw})
				countedIn[key] = make(map[uint]struct{})
			}
			if _, counted := countedIn[key][p.ID]; !counted {
				countedIn[key][p.ID] = struct{}{}
				suspects[i].Count++
			}
		}
	}

	// highest count first; stable so equal counts keep appearance order
	for i := 1; i < len(suspects); i++ {
		for j := i; j > 0 && suspects[j].Count > suspects[j-1].Count; j-- {
			suspects[j], suspects[j-1] = suspects[j-1], suspects[j]
		}
	}
	return suspects, nil
}

// ingredientKeys expands a product's ingredient text into normalized
// keys, including every known synonym of each recognized ingredient.
func ingredientKeys(ingredients string, idx *allergen.Index) []string {
	var keys []string
	for _, raw := range allergen.ParseIngredients(ingredients) {
		key := allergen.Normalize(raw)
		keys = append(keys, key)
		if rec, ok := idx.Lookup(key); ok {
			keys = append(keys, allergen.Normalize(rec.Name))
			for _, syn := range rec.Synonyms {
				keys = append(keys, allergen.Normalize(syn))
			}
		}
	}
	return keys
}

// cleared reports whether any synonym of key's catalog record appears
// in the tolerated set.
func cleared(key string, safeKeys map[string]struct{}, idx *allergen.Index) bool {
	rec, ok := idx.Lookup(key)
	if !ok {
		return false
	}
	if _, ok := safeKeys[allergen.Normalize(rec.Name)]; ok {
		return true
	}
	for _, syn := range rec.Synonyms {
		if _, ok := safeKeys[allergen.Normalize(syn)]; ok {
			return true
		}
	}
	return false
}

// RenameIngredient corrects an OCR-mangled ingredient name across all
// of a user's allergic products. Returns how many entries changed.
func RenameIngredient(userID uint, oldName, newName string) (int, error) {
	if strings.TrimSpace(newName) == "" {
		return 0, errors.New("new ingredient name is required")
	}
	products, err := ListAllergicProducts(userID)
	if err != nil {
		return 0, err
	}

	oldKey := allergen.Normalize(oldName)
	updated := 0
	for i := range products {
		p := &products[i]
		ingredients := allergen.ParseIngredients(p.Ingredients)
		changed := false
		for j, ing := range ingredients {
			if allergen.Normalize(ing) == oldKey {
				ingredients[j] = newName
				updated++
				changed = true
			}
		}
		if changed {
			p.Ingredients = strings.Join(ingredients, ", ")
			if err := config.DB.Save(p).Error; err != nil {
				return updated, err
			}
		}
	}
	return updated, nil
}

// RemoveIngredient deletes an ingredient from all of a user's
// allergic products (e.g. an OCR artifact that isn't an ingredient).
// Returns how many products changed.
func RemoveIngredient(userID uint, name string) (int, error) {
	products, err := ListAllergicProducts(userID)
	if err != nil {
		return 0, err
	}

	key := allergen.Normalize(name)
	removed := 0
	for i := range products {
		p := &products[i]
		ingredients := allergen.ParseIngredients(p.Ingredients)
		kept := ingredients[:0]
		for _, ing := range ingredients {
			if allergen.Normalize(ing) != key {
				kept = append(kept, ing)
			}
		}
		if len(kept) < len(ingredients) {
			p.Ingredients = strings.Join(kept, ", ")
			if err := config.DB.Save(p).Error; err != nil {
				return removed, err
			}
			removed++
		}
	}
	return removed, nil
}
