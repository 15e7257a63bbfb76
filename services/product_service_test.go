package services

import (
	"reflect"
	"testing"

	"backend/allergen"
)

func crossRefIndex(t *testing.T) *allergen.Index {
	t.Helper()
	idx, warnings := allergen.BuildIndex([]allergen.Record{
		{Name: "Fragrance", Synonyms: []string{"Parfum", "Perfume"}},
		{Name: "Lanolin", Synonyms: []string{"Wool Wax"}},
	})
	if len(warnings) != 0 {
		t.Fatalf("unexpected index warnings: %v", warnings)
	}
	return idx
}

func TestIngredientKeysExpandsSynonyms(t *testing.T) {
	idx := crossRefIndex(t)

	got := ingredientKeys("Parfum, Water", idx)
	want := []string{"parfum", "fragrance", "parfum", "perfume", "water"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ingredientKeys = %v, want %v", got, want)
	}
}

func TestClearedThroughSynonym(t *testing.T) {
	idx := crossRefIndex(t)

	// A safe product listed "Fragrance"; the allergic side says
	// "Parfum". The synonym bridge must clear it as a suspect.
	safeKeys := map[string]struct{}{"fragrance": {}}
	if !cleared("parfum", safeKeys, idx) {
		t.Error("cleared(parfum) = false, want true via Fragrance synonym")
	}

	// Lanolin never appears on the safe side, so it stays suspect.
	if cleared("lanolin", safeKeys, idx) {
		t.Error("cleared(lanolin) = true, want false")
	}

	// An ingredient unknown to the catalog can't be cleared by synonyms.
	if cleared("shea butter", safeKeys, idx) {
		t.Error("cleared(shea butter) = true, want false")
	}
}
