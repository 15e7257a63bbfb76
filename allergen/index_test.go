package allergen

import (
	"strings"
	"testing"
)

func testRecords() []Record {
	return []Record{
		{
			Name:       "Fragrance",
			WhereFound: "Perfumes, cosmetics, household products",
			Categories: []string{"perfume", "lotion", "soap"},
			Synonyms:   []string{"Parfum", "Perfume"},
		},
		{
			Name:       "Methylisothiazolinone",
			WhereFound: "Preservative in rinse-off cosmetics",
			Categories: []string{"shampoo", "lotion"},
			Synonyms:   []string{"MIT", "MI", "2-Methyl-4-isothiazolin-3-one"},
		},
		{
			Name:       "Lanolin",
			WhereFound: "Moisturizers, lip products",
			Categories: []string{"lotion", "lip balm"},
			Synonyms:   []string{"Wool Wax", "Wool Alcohol"},
		},
	}
}

func TestBuildIndexRegistersCanonicalAndSynonyms(t *testing.T) {
	idx, warnings := BuildIndex(testRecords())
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	for key, wantName := range map[string]string{
		"fragrance":             "Fragrance",
		"parfum":                "Fragrance",
		"perfume":               "Fragrance",
		"mit":                   "Methylisothiazolinone",
		"methylisothiazolinone": "Methylisothiazolinone",
		"wool wax":              "Lanolin",
	} {
		rec, ok := idx.Lookup(key)
		if !ok {
			t.Errorf("Lookup(%q): not found", key)
			continue
		}
		if rec.Name != wantName {
			t.Errorf("Lookup(%q) = %q, want %q", key, rec.Name, wantName)
		}
	}

	if _, ok := idx.Lookup("water"); ok {
		t.Error("Lookup(water) should miss")
	}
}

func TestBuildIndexFirstRegistrationWins(t *testing.T) {
	records := []Record{
		{Name: "Fragrance", Synonyms: []string{"Parfum"}},
		{Name: "Balsam of Peru", Synonyms: []string{"Parfum", "Myroxylon Pereirae"}},
	}
	idx, warnings := BuildIndex(records)

	rec, ok := idx.Lookup("parfum")
	if !ok || rec.Name != "Fragrance" {
		t.Fatalf("Lookup(parfum) = %v, want first-registered Fragrance", rec)
	}

	if len(warnings) != 1 {
		t.Fatalf("want exactly one collision warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "Parfum") || !strings.Contains(warnings[0], "Fragrance") {
		t.Errorf("warning should name both claimants: %q", warnings[0])
	}

	// the rest of the losing record is still reachable
	if rec, ok := idx.Lookup("myroxylon pereirae"); !ok || rec.Name != "Balsam of Peru" {
		t.Errorf("non-colliding synonym of second record lost: %v", rec)
	}
}

func TestBuildIndexDuplicateSynonymOnSameRecordIsQuiet(t *testing.T) {
	records := []Record{
		{Name: "Fragrance", Synonyms: []string{"Parfum", "parfum", "PARFUM "}},
	}
	_, warnings := BuildIndex(records)
	if len(warnings) != 0 {
		t.Errorf("same-record duplicates should not warn, got %v", warnings)
	}
}

func TestIndexNilSafe(t *testing.T) {
	var idx *Index
	if _, ok := idx.Lookup("fragrance"); ok {
		t.Error("nil index lookup should miss")
	}
	if idx.Len() != 0 {
		t.Error("nil index Len should be 0")
	}
	if idx.Records() != nil {
		t.Error("nil index Records should be nil")
	}
}

func TestLoadRecords(t *testing.T) {
	data := `[
		{"name": "Fragrance", "where_found": "Perfumes", "product_categories": ["perfume"], "synonyms": ["Parfum", "Perfume"]},
		{"name": "Lanolin", "where_found": "Moisturizers", "product_categories": [], "synonyms": []}
	]`
	records, err := LoadRecords(strings.NewReader(data))
	if err != nil {
		t.Fatalf("LoadRecords: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[0].Synonyms[0] != "Parfum" {
		t.Errorf("synonyms not decoded: %v", records[0].Synonyms)
	}
}

func TestLoadRecordsRejectsMalformed(t *testing.T) {
	for name, data := range map[string]string{
		"truncated json": `[{"name": "Fragrance"`,
		"nameless":       `[{"where_found": "Perfumes"}]`,
		"blank name":     `[{"name": "   "}]`,
	} {
		if _, err := LoadRecords(strings.NewReader(data)); err == nil {
			t.Errorf("%s: want error, got nil", name)
		}
	}
}
