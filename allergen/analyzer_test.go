package allergen

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestAnalyzeCatalogMatchViaSynonym(t *testing.T) {
	idx, _ := BuildIndex(testRecords())

	report := Analyze([]string{"MIT"}, nil, idx)

	if report.CatalogMatches != 1 || report.PersonalMatches != 0 || report.SafeCount != 0 {
		t.Fatalf("counts = %d/%d/%d, want 1 catalog only",
			report.PersonalMatches, report.CatalogMatches, report.SafeCount)
	}
	f := report.Findings[0]
	if f.Classification != ClassCatalog {
		t.Errorf("classification = %q, want catalog", f.Classification)
	}
	if f.Matched != "Methylisothiazolinone" || f.Record == nil || f.Record.Name != "Methylisothiazolinone" {
		t.Errorf("MIT did not resolve to Methylisothiazolinone: %+v", f)
	}
}

func TestAnalyzePersonalPrecedenceOverCatalog(t *testing.T) {
	idx, _ := BuildIndex(testRecords())
	personal := []PersonalAllergen{{Name: "Fragrance", Severity: SeveritySevere}}

	// label says "Parfum", user declared "Fragrance": the catalog
	// record bridges the two names, and the personal verdict wins
	report := Analyze([]string{"Parfum"}, personal, idx)

	if report.PersonalMatches != 1 || report.CatalogMatches != 0 {
		t.Fatalf("counts = %d personal / %d catalog, want personal precedence",
			report.PersonalMatches, report.CatalogMatches)
	}
	f := report.Findings[0]
	if f.Classification != ClassPersonal || f.Severity != SeveritySevere || f.Matched != "Fragrance" {
		t.Errorf("finding = %+v, want personal severe Fragrance", f)
	}
}

func TestAnalyzeCaseWhitespaceInsensitive(t *testing.T) {
	idx, _ := BuildIndex(testRecords())
	a := Analyze([]string{"FRAGRANCE"}, nil, idx)
	b := Analyze([]string{" fragrance "}, nil, idx)

	if a.Findings[0].Classification != b.Findings[0].Classification ||
		a.Findings[0].Key != b.Findings[0].Key ||
		a.CatalogMatches != b.CatalogMatches {
		t.Errorf("case/whitespace variants classified differently: %+v vs %+v",
			a.Findings[0], b.Findings[0])
	}
}

func TestAnalyzeDeduplicatesByNormalizedKey(t *testing.T) {
	idx, _ := BuildIndex(testRecords())

	report := Analyze([]string{"Water", "water", "WATER "}, nil, idx)

	if len(report.Findings) != 1 {
		t.Fatalf("got %d findings, want 1", len(report.Findings))
	}
	if report.SafeCount != 1 || report.Findings[0].Classification != ClassSafe {
		t.Errorf("dedup result wrong: %+v", report)
	}
	if report.Findings[0].Ingredient != "Water" {
		t.Errorf("first-seen raw spelling should be kept, got %q", report.Findings[0].Ingredient)
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	idx, _ := BuildIndex(testRecords())
	personal := []PersonalAllergen{{Name: "Fragrance", Severity: SeverityMild}}

	report := Analyze(nil, personal, idx)

	if !report.NothingToAnalyze {
		t.Error("empty input must report nothing-to-analyze")
	}
	if report.PersonalMatches != 0 || report.CatalogMatches != 0 || report.SafeCount != 0 {
		t.Errorf("empty input must have zero counts: %+v", report)
	}
	if len(report.Findings) != 0 {
		t.Errorf("empty input must have no findings: %+v", report.Findings)
	}
}

func TestAnalyzeInvalidSeverityDefaultsToUnknown(t *testing.T) {
	report := Analyze([]string{"Shea Butter"},
		[]PersonalAllergen{{Name: "Shea Butter", Severity: "catastrophic"}}, nil)
	if report.Findings[0].Severity != SeverityUnknown {
		t.Errorf("severity = %q, want unknown", report.Findings[0].Severity)
	}
}

func TestAnalyzeNilIndex(t *testing.T) {
	report := Analyze([]string{"Water"}, nil, nil)
	if report.SafeCount != 1 {
		t.Errorf("analysis without a catalog should classify safe: %+v", report)
	}
}

func TestAnalyzeDeterministic(t *testing.T) {
	idx, _ := BuildIndex(testRecords())
	tokens := []string{"Water", "Parfum", "MIT", "Glycerin", "Wool Wax", "water"}
	personal := []PersonalAllergen{
		{Name: "Lanolin", Severity: SeverityModerate},
		{Name: "Shea Butter", Severity: SeveritySevere},
	}

	first, err := json.Marshal(Analyze(tokens, personal, idx))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 25; i++ {
		again, err := json.Marshal(Analyze(tokens, personal, idx))
		if err != nil {
			t.Fatal(err)
		}
		if string(first) != string(again) {
			t.Fatalf("report not byte-identical on run %d:\n%s\n%s", i, first, again)
		}
	}
}

func TestEndToEndCatalogScenario(t *testing.T) {
	records := []Record{{Name: "Fragrance", Synonyms: []string{"Parfum", "Perfume"}}}
	idx, warnings := BuildIndex(records)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	tokens := ParseIngredients("Water, Glycerin, Parfum, Vitamin E")
	want := []string{"Water", "Glycerin", "Parfum", "Vitamin E"}
	if !reflect.DeepEqual(tokens, want) {
		t.Fatalf("tokens = %v, want %v", tokens, want)
	}

	report := Analyze(tokens, nil, idx)
	if report.CatalogMatches != 1 || report.SafeCount != 3 || report.PersonalMatches != 0 {
		t.Fatalf("counts = %d/%d/%d, want 0 personal, 1 catalog, 3 safe",
			report.PersonalMatches, report.CatalogMatches, report.SafeCount)
	}
	for _, f := range report.Findings {
		if f.Ingredient == "Parfum" && (f.Classification != ClassCatalog || f.Matched != "Fragrance") {
			t.Errorf("Parfum should resolve to Fragrance: %+v", f)
		}
	}
}

func TestEndToEndPersonalScenario(t *testing.T) {
	idx, _ := BuildIndex(testRecords())
	personal := []PersonalAllergen{{Name: "Shea Butter", Severity: SeveritySevere}}

	tokens := ParseIngredients("Water, Shea Butter, Glycerin")
	report := Analyze(tokens, personal, idx)

	if report.PersonalMatches != 1 || report.SafeCount != 2 || report.CatalogMatches != 0 {
		t.Fatalf("counts = %d/%d/%d, want 1 personal, 0 catalog, 2 safe",
			report.PersonalMatches, report.CatalogMatches, report.SafeCount)
	}
	for _, f := range report.Findings {
		if f.Key == "shea butter" && f.Severity != SeveritySevere {
			t.Errorf("severity = %q, want severe", f.Severity)
		}
	}
}
