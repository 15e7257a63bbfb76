package allergen

import "strings"

// Severity categorizes how serious a user-declared allergen is.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityUnknown  Severity = "unknown"
)

// ValidSeverity reports whether s is one of the accepted levels.
func ValidSeverity(s Severity) bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere, SeverityUnknown:
		return true
	}
	return false
}

// PersonalAllergen is one entry from a user's own allergen list.
type PersonalAllergen struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
}

// Classification is the single bucket every analyzed ingredient lands in.
type Classification string

const (
	ClassPersonal Classification = "personal_allergen"
	ClassCatalog  Classification = "catalog_allergen"
	ClassSafe     Classification = "safe"
)

// Finding is the verdict for one unique normalized ingredient.
type Finding struct {
	Ingredient     string         `json:"ingredient"` // raw spelling as first seen
	Key            string         `json:"key"`
	Classification Classification `json:"classification"`
	Severity       Severity       `json:"severity,omitempty"`
	Matched        string         `json:"matched_allergen,omitempty"`
	Record         *Record        `json:"record,omitempty"`
	// Explanation is advisory enrichment appended after analysis; it
	// never participates in the classification itself.
	Explanation string `json:"explanation,omitempty"`
}

// Report is the full result of one analysis pass.
type Report struct {
	Findings         []Finding `json:"findings"`
	PersonalMatches  int       `json:"personal_matches"`
	CatalogMatches   int       `json:"catalog_matches"`
	SafeCount        int       `json:"safe_count"`
	NothingToAnalyze bool      `json:"nothing_to_analyze"`
}

// Analyze classifies each ingredient token into exactly one of
// personal-allergen match, catalog-allergen match, or safe. Tokens
// that normalize to the same key are analyzed once, in first-seen
// order. A personal match always wins over a catalog match: the
// user's explicit declaration overrides the generic database, and a
// label name is also matched against the personal list through the
// catalog record's alternate names (the user who declared "Fragrance"
// is warned when the label says "Parfum").
//
// Pure and deterministic: no I/O, no randomness, no shared state
// beyond the read-only index.
func Analyze(tokens []string, personal []PersonalAllergen, idx *Index) Report {
	report := Report{Findings: []Finding{}}

	personalByKey := make(map[string]PersonalAllergen, len(personal))
	for _, pa := range personal {
		key := Normalize(pa.Name)
		if key == "" {
			continue
		}
		if _, ok := personalByKey[key]; !ok {
			personalByKey[key] = pa
		}
	}

	seen := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		key := Normalize(tok)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		f := Finding{Ingredient: strings.TrimSpace(tok), Key: key}

		if pa, ok := personalByKey[key]; ok {
			markPersonal(&f, pa)
			report.PersonalMatches++
		} else if rec, ok := idx.Lookup(key); ok {
			if pa, ok := personalViaRecord(rec, personalByKey); ok {
				markPersonal(&f, pa)
				report.PersonalMatches++
			} else {
				f.Classification = ClassCatalog
				f.Matched = rec.Name
				f.Record = rec
				report.CatalogMatches++
			}
		} else {
			f.Classification = ClassSafe
			report.SafeCount++
		}

		report.Findings = append(report.Findings, f)
	}

	report.NothingToAnalyze = len(report.Findings) == 0
	return report
}

func markPersonal(f *Finding, pa PersonalAllergen) {
	f.Classification = ClassPersonal
	f.Matched = pa.Name
	f.Severity = pa.Severity
	if !ValidSeverity(f.Severity) {
		f.Severity = SeverityUnknown
	}
}

// personalViaRecord checks whether any name of a catalog record —
// canonical or synonym — is in the user's personal list.
func personalViaRecord(rec *Record, byKey map[string]PersonalAllergen) (PersonalAllergen, bool) {
	if pa, ok := byKey[Normalize(rec.Name)]; ok {
		return pa, true
	}
	for _, syn := range rec.Synonyms {
		if pa, ok := byKey[Normalize(syn)]; ok {
			return pa, true
		}
	}
	return PersonalAllergen{}, false
}
