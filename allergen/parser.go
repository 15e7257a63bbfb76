package allergen

import (
	"regexp"
	"strings"
)

var (
	// commas and semicolons are the two delimiters cosmetic labels use
	delimiterRe = regexp.MustCompile(`[,;]`)
	// leading bullets / list numbers OCR picks up ("1. Water", "•Parfum").
	// Bullets strip with or without a following space; numbered prefixes
	// require one so chemical names like "2-Phenoxyethanol" stay intact.
	bulletRe = regexp.MustCompile(`^\s*(?:[-*•·]+\s*|\d+[.)]\s+)`)
	// keys that are nothing but digits, punctuation and spaces are OCR noise
	noiseKeyRe = regexp.MustCompile(`^[0-9[:punct:] ]+$`)

	lineBreaks = strings.NewReplacer("\r", " ", "\n", " ", "\t", " ")
)

// ParseIngredients splits raw label text (as extracted by OCR) into an
// ordered list of ingredient substrings. Line breaks are treated as
// spaces, tokens are split on commas/semicolons, and tokens that
// normalize to an empty key or to pure digits/punctuation are dropped.
// Duplicates are kept; deduplication happens during analysis.
func ParseIngredients(raw string) []string {
	parts := delimiterRe.Split(lineBreaks.Replace(raw), -1)

	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(bulletRe.ReplaceAllString(p, ""))
		if p == "" {
			continue
		}
		key := Normalize(p)
		if key == "" || noiseKeyRe.MatchString(key) {
			continue
		}
		out = append(out, p)
	}
	return out
}
