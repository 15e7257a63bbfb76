package allergen

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize turns a raw ingredient string into the key used for every
// comparison in this package: lowercased, accent-stripped, surrounding
// whitespace trimmed, interior whitespace runs collapsed to one space,
// and footnote markers (edge asterisks, trailing periods) removed.
// Hyphens inside chemical names ("2-Phenoxyethanol") are kept.
// Idempotent; empty or whitespace-only input normalizes to "".
func Normalize(s string) string {
	folded, _, err := transform.String(stripAccents, strings.ToLower(s))
	if err != nil {
		folded = strings.ToLower(s)
	}
	key := strings.Join(strings.Fields(folded), " ")
	return strings.TrimFunc(key, func(r rune) bool {
		return r == '*' || r == '.' || unicode.IsSpace(r)
	})
}
