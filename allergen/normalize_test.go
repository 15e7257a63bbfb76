package allergen

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"Fragrance", "fragrance"},
		{"  FRAGRANCE  ", "fragrance"},
		{"Shea   Butter", "shea butter"},
		{"Parfum.", "parfum"},
		{"Limonene*", "limonene"},
		{"*Linalool", "linalool"},
		{"2-Phenoxyethanol", "2-phenoxyethanol"},
		{"Méthylisothiazolinone", "methylisothiazolinone"},
		{"Aloë Vera", "aloe vera"},
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{"...", ""},
		{"Cocamidopropyl\nBetaine", "cocamidopropyl betaine"},
	}
	for _, tt := range tests {
		got := Normalize(tt.input)
		if got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Fragrance", "  Shea   Butter ", "Limonene*.", "2-Phenoxyethanol",
		"Méthylisothiazolinone", "", " . ", "WATER",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}
