package allergen

import (
	"reflect"
	"testing"
)

func TestParseIngredients(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain comma list",
			raw:  "Water, Glycerin, Parfum, Vitamin E",
			want: []string{"Water", "Glycerin", "Parfum", "Vitamin E"},
		},
		{
			name: "semicolons and line breaks",
			raw:  "Aqua;\nCetyl Alcohol;\r\nShea Butter",
			want: []string{"Aqua", "Cetyl Alcohol", "Shea Butter"},
		},
		{
			name: "bullets and numbering stripped",
			raw:  "1. Water, 2. Glycerin, • Fragrance",
			want: []string{"Water", "Glycerin", "Fragrance"},
		},
		{
			name: "numeric and punctuation artifacts dropped",
			raw:  "Water, 1, **, Glycerin, 5%",
			want: []string{"Water", "Glycerin"},
		},
		{
			name: "empty tokens dropped",
			raw:  "Water,, ,Glycerin,",
			want: []string{"Water", "Glycerin"},
		},
		{
			name: "duplicates preserved",
			raw:  "Water, Glycerin, Water",
			want: []string{"Water", "Glycerin", "Water"},
		},
		{
			name: "hyphenated chemical prefix kept",
			raw:  "2-Phenoxyethanol, Water",
			want: []string{"2-Phenoxyethanol", "Water"},
		},
		{
			name: "bullet glued to token stripped",
			raw:  "•Fragrance, ·Lanolin, -Water",
			want: []string{"Fragrance", "Lanolin", "Water"},
		},
		{
			name: "bulleted chemical prefix kept",
			raw:  "• 2-Phenoxyethanol, •2-Phenoxyethanol",
			want: []string{"2-Phenoxyethanol", "2-Phenoxyethanol"},
		},
		{
			name: "empty input",
			raw:  "",
			want: []string{},
		},
		{
			name: "only noise",
			raw:  "\n\n, ;; 12, **",
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseIngredients(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseIngredients(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseIngredientsDeterministicOrder(t *testing.T) {
	raw := "Glycerin, Water, Fragrance, Water"
	first := ParseIngredients(raw)
	for i := 0; i < 10; i++ {
		again := ParseIngredients(raw)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("parse order not stable: %v vs %v", first, again)
		}
	}
}
