package services

import "testing"

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{`{"a":1}`, `{"a":1}`, true},
		{"Here you go:\n```json\n{\"a\":1}\n```", `{"a":1}`, true},
		{`Sure! {"name":"Lanolin","risk":"low"} Hope that helps.`, `{"name":"Lanolin","risk":"low"}`, true},
		{"no json here", "", false},
		{"}{", "", false},
	}
	for _, tt := range tests {
		got, ok := extractJSON(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("extractJSON(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
