package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"backend/allergen"
)

// GeminiService asks the Gemini REST API for advisory ingredient
// insight: why a flagged ingredient is a concern, alternate names,
// category. Everything it produces is annotation appended after the
// deterministic analysis; it never changes a classification.
type GeminiService struct {
	apiKey string
	model  string
	client *http.Client
}

func NewGeminiService() *GeminiService {
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-1.5-flash"
	}
	return &GeminiService{
		apiKey: os.Getenv("GEMINI_API_KEY"),
		model:  model,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Available reports whether enrichment is configured at all.
func (g *GeminiService) Available() bool {
	return g.apiKey != ""
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiService) generate(prompt string) (string, error) {
	if !g.Available() {
		return "", fmt.Errorf("gemini not configured")
	}

	req := geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}}
	b, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal gemini payload: %w", err)
	}

	u := fmt.Sprintf(
		"https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s",
		g.model, g.apiKey,
	)

	resp, err := g.client.Post(u, "application/json", bytes.NewReader(b))
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read Gemini response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("gemini API error %d: %s", resp.StatusCode, string(body))
	}

	var gr geminiResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return "", fmt.Errorf("failed to parse Gemini JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini returned no candidates")
	}
	return gr.Candidates[0].Content.Parts[0].Text, nil
}

// extractJSON pulls the first {...} block out of a model reply, which
// tends to wrap JSON in prose or code fences.
func extractJSON(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

// ExplainFindings annotates matched findings with one-line
// explanations. Best effort: on any error the report is returned
// untouched, classifications and counts never change.
func (g *GeminiService) ExplainFindings(report *allergen.Report) {
	if !g.Available() || report == nil {
		return
	}

	var flagged []string
	for _, f := range report.Findings {
		if f.Classification != allergen.ClassSafe {
			flagged = append(flagged, f.Ingredient)
		}
	}
	if len(flagged) == 0 {
		return
	}

	prompt := fmt.Sprintf(`For each of these cosmetic ingredients, explain in one sentence why it can trigger allergic contact dermatitis: %s

Reply as JSON: {"explanations": {"<ingredient>": "<sentence>", ...}}`,
		strings.Join(flagged, ", "))

	text, err := g.generate(prompt)
	if err != nil {
		return
	}
	raw, ok := extractJSON(text)
	if !ok {
		return
	}
	var parsed struct {
		Explanations map[string]string `json:"explanations"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return
	}

	for i := range report.Findings {
		f := &report.Findings[i]
		if f.Classification == allergen.ClassSafe {
			continue
		}
		if expl, ok := parsed.Explanations[f.Ingredient]; ok {
			f.Explanation = expl
		}
	}
}

// IngredientInfo is the enriched dossier for one ingredient.
type IngredientInfo struct {
	Ingredient        string   `json:"ingredient"`
	AlternativeNames  []string `json:"alternative_names"`
	Category          string   `json:"category"`
	AllergenPotential string   `json:"allergen_potential"`
	Description       string   `json:"description"`
	CommonIn          []string `json:"common_in"`
}

// LookupIngredient asks for detailed allergen information about one
// ingredient name.
func (g *GeminiService) LookupIngredient(name string) (*IngredientInfo, error) {
	prompt := fmt.Sprintf(`Provide information about the cosmetic ingredient: %s

Reply as JSON:
{"ingredient": "official name", "alternative_names": ["..."], "category": "...", "allergen_potential": "low/medium/high", "description": "...", "common_in": ["..."]}`, name)

	text, err := g.generate(prompt)
	if err != nil {
		return nil, err
	}
	raw, ok := extractJSON(text)
	if !ok {
		return nil, fmt.Errorf("no JSON in gemini reply")
	}
	var info IngredientInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return nil, fmt.Errorf("failed to parse ingredient info: %w", err)
	}
	return &info, nil
}

// SuggestSynonyms asks for alternate names of an ingredient, for
// operator review before they are added to the reference dataset.
func (g *GeminiService) SuggestSynonyms(name string) ([]string, error) {
	prompt := fmt.Sprintf(`List alternative names, INCI names, trade names and abbreviations for the cosmetic ingredient: %s
Return only the names, one per line, no explanations.`, name)

	text, err := g.generate(prompt)
	if err != nil {
		return nil, err
	}

	synonyms := []string{name}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(strings.TrimSpace(line), "-*•0123456789. ")
		if line == "" || len(line) <= 2 {
			continue
		}
		dup := false
		for _, s := range synonyms {
			if allergen.Normalize(s) == allergen.Normalize(line) {
				dup = true
				break
			}
		}
		if !dup {
			synonyms = append(synonyms, line)
		}
	}
	if len(synonyms) > 10 {
		synonyms = synonyms[:10]
	}
	return synonyms, nil
}
