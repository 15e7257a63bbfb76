package allergen

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Record is one canonical allergen from the reference dataset
// (Contact Dermatitis Institute export). Records are immutable once
// loaded; a dataset refresh builds a whole new Index.
type Record struct {
	Name       string   `json:"name"`
	WhereFound string   `json:"where_found"`
	Categories []string `json:"product_categories"`
	Note       string   `json:"note,omitempty"`
	URL        string   `json:"reference_url,omitempty"`
	Synonyms   []string `json:"synonyms"`
}

// LoadRecords decodes the reference dataset. A dataset that cannot be
// decoded, or that contains a record without a canonical name, is an
// error: without a usable catalog no analysis is meaningful.
func LoadRecords(r io.Reader) ([]Record, error) {
	var records []Record
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("decode allergen dataset: %w", err)
	}
	for i, rec := range records {
		if Normalize(rec.Name) == "" {
			return nil, fmt.Errorf("allergen dataset: record %d has no canonical name", i)
		}
	}
	return records, nil
}

// LoadFile reads the reference dataset from disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open allergen dataset: %w", err)
	}
	defer f.Close()
	return LoadRecords(f)
}
