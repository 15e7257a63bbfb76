package allergen

import "fmt"

// Index maps every normalized name (canonical or synonym) to its
// allergen record. Built once, then read-only; safe for concurrent
// lookups from any number of scans.
type Index struct {
	records []Record
	byKey   map[string]*Record
}

// BuildIndex registers the canonical name and every synonym of each
// record under its normalized key. When two records claim the same
// key the first registration wins and a warning is collected for the
// operator; messy source data must never be fatal here.
func BuildIndex(records []Record) (*Index, []string) {
	idx := &Index{
		records: records,
		byKey:   make(map[string]*Record, len(records)*4),
	}
	var warnings []string
	for i := range idx.records {
		rec := &idx.records[i]
		warnings = idx.register(rec.Name, rec, warnings)
		for _, syn := range rec.Synonyms {
			warnings = idx.register(syn, rec, warnings)
		}
	}
	return idx, warnings
}

func (x *Index) register(name string, rec *Record, warnings []string) []string {
	key := Normalize(name)
	if key == "" {
		return warnings
	}
	if prev, ok := x.byKey[key]; ok {
		if prev != rec {
			warnings = append(warnings, fmt.Sprintf(
				"synonym %q of %q already registered for %q, keeping first", name, rec.Name, prev.Name))
		}
		return warnings
	}
	x.byKey[key] = rec
	return warnings
}

// Lookup resolves an already-normalized key to its allergen record.
func (x *Index) Lookup(key string) (*Record, bool) {
	if x == nil {
		return nil, false
	}
	rec, ok := x.byKey[key]
	return rec, ok
}

// Len reports the number of distinct keys in the index.
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.byKey)
}

// Records returns the loaded catalog in dataset order.
func (x *Index) Records() []Record {
	if x == nil {
		return nil
	}
	return x.records
}
