package services

import (
	"fmt"
	"log"
	"sync/atomic"

	"backend/allergen"
)

// The active synonym index is swapped atomically on reload so
// in-flight analyses never observe a half-built index.
var activeIndex atomic.Pointer[allergen.Index]

// InitCatalog loads the reference allergen dataset and publishes the
// first index. A missing or malformed dataset is fatal: without a
// catalog no analysis is meaningful. Build warnings (synonym
// collisions) are logged for the operator and returned.
func InitCatalog(path string) ([]string, error) {
	warnings, err := ReloadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("catalog init: %w", err)
	}
	idx := CatalogIndex()
	log.Printf("allergen catalog loaded: %d records, %d lookup keys, %d warnings",
		len(idx.Records()), idx.Len(), len(warnings))
	return warnings, nil
}

// ReloadCatalog builds a fresh index from the dataset on disk and
// swaps it in. The previous index keeps serving until the swap.
func ReloadCatalog(path string) ([]string, error) {
	records, err := allergen.LoadFile(path)
	if err != nil {
		return nil, err
	}
	idx, warnings := allergen.BuildIndex(records)
	for _, w := range warnings {
		log.Printf("allergen catalog: %s", w)
	}
	activeIndex.Store(idx)
	return warnings, nil
}

// CatalogIndex returns the active read-only synonym index. Nil before
// InitCatalog; allergen.Analyze tolerates a nil index.
func CatalogIndex() *allergen.Index {
	return activeIndex.Load()
}
