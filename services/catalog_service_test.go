package services

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "allergens.json")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReloadCatalogSwapsIndex(t *testing.T) {
	path := writeCatalog(t, `[
		{"name": "Fragrance", "synonyms": ["Parfum"]}
	]`)

	if _, err := ReloadCatalog(path); err != nil {
		t.Fatalf("ReloadCatalog: %v", err)
	}
	if got := CatalogIndex().Len(); got != 2 {
		t.Errorf("index has %d keys, want 2", got)
	}

	// Grow the dataset and reload; the swap must be visible.
	path2 := writeCatalog(t, `[
		{"name": "Fragrance", "synonyms": ["Parfum"]},
		{"name": "Lanolin", "synonyms": ["Wool Wax"]}
	]`)
	if _, err := ReloadCatalog(path2); err != nil {
		t.Fatalf("ReloadCatalog: %v", err)
	}
	if got := CatalogIndex().Len(); got != 4 {
		t.Errorf("index has %d keys after reload, want 4", got)
	}
}

func TestReloadCatalogKeepsOldIndexOnError(t *testing.T) {
	path := writeCatalog(t, `[{"name": "Lanolin"}]`)
	if _, err := ReloadCatalog(path); err != nil {
		t.Fatalf("ReloadCatalog: %v", err)
	}
	before := CatalogIndex()

	bad := writeCatalog(t, `not json`)
	if _, err := ReloadCatalog(bad); err == nil {
		t.Fatal("ReloadCatalog accepted malformed dataset")
	}
	if CatalogIndex() != before {
		t.Error("failed reload replaced the active index")
	}
}
