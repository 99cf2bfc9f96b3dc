package store

import (
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/taxonomy"
)

// MockTaxonomyStore is a mock implementation of TaxonomyStore for testing.
type MockTaxonomyStore struct {
	Categories []models.CategoryConfig

	LoadTaxonomyError error
	SaveTaxonomyError error

	Saved map[string]*taxonomy.Taxonomy
}

// LoadTaxonomy builds a taxonomy from the mock categories, or returns the
// built-in one when there are none.
func (m *MockTaxonomyStore) LoadTaxonomy() (*taxonomy.Taxonomy, error) {
	if m.LoadTaxonomyError != nil {
		return nil, m.LoadTaxonomyError
	}
	if len(m.Categories) == 0 {
		return taxonomy.Default(), nil
	}
	return taxonomy.FromConfig(m.Categories)
}

// SaveTaxonomy records the taxonomy under path.
func (m *MockTaxonomyStore) SaveTaxonomy(tax *taxonomy.Taxonomy, path string) error {
	if m.SaveTaxonomyError != nil {
		return m.SaveTaxonomyError
	}
	if m.Saved == nil {
		m.Saved = make(map[string]*taxonomy.Taxonomy)
	}
	m.Saved[path] = tax
	return nil
}
