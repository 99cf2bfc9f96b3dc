// Package store loads and saves the category taxonomy file.
package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/taxonomy"

	"gopkg.in/yaml.v3"
)

// TaxonomyLoader is implemented by TaxonomyStore and MockTaxonomyStore.
type TaxonomyLoader interface {
	LoadTaxonomy() (*taxonomy.Taxonomy, error)
	SaveTaxonomy(tax *taxonomy.Taxonomy, path string) error
}

// TaxonomyStore reads a taxonomy override from a YAML file. With no file
// configured the built-in taxonomy is used.
type TaxonomyStore struct {
	File   string
	logger logging.Logger
}

// NewTaxonomyStore creates a store for the given taxonomy file path.
func NewTaxonomyStore(file string, logger logging.Logger) *TaxonomyStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &TaxonomyStore{File: file, logger: logger}
}

// FindConfigFile looks for a configuration file in standard locations
func (s *TaxonomyStore) FindConfigFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err == nil {
			return filename, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "chat-txn", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}

// LoadCategories reads the category entries of the configured file. A file
// that cannot be found yields no entries and no error.
func (s *TaxonomyStore) LoadCategories() ([]models.CategoryConfig, string, error) {
	if s.File == "" {
		return nil, "", nil
	}

	filePath, err := s.FindConfigFile(s.File)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("Taxonomy file not found, using built-in taxonomy",
				logging.F(logging.FieldFilePath, s.File))
			return nil, "", nil
		}
		return nil, "", fmt.Errorf("error resolving taxonomy file: %w", err)
	}

	data, err := os.ReadFile(filePath) // #nosec G304 -- path comes from configuration
	if err != nil {
		return nil, filePath, fmt.Errorf("error reading taxonomy file: %w", err)
	}

	// Either "categories: [...]" or a bare list of categories
	var cfg models.CategoriesConfig
	if err := yaml.Unmarshal(data, &cfg); err == nil && len(cfg.Categories) > 0 {
		return cfg.Categories, filePath, nil
	}

	var categories []models.CategoryConfig
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, filePath, &parsererror.ValidationError{
			FilePath: filePath,
			Reason:   fmt.Sprintf("not a category list: %v", err),
		}
	}
	return categories, filePath, nil
}

// LoadTaxonomy returns the taxonomy described by the configured file, or the
// built-in one when there is no file. Entries that break the taxonomy rules
// are reported as a *parsererror.ValidationError.
func (s *TaxonomyStore) LoadTaxonomy() (*taxonomy.Taxonomy, error) {
	entries, filePath, err := s.LoadCategories()
	if err != nil {
		return nil, err
	}
	if filePath == "" {
		return taxonomy.Default(), nil
	}

	tax, err := taxonomy.FromConfig(entries)
	if err != nil {
		return nil, &parsererror.ValidationError{FilePath: filePath, Reason: err.Error()}
	}

	s.logger.Debug("Loaded taxonomy",
		logging.F(logging.FieldFilePath, filePath),
		logging.F(logging.FieldCount, tax.Len()),
		logging.F(logging.FieldCategory, strings.Join(tax.Names(), ",")))
	return tax, nil
}

// SaveTaxonomy writes tax to path in the same YAML shape LoadTaxonomy reads.
func (s *TaxonomyStore) SaveTaxonomy(tax *taxonomy.Taxonomy, path string) error {
	data, err := yaml.Marshal(tax.Config())
	if err != nil {
		return fmt.Errorf("error marshaling taxonomy: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, models.PermissionDirectory); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, models.PermissionConfigFile); err != nil {
		return fmt.Errorf("error writing taxonomy: %w", err)
	}

	s.logger.Debug("Saved taxonomy",
		logging.F(logging.FieldFilePath, path),
		logging.F(logging.FieldCount, tax.Len()))
	return nil
}
