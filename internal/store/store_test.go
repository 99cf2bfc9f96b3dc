package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/chat-txn/internal/logging"
	"fjacquet/chat-txn/internal/models"
	"fjacquet/chat-txn/internal/parsererror"
	"fjacquet/chat-txn/internal/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ TaxonomyLoader = (*TaxonomyStore)(nil)
	_ TaxonomyLoader = (*MockTaxonomyStore)(nil)
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0600)
	require.NoError(t, err)
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	testFile := filepath.Join(dir, "test.yaml")
	writeFile(t, testFile, "test content")

	store := NewTaxonomyStore("", logging.NewMockLogger())

	file, err := store.FindConfigFile(testFile)
	assert.NoError(t, err)
	assert.Equal(t, testFile, file)

	_, err = store.FindConfigFile(filepath.Join(dir, "nonexistent.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadTaxonomy_NoFileUsesBuiltin(t *testing.T) {
	tax, err := NewTaxonomyStore("", logging.NewMockLogger()).LoadTaxonomy()
	require.NoError(t, err)
	assert.Same(t, taxonomy.Default(), tax)
}

func TestLoadTaxonomy_MissingFileWarnsAndUsesBuiltin(t *testing.T) {
	mock := logging.NewMockLogger()
	missing := filepath.Join(t.TempDir(), "missing.yaml")

	tax, err := NewTaxonomyStore(missing, mock).LoadTaxonomy()
	require.NoError(t, err)
	assert.Same(t, taxonomy.Default(), tax)
	assert.Len(t, mock.GetEntriesByLevel("WARN"), 1)
}

func TestLoadTaxonomy_Formats(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "categories key",
			content: `categories:
  - name: pets
    keywords: ["dog", "cat"]
    verbs: ["feed"]
  - name: garden
    keywords: ["seed"]
`,
		},
		{
			name: "bare list",
			content: `- name: pets
  keywords: ["dog", "cat"]
  verbs: ["feed"]
- name: garden
  keywords: ["seed"]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "taxonomy.yaml")
			writeFile(t, file, tt.content)

			tax, err := NewTaxonomyStore(file, logging.NewMockLogger()).LoadTaxonomy()
			require.NoError(t, err)
			assert.Equal(t, []string{"pets", "garden"}, tax.Names())

			pets, ok := tax.Lookup("pets")
			require.True(t, ok)
			assert.Equal(t, []string{"feed"}, pets.Verbs)
		})
	}
}

func TestLoadTaxonomy_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		reason  string
	}{
		{name: "malformed", content: `{malformed: yaml: content}`, reason: "not a category list"},
		{name: "empty file", content: ``, reason: "at least one category"},
		{name: "no keywords", content: "- name: pets\n  verbs: [feed]\n", reason: `"pets" has no keywords`},
		{name: "catch-all", content: "- name: other\n  keywords: [misc]\n", reason: "reserved catch-all"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file := filepath.Join(t.TempDir(), "taxonomy.yaml")
			writeFile(t, file, tt.content)

			_, err := NewTaxonomyStore(file, logging.NewMockLogger()).LoadTaxonomy()
			require.Error(t, err)

			var verr *parsererror.ValidationError
			require.True(t, errors.As(err, &verr), "got %T: %v", err, err)
			assert.Equal(t, file, verr.FilePath)
			assert.Contains(t, verr.Reason, tt.reason)
		})
	}
}

func TestSaveTaxonomy_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "taxonomy.yaml")
	store := NewTaxonomyStore(path, logging.NewMockLogger())

	require.NoError(t, store.SaveTaxonomy(taxonomy.Default(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(models.PermissionConfigFile), info.Mode().Perm())

	loaded, err := store.LoadTaxonomy()
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Default().Config(), loaded.Config())
}

func TestMockTaxonomyStore(t *testing.T) {
	mock := &MockTaxonomyStore{}
	tax, err := mock.LoadTaxonomy()
	require.NoError(t, err)
	assert.Same(t, taxonomy.Default(), tax)

	mock.Categories = []models.CategoryConfig{{Name: "pets", Keywords: []string{"dog"}}}
	tax, err = mock.LoadTaxonomy()
	require.NoError(t, err)
	assert.Equal(t, []string{"pets"}, tax.Names())

	require.NoError(t, mock.SaveTaxonomy(tax, "out.yaml"))
	assert.Same(t, tax, mock.Saved["out.yaml"])

	mock.LoadTaxonomyError = errors.New("boom")
	_, err = mock.LoadTaxonomy()
	assert.EqualError(t, err, "boom")
}
