// Package taxonomy holds the ordered, read-only category table used to score
// transaction messages.
package taxonomy

import (
	"fmt"
	"strings"

	"fjacquet/chat-txn/internal/models"
)

// Category is one scored entry of the taxonomy. Keywords are matched as
// substrings of the message; verbs against the recognized verbs.
type Category struct {
	Name     string
	Keywords []string
	Verbs    []string
}

// Taxonomy is an ordered set of categories. It is never modified after New
// returns, so a single value can be shared by any number of goroutines.
// Declaration order breaks score ties in favour of the earlier category.
type Taxonomy struct {
	categories []Category
	index      map[string]int
}

// New validates categories and returns a taxonomy holding a private copy of them.
// Keywords and verbs are lower-cased and trimmed.
func New(categories []Category) (*Taxonomy, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("taxonomy must declare at least one category")
	}

	t := &Taxonomy{
		categories: make([]Category, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, fmt.Errorf("category at position %d has no name", len(t.categories))
		}
		if models.IsCatchAll(name) {
			return nil, fmt.Errorf("category %q is a reserved catch-all and cannot be declared", name)
		}
		if _, dup := t.index[name]; dup {
			return nil, fmt.Errorf("category %q is declared twice", name)
		}
		keywords := normalize(c.Keywords)
		if len(keywords) == 0 {
			return nil, fmt.Errorf("category %q has no keywords", name)
		}
		t.index[name] = len(t.categories)
		t.categories = append(t.categories, Category{
			Name:     name,
			Keywords: keywords,
			Verbs:    normalize(c.Verbs),
		})
	}
	return t, nil
}

// FromConfig builds a taxonomy from the YAML category entries.
func FromConfig(entries []models.CategoryConfig) (*Taxonomy, error) {
	categories := make([]Category, len(entries))
	for i, e := range entries {
		categories[i] = Category{Name: e.Name, Keywords: e.Keywords, Verbs: e.Verbs}
	}
	return New(categories)
}

func normalize(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}

// Len returns the number of declared categories.
func (t *Taxonomy) Len() int {
	return len(t.categories)
}

// Names returns the category names in declaration order.
func (t *Taxonomy) Names() []string {
	names := make([]string, len(t.categories))
	for i, c := range t.categories {
		names[i] = c.Name
	}
	return names
}

// Range calls fn for every category in declaration order until fn returns false.
// The Category passed to fn shares storage with the taxonomy and must not be modified.
func (t *Taxonomy) Range(fn func(c Category) bool) {
	for _, c := range t.categories {
		if !fn(c) {
			return
		}
	}
}

// Lookup returns a copy of the named category.
func (t *Taxonomy) Lookup(name string) (Category, bool) {
	i, ok := t.index[name]
	if !ok {
		return Category{}, false
	}
	c := t.categories[i]
	return Category{
		Name:     c.Name,
		Keywords: append([]string(nil), c.Keywords...),
		Verbs:    append([]string(nil), c.Verbs...),
	}, true
}

// Config returns the taxonomy in its YAML shape.
func (t *Taxonomy) Config() models.CategoriesConfig {
	cfg := models.CategoriesConfig{Categories: make([]models.CategoryConfig, len(t.categories))}
	for i, c := range t.categories {
		cfg.Categories[i] = models.CategoryConfig{
			Name:     c.Name,
			Keywords: append([]string(nil), c.Keywords...),
			Verbs:    append([]string(nil), c.Verbs...),
		}
	}
	return cfg
}
