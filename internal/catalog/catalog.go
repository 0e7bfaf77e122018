package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/DjordjeVuckovic/newsdesk/internal/domain"
	"gopkg.in/yaml.v3"
)

// DefaultColor is used for labels that match no known category.
const DefaultColor = "#c62828"

//go:embed categories.yaml
var snapshot []byte

type document struct {
	Categories []domain.Category `yaml:"categories"`
}

// Catalog is a read-only view of the category table. It is built once and
// safe for concurrent use.
type Catalog struct {
	categories []domain.Category
	index      map[string]domain.Category
}

// Embedded returns the catalog compiled into the binary.
func Embedded() (*Catalog, error) {
	return Parse(snapshot)
}

func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse category snapshot: %w", err)
	}
	return New(doc.Categories)
}

func New(categories []domain.Category) (*Catalog, error) {
	c := &Catalog{
		categories: make([]domain.Category, 0, len(categories)),
		index:      make(map[string]domain.Category, len(categories)*3),
	}

	seen := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.ID == "" {
			return nil, fmt.Errorf("category %q has no id", cat.Name)
		}
		if seen[cat.ID] {
			return nil, fmt.Errorf("duplicate category id %q", cat.ID)
		}
		seen[cat.ID] = true

		c.categories = append(c.categories, cat)
		for _, key := range []string{cat.Name, cat.Slug, cat.ID} {
			if key != "" {
				c.index[normalize(key)] = cat
			}
		}
	}
	return c, nil
}

func (c *Catalog) All() []domain.Category {
	out := make([]domain.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// Lookup finds a category by id, slug or display name, ignoring case.
func (c *Catalog) Lookup(label string) (domain.Category, bool) {
	cat, ok := c.index[normalize(label)]
	return cat, ok
}

// Color returns the badge colour for an article category label.
func (c *Catalog) Color(label string) string {
	if cat, ok := c.Lookup(label); ok && cat.Color != "" {
		return cat.Color
	}
	return DefaultColor
}

// Write serialises categories in the snapshot format.
func Write(w io.Writer, categories []domain.Category) error {
	if _, err := io.WriteString(w, "# Generated by cmd/catalog_export from the categories table. Do not edit by hand.\n"); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Categories: categories}); err != nil {
		return fmt.Errorf("failed to encode category snapshot: %w", err)
	}
	return enc.Close()
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
