package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"sooth/internal/models"
)

// Catalog holds the immutable resource and activity libraries.
// It is loaded once at startup and never mutated afterwards.
type Catalog struct {
	Resources  []models.Resource `yaml:"resources"`
	Activities []models.Activity `yaml:"activities"`
}

// Load reads the catalog file at path. If the file does not exist it is
// seeded with the built-in default catalog so users can edit it later.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c := Default()
		if seedErr := c.Save(path); seedErr != nil {
			return nil, fmt.Errorf("seeding catalog file: %w", seedErr)
		}
		return c, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}
	return &c, nil
}

// Save writes the catalog to path as YAML.
func (c *Catalog) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// FilterResources returns resources whose title or description contains the
// search term (case-insensitive) and whose category matches. An empty search
// term matches everything; category "all" disables the category filter.
// Catalog order is preserved.
func (c *Catalog) FilterResources(search, category string) []models.Resource {
	needle := strings.ToLower(search)
	var out []models.Resource
	for _, r := range c.Resources {
		if !matchesText(needle, r.Title, r.Description) {
			continue
		}
		if category != "all" && string(r.Category) != category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterActivities returns activities in the given category, in catalog
// order. Category "all" returns the full catalog. An unknown category
// matches nothing.
func (c *Catalog) FilterActivities(category string) []models.Activity {
	if category == "all" {
		out := make([]models.Activity, len(c.Activities))
		copy(out, c.Activities)
		return out
	}
	var out []models.Activity
	for _, a := range c.Activities {
		if string(a.Category) == category {
			out = append(out, a)
		}
	}
	return out
}

// SearchActivities returns activities whose title or description contains
// the search term, case-insensitively, in catalog order.
func (c *Catalog) SearchActivities(search string) []models.Activity {
	return c.QueryActivities(search, "all")
}

// QueryActivities combines a text search with a category filter, both
// optional, with the same AND semantics as FilterResources.
func (c *Catalog) QueryActivities(search, category string) []models.Activity {
	needle := strings.ToLower(search)
	var out []models.Activity
	for _, a := range c.Activities {
		if !matchesText(needle, a.Title, a.Description) {
			continue
		}
		if category != "all" && string(a.Category) != category {
			continue
		}
		out = append(out, a)
	}
	return out
}

// FeaturedResources returns resources flagged for promotional placement,
// in catalog order.
func (c *Catalog) FeaturedResources() []models.Resource {
	var out []models.Resource
	for _, r := range c.Resources {
		if r.Featured {
			out = append(out, r)
		}
	}
	return out
}

// ActivityByID looks up an activity by its identifier.
func (c *Catalog) ActivityByID(id string) (models.Activity, bool) {
	for _, a := range c.Activities {
		if a.ID == id {
			return a, true
		}
	}
	return models.Activity{}, false
}

// ResourceByID looks up a resource by its identifier.
func (c *Catalog) ResourceByID(id string) (models.Resource, bool) {
	for _, r := range c.Resources {
		if r.ID == id {
			return r, true
		}
	}
	return models.Resource{}, false
}

func matchesText(needle string, fields ...string) bool {
	if needle == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
