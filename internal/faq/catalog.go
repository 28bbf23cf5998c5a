// Package faq holds the FAQ catalog and the per-request query model that
// derives the visible questions and the single expanded answer from a
// category, a search term and the open entry.
package faq

import (
	"errors"
	"fmt"
)

// Entry is a single question/answer pair. ID is stable and doubles as the
// URL fragment used for deep links.
type Entry struct {
	ID       string `yaml:"id" json:"id"`
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// Category is a named, ordered group of entries.
type Category struct {
	Name    string  `yaml:"name" json:"name"`
	Entries []Entry `yaml:"entries" json:"entries"`
}

type location struct {
	category int
	position int
}

// Catalog is the static, ordered set of FAQ categories. It is immutable
// once built and safe to share between requests.
type Catalog struct {
	categories []Category
	byName     map[string]int
	byID       map[string]location
}

// NewCatalog validates the categories and indexes them by name and entry ID.
func NewCatalog(categories []Category) (*Catalog, error) {
	if len(categories) == 0 {
		return nil, errors.New("faq catalog has no categories")
	}

	c := &Catalog{
		categories: make([]Category, len(categories)),
		byName:     make(map[string]int, len(categories)),
		byID:       make(map[string]location),
	}

	for ci, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("faq category %d has no name", ci)
		}
		if _, dup := c.byName[cat.Name]; dup {
			return nil, fmt.Errorf("duplicate faq category %q", cat.Name)
		}
		c.byName[cat.Name] = ci

		entries := make([]Entry, len(cat.Entries))
		copy(entries, cat.Entries)
		for pi, e := range entries {
			if e.ID == "" {
				return nil, fmt.Errorf("faq entry %d in %q has no id", pi, cat.Name)
			}
			if prev, dup := c.byID[e.ID]; dup {
				return nil, fmt.Errorf("duplicate faq entry id %q (in %q and %q)",
					e.ID, c.categories[prev.category].Name, cat.Name)
			}
			c.byID[e.ID] = location{category: ci, position: pi}
		}
		c.categories[ci] = Category{Name: cat.Name, Entries: entries}
	}

	return c, nil
}

// Categories returns the categories in catalog order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// CategoryNames returns the category names in catalog order.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Entries returns the unfiltered entries of a category.
func (c *Catalog) Entries(category string) ([]Entry, bool) {
	i, ok := c.byName[category]
	if !ok {
		return nil, false
	}
	return c.categories[i].Entries, true
}

// Locate finds the owning category of an entry and its position in that
// category's unfiltered list.
func (c *Catalog) Locate(id string) (category string, position int, ok bool) {
	loc, ok := c.byID[id]
	if !ok {
		return "", 0, false
	}
	return c.categories[loc.category].Name, loc.position, true
}

// All returns every entry across categories, in catalog order.
func (c *Catalog) All() []Entry {
	var all []Entry
	for _, cat := range c.categories {
		all = append(all, cat.Entries...)
	}
	return all
}
