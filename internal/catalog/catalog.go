// Package catalog loads the static table that maps dependency names to the
// documentation files available for them.
package catalog

import (
	"sort"

	"github.com/quantmind-br/llmdocs/internal/domain"
)

// Catalog is an immutable mapping from dependency name to documentation files.
// The zero value is an empty catalog.
type Catalog struct {
	entries map[string]domain.CatalogEntry
}

var _ domain.Catalog = (*Catalog)(nil)

// New builds a catalog from entries. The map is copied.
func New(entries map[string]domain.CatalogEntry) *Catalog {
	c := &Catalog{entries: make(map[string]domain.CatalogEntry, len(entries))}
	for name, e := range entries {
		c.entries[name] = e
	}
	return c
}

// Empty returns a catalog with no entries
func Empty() *Catalog {
	return &Catalog{}
}

// Lookup returns the entry for a dependency
func (c *Catalog) Lookup(name string) (domain.CatalogEntry, bool) {
	if c == nil {
		return domain.CatalogEntry{}, false
	}
	e, ok := c.entries[name]
	return e, ok
}

// Has reports whether a dependency has an entry
func (c *Catalog) Has(name string) bool {
	_, ok := c.Lookup(name)
	return ok
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Names returns every dependency name in sorted order
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
