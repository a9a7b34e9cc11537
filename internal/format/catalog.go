package format

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/mauv0809/courtchart/internal/tournament"
)

// Catalog is an immutable registry of formats keyed by id.
type Catalog struct {
	formats map[string]Format
	ordered []string
}

// NewCatalog validates every format and builds a registry. Formats are listed
// by category and then by competitor count.
func NewCatalog(formats ...Format) (*Catalog, error) {
	c := &Catalog{formats: make(map[string]Format, len(formats))}
	for _, f := range formats {
		if err := f.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.formats[f.ID]; exists {
			return nil, fmt.Errorf("%w: duplicate id %s", ErrInvalidFormat, f.ID)
		}
		c.formats[f.ID] = f.clone()
		c.ordered = append(c.ordered, f.ID)
	}
	slices.SortFunc(c.ordered, func(a, b string) int {
		fa, fb := c.formats[a], c.formats[b]
		if x := cmp.Compare(fa.Category, fb.Category); x != 0 {
			return x
		}
		return cmp.Compare(fa.RequiredCount, fb.RequiredCount)
	})
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the catalog of built-in formats. It panics if a built-in table is invalid.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := NewCatalog(builtin()...)
		if err != nil {
			panic(fmt.Sprintf("built-in format catalog: %v", err))
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

// Lookup returns a copy of the format with the given id.
func (c *Catalog) Lookup(id string) (Format, error) {
	f, ok := c.formats[id]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrUnknownFormat, id)
	}
	return f.clone(), nil
}

// All returns copies of every format.
func (c *Catalog) All() []Format {
	out := make([]Format, 0, len(c.ordered))
	for _, id := range c.ordered {
		out = append(out, c.formats[id].clone())
	}
	return out
}

// ForCount resolves a category and competitor count to the one format that supports it.
func (c *Catalog) ForCount(category tournament.Category, n int) (Format, error) {
	for _, id := range c.ordered {
		f := c.formats[id]
		if f.Category == category && f.RequiredCount == n {
			return f.clone(), nil
		}
	}
	return Format{}, fmt.Errorf("%w: no %s format for %d competitors", ErrInvalidCompetitorCount, category, n)
}
