// CLAUDE:SUMMARY Catalog data model and YAML loader: disposal-instruction items with per-locale names, keywords, and instructions.
package catalog

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kasagi/gomical/pkg/locale"
)

// Item is a single disposal-instruction record. Immutable once loaded.
type Item struct {
	ID           string                     `yaml:"id" json:"id"`
	Name         locale.Text                `yaml:"name" json:"name"`
	Keywords     map[locale.Locale][]string `yaml:"keywords" json:"-"`
	Category     Category                   `yaml:"category" json:"category"`
	Instructions locale.Text                `yaml:"instructions" json:"-"`
	Icon         string                     `yaml:"icon" json:"icon,omitempty"`

	// searchKeywords is the precomputed per-locale keyword view: the
	// locale's own keywords first, Japanese always included, then the
	// remaining locales. Cross-language keywords let an English speaker
	// find ペットボトル by typing "pet bottle".
	searchKeywords map[locale.Locale][]string
}

// SearchKeywords returns the merged, deduplicated keyword list used when
// searching in loc.
func (it *Item) SearchKeywords(loc locale.Locale) []string {
	return it.searchKeywords[loc]
}

// Localized is the per-locale view of an Item served by the API.
type Localized struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	CategoryName string   `json:"category_name"`
	Instructions string   `json:"instructions"`
	Icon         string   `json:"icon,omitempty"`
}

// Localize resolves the item's text fields for loc.
func (it *Item) Localize(loc locale.Locale) Localized {
	return Localized{
		ID:           it.ID,
		Name:         it.Name.Resolve(loc),
		Category:     it.Category,
		CategoryName: it.Category.DisplayName(loc),
		Instructions: it.Instructions.Resolve(loc),
		Icon:         it.Icon,
	}
}

// Catalog is the loaded, read-only item set plus the curated popular
// search terms. Safe for concurrent use by any number of readers.
type Catalog struct {
	Version string
	Source  string

	items   []*Item
	byID    map[string]*Item
	popular map[locale.Locale][]string
}

type catalogFile struct {
	Version      string                     `yaml:"version"`
	Source       string                     `yaml:"source"`
	Items        []*Item                    `yaml:"items"`
	PopularTerms map[locale.Locale][]string `yaml:"popular_terms"`
}

// Load reads and validates a catalog YAML file. Malformed catalog data is
// the one unrecoverable condition in this package: it fails at process
// start, never at query time.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a Catalog from YAML bytes.
func Parse(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		Version: f.Version,
		Source:  f.Source,
		items:   f.Items,
		byID:    make(map[string]*Item, len(f.Items)),
		popular: f.PopularTerms,
	}

	for _, it := range f.Items {
		if it.ID == "" {
			return nil, fmt.Errorf("catalog item with empty id")
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %q", it.ID)
		}
		if _, err := ParseCategory(string(it.Category)); err != nil {
			return nil, fmt.Errorf("item %s: %w", it.ID, err)
		}
		if it.Name.Resolve(locale.Default) == "" {
			return nil, fmt.Errorf("item %s: missing name", it.ID)
		}
		it.buildSearchKeywords()
		c.byID[it.ID] = it
	}
	return c, nil
}

// buildSearchKeywords precomputes the merged keyword view for each locale.
func (it *Item) buildSearchKeywords() {
	it.searchKeywords = make(map[locale.Locale][]string, len(locale.All))
	for _, loc := range locale.All {
		var merged []string
		seen := make(map[string]bool)
		add := func(kws []string) {
			for _, kw := range kws {
				kw = strings.TrimSpace(kw)
				if kw == "" {
					continue
				}
				key := strings.ToLower(kw)
				if seen[key] {
					continue
				}
				seen[key] = true
				merged = append(merged, kw)
			}
		}
		add(it.Keywords[loc])
		add(it.Keywords[locale.Default])
		for _, other := range locale.All {
			if other != loc && other != locale.Default {
				add(it.Keywords[other])
			}
		}
		it.searchKeywords[loc] = merged
	}
}

// Items returns all catalog items in file order.
func (c *Catalog) Items() []*Item {
	return c.items
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// ItemByID returns the item with the given id, or nil.
func (c *Catalog) ItemByID(id string) *Item {
	return c.byID[id]
}

// ItemsByCategory returns the items in the given category, in file order.
func (c *Catalog) ItemsByCategory(cat Category) []*Item {
	var out []*Item
	for _, it := range c.items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}
