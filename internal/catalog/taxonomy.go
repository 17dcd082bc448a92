package catalog

import "fmt"

// Category is one node in the store taxonomy.
type Category struct {
	Name     string     `json:"name"`
	Slug     string     `json:"slug"`
	Order    int        `json:"order"`
	Children []Category `json:"children,omitempty"`
}

// Taxonomy is the ordered category forest products are classified into.
type Taxonomy struct {
	Roots    []Category
	Fallback string // slug returned when no classification rule matches

	slugs map[string]bool
}

// NewTaxonomy validates the forest and indexes its slugs.
// Slugs must be unique across the whole forest and the fallback slug must exist.
func NewTaxonomy(roots []Category, fallback string) (*Taxonomy, error) {
	t := &Taxonomy{Roots: roots, Fallback: fallback, slugs: make(map[string]bool)}
	var walk func(cs []Category) error
	walk = func(cs []Category) error {
		for _, c := range cs {
			if c.Slug == "" {
				return fmt.Errorf("category %q has no slug", c.Name)
			}
			if t.slugs[c.Slug] {
				return fmt.Errorf("duplicate category slug %q", c.Slug)
			}
			t.slugs[c.Slug] = true
			if err := walk(c.Children); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(roots); err != nil {
		return nil, err
	}
	if !t.slugs[fallback] {
		return nil, fmt.Errorf("fallback slug %q not in taxonomy", fallback)
	}
	return t, nil
}

// Contains reports whether slug exists anywhere in the forest.
func (t *Taxonomy) Contains(slug string) bool {
	return t.slugs[slug]
}

// Count returns the total number of categories including children.
func (t *Taxonomy) Count() int {
	return len(t.slugs)
}
