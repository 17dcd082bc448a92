// Package classify assigns taxonomy categories to extracted products.
// Classification is an ordered list of keyword rules evaluated
// first-match-wins; the rule order is part of the contract.
package classify

import (
	"fmt"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// Rule is one ordered classification step. A rule matches when:
//   - at least one Title keyword occurs in the lowercase title (or, for
//     hint rules, one Hint keyword occurs in the lowercase hint),
//   - at least one Also keyword occurs in the title, when Also is set,
//   - no NotTitle keyword occurs in the title.
//
// The first matching rule decides the slug.
type Rule struct {
	Slug     string
	Title    []string // any-of, substring match against the title
	Also     []string // any-of, second title group narrowing the rule
	Hint     []string // any-of, substring match against the category hint
	NotTitle []string // none-of guard against the title
}

func (r Rule) matches(title, hint string) bool {
	if len(r.Title) > 0 && !containsAny(title, r.Title) {
		return false
	}
	if len(r.Hint) > 0 && !containsAny(hint, r.Hint) {
		return false
	}
	if len(r.Also) > 0 && !containsAny(title, r.Also) {
		return false
	}
	if containsAny(title, r.NotTitle) {
		return false
	}
	return true
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// Classifier resolves products to taxonomy slugs.
type Classifier struct {
	rules    []Rule
	taxonomy *catalog.Taxonomy
}

// New validates that every rule targets an existing taxonomy slug and
// returns a classifier. Classification can then never fail: the
// taxonomy's fallback slug guarantees total coverage.
func New(rules []Rule, taxonomy *catalog.Taxonomy) (*Classifier, error) {
	for i, r := range rules {
		if !taxonomy.Contains(r.Slug) {
			return nil, fmt.Errorf("rule %d: slug %q not in taxonomy", i, r.Slug)
		}
	}
	return &Classifier{rules: rules, taxonomy: taxonomy}, nil
}

// Resolve returns the taxonomy slug for a title and category hint.
func (c *Classifier) Resolve(title, hint string) string {
	title = strings.ToLower(title)
	hint = strings.ToLower(hint)
	for _, r := range c.rules {
		if r.matches(title, hint) {
			return r.Slug
		}
	}
	return c.taxonomy.Fallback
}

// Assign sets the category slug on every product in place.
func (c *Classifier) Assign(products []catalog.Product) {
	for i := range products {
		products[i].Category = c.Resolve(products[i].Title, products[i].CategoryHint)
	}
}
