package extractor

import "github.com/Dubas14/HairCareStore/internal/catalog"

// Dedupe collapses repeated emissions of the same article code within one
// vendor's output, keeping only the first occurrence. Overlapping grammar
// windows routinely re-emit a product; later duplicates are dropped
// silently and the surviving order equals first-occurrence order.
func Dedupe(products []catalog.Product) []catalog.Product {
	seen := make(map[string]bool, len(products))
	out := make([]catalog.Product, 0, len(products))
	for _, p := range products {
		if seen[p.ArticleCode] {
			continue
		}
		seen[p.ArticleCode] = true
		out = append(out, p)
	}
	return out
}
