package cms

import (
	"context"
	"fmt"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// ProductDoc is the CMS document shape for one product.
type ProductDoc struct {
	Title        string          `json:"title"`
	Slug         string          `json:"slug"`
	Brand        string          `json:"brand"`
	Category     string          `json:"category"`
	CategoryHint string          `json:"categoryHint,omitempty"`
	ArticleCode  string          `json:"articleCode"`
	SupplierCode string          `json:"supplierCode,omitempty"`
	Price        int             `json:"price"`
	CostPrice    *int            `json:"costPrice,omitempty"`
	Volume       *catalog.Volume `json:"volume,omitempty"`
	InStock      bool            `json:"inStock"`
}

// ProductPayload builds the CMS document for a classified product. The
// slug embeds the brand and article code, so it is unique per vendor and
// stable across re-seeds.
func ProductPayload(p catalog.Product) ProductDoc {
	return ProductDoc{
		Title:        p.Title,
		Slug:         productSlug(p),
		Brand:        string(p.Brand),
		Category:     p.Category,
		CategoryHint: p.CategoryHint,
		ArticleCode:  p.ArticleCode,
		SupplierCode: p.SupplierCode,
		Price:        p.Price,
		CostPrice:    p.CostPrice,
		Volume:       p.Volume,
		InStock:      p.InStock,
	}
}

func productSlug(p catalog.Product) string {
	return catalog.Slugify(fmt.Sprintf("%s-%s-%s", p.Brand, p.Title, p.ArticleCode))
}

// UpsertProduct creates or updates one product record.
func (c *Client) UpsertProduct(ctx context.Context, p catalog.Product) error {
	doc := ProductPayload(p)
	return c.Upsert(ctx, "products", "slug", doc.Slug, doc)
}

// categoryDoc is the CMS document shape for one taxonomy node. Parent is
// the parent category's slug, empty for roots.
type categoryDoc struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Order  int    `json:"order"`
	Parent string `json:"parent,omitempty"`
}

// UpsertTaxonomy writes the whole category forest, parents before
// children, and returns the number of nodes written.
func (c *Client) UpsertTaxonomy(ctx context.Context, t *catalog.Taxonomy) (int, error) {
	n := 0
	var walk func(cs []catalog.Category, parent string) error
	walk = func(cs []catalog.Category, parent string) error {
		for _, cat := range cs {
			doc := categoryDoc{Name: cat.Name, Slug: cat.Slug, Order: cat.Order, Parent: parent}
			if err := c.Upsert(ctx, "categories", "slug", cat.Slug, doc); err != nil {
				return err
			}
			n++
			if err := walk(cat.Children, cat.Slug); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(t.Roots, ""); err != nil {
		return n, err
	}
	return n, nil
}

// UpsertBrand creates or updates one brand page.
func (c *Client) UpsertBrand(ctx context.Context, b catalog.BrandInfo) error {
	return c.Upsert(ctx, "brands", "slug", b.Slug, b)
}

// articleDoc is the CMS document shape for one blog post. Content is the
// rendered HTML body; the raw markdown travels along for editing.
type articleDoc struct {
	Title    string `json:"title"`
	Slug     string `json:"slug"`
	Brand    string `json:"brand"`
	Excerpt  string `json:"excerpt"`
	Tags     string `json:"tags"`
	Content  string `json:"content"`
	Markdown string `json:"markdown"`
}

// UpsertArticle creates or updates one blog post with its rendered body.
func (c *Client) UpsertArticle(ctx context.Context, a catalog.Article, renderedHTML string) error {
	doc := articleDoc{
		Title:    a.Title,
		Slug:     a.Slug,
		Brand:    string(a.Brand),
		Excerpt:  a.Excerpt,
		Tags:     strings.Join(a.Tags, ", "),
		Content:  renderedHTML,
		Markdown: a.Body,
	}
	return c.Upsert(ctx, "posts", "slug", a.Slug, doc)
}
