// Command seedgen extracts every vendor catalog found in a directory,
// classifies the products, and writes seed JSON files. With -push it
// also upserts everything into the CMS.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/classify"
	"github.com/Dubas14/HairCareStore/internal/cms"
	"github.com/Dubas14/HairCareStore/internal/config"
	"github.com/Dubas14/HairCareStore/internal/extractor"
	"github.com/Dubas14/HairCareStore/internal/parser"
	"github.com/Dubas14/HairCareStore/internal/refdata"
)

func main() {
	cfg := config.Load()

	catalogDir := flag.String("catalog", cfg.CatalogDir, "directory with vendor price documents")
	outDir := flag.String("out", cfg.SeedDir, "output directory for seed JSON files")
	push := flag.Bool("push", false, "upsert results into the CMS after writing files")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if err := run(log, cfg, *catalogDir, *outDir, *push); err != nil {
		log.Error("seed generation failed", "error", err)
		os.Exit(1)
	}
}

func run(log *slog.Logger, cfg config.Config, catalogDir, outDir string, push bool) error {
	taxonomy, err := refdata.DefaultTaxonomy()
	if err != nil {
		return fmt.Errorf("taxonomy: %w", err)
	}
	classifier, err := classify.New(classify.DefaultRules(), taxonomy)
	if err != nil {
		return fmt.Errorf("classifier: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	var all []catalog.Product
	for _, vendor := range extractor.Vendors() {
		products, err := extractVendor(catalogDir, vendor)
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("vendor document not found, skipping", "brand", vendor.Brand)
			continue
		}
		if err != nil {
			return fmt.Errorf("extract %s: %w", vendor.Brand, err)
		}

		products = extractor.Dedupe(products)
		classifier.Assign(products)
		log.Info("vendor extracted", "brand", vendor.Brand, "products", len(products))

		name := fmt.Sprintf("products-%s.json", vendor.Brand)
		if err := writeJSONFile(filepath.Join(outDir, name), products); err != nil {
			return err
		}
		all = append(all, products...)
	}

	if err := writeJSONFile(filepath.Join(outDir, "categories.json"), categories()); err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(outDir, "brands.json"), refdata.Brands()); err != nil {
		return err
	}
	posts, err := renderedArticles()
	if err != nil {
		return err
	}
	if err := writeJSONFile(filepath.Join(outDir, "blog-posts.json"), posts); err != nil {
		return err
	}
	log.Info("seed files written", "dir", outDir, "products", len(all))

	if !push {
		return nil
	}
	if !cfg.SeedEnabled() {
		return fmt.Errorf("-push requires CMS_URL, CMS_EMAIL, and CMS_PASSWORD")
	}
	return pushToCMS(log, cfg, taxonomy, all)
}

// extractVendor locates the vendor's document and runs its extraction
// strategy over it.
func extractVendor(dir string, vendor extractor.Vendor) ([]catalog.Product, error) {
	path, err := parser.FindFile(dir, vendor.Keyword)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	filename := filepath.Base(path)
	if parser.IsTableExtension(filename) {
		if vendor.Table == nil {
			return nil, fmt.Errorf("no tabular layout for %s", filename)
		}
		rows, err := parser.ReadTable(bytes.NewReader(data), filename)
		if err != nil {
			return nil, err
		}
		return extractor.ExtractTable(rows, *vendor.Table), nil
	}

	if vendor.Grammar == nil {
		return nil, fmt.Errorf("no line grammar for %s", filename)
	}
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	doc, err := p.Parse(bytes.NewReader(data), filename)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}
	return vendor.Grammar.Extract(doc), nil
}

// categoryEntry flattens the taxonomy for the seed file, parent slugs
// instead of nesting.
type categoryEntry struct {
	Name   string `json:"name"`
	Slug   string `json:"slug"`
	Order  int    `json:"order"`
	Parent string `json:"parent,omitempty"`
}

func categories() []categoryEntry {
	taxonomy, err := refdata.DefaultTaxonomy()
	if err != nil {
		return nil
	}
	var out []categoryEntry
	var walk func(cs []catalog.Category, parent string)
	walk = func(cs []catalog.Category, parent string) {
		for _, c := range cs {
			out = append(out, categoryEntry{Name: c.Name, Slug: c.Slug, Order: c.Order, Parent: parent})
			walk(c.Children, c.Slug)
		}
	}
	walk(taxonomy.Roots, "")
	return out
}

// postEntry is one blog post with its markdown body rendered to HTML.
type postEntry struct {
	catalog.Article
	ContentHTML string `json:"contentHtml"`
}

func renderedArticles() ([]postEntry, error) {
	var out []postEntry
	for _, a := range refdata.Articles() {
		html, err := refdata.RenderHTML(a.Body)
		if err != nil {
			return nil, fmt.Errorf("render article %s: %w", a.Slug, err)
		}
		out = append(out, postEntry{Article: a, ContentHTML: html})
	}
	return out, nil
}

func pushToCMS(log *slog.Logger, cfg config.Config, taxonomy *catalog.Taxonomy, products []catalog.Product) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	client := cms.NewClient(cfg.CMSBaseURL)
	defer client.Close()

	if err := client.Login(ctx, cfg.CMSEmail, cfg.CMSPassword); err != nil {
		return err
	}

	n, err := client.UpsertTaxonomy(ctx, taxonomy)
	if err != nil {
		return fmt.Errorf("seed taxonomy: %w", err)
	}
	log.Info("taxonomy seeded", "categories", n)

	for _, b := range refdata.Brands() {
		if err := client.UpsertBrand(ctx, b); err != nil {
			return fmt.Errorf("seed brand %s: %w", b.Slug, err)
		}
	}
	log.Info("brands seeded", "count", len(refdata.Brands()))

	for _, a := range refdata.Articles() {
		html, err := refdata.RenderHTML(a.Body)
		if err != nil {
			return fmt.Errorf("render article %s: %w", a.Slug, err)
		}
		if err := client.UpsertArticle(ctx, a, html); err != nil {
			return fmt.Errorf("seed article %s: %w", a.Slug, err)
		}
	}
	log.Info("articles seeded", "count", len(refdata.Articles()))

	seeded := 0
	for _, p := range products {
		if err := client.UpsertProduct(ctx, p); err != nil {
			log.Error("product upsert failed", "article_code", p.ArticleCode, "error", err)
			continue
		}
		seeded++
	}
	log.Info("products seeded", "count", seeded, "total", len(products))
	return nil
}

func writeJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
