package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/classify"
	"github.com/Dubas14/HairCareStore/internal/cms"
	"github.com/Dubas14/HairCareStore/internal/extractor"
	"github.com/Dubas14/HairCareStore/internal/parser"
)

// Worker runs one vendor document through the full pipeline:
// parse, extract, dedupe, classify, seed.
type Worker struct {
	classifier *classify.Classifier
	cmsClient  *cms.Client // nil disables seeding
	maxSeed    int
	log        *slog.Logger
}

func NewWorker(classifier *classify.Classifier, cmsClient *cms.Client, maxSeed int, log *slog.Logger) *Worker {
	if maxSeed < 1 {
		maxSeed = 1
	}
	return &Worker{
		classifier: classifier,
		cmsClient:  cmsClient,
		maxSeed:    maxSeed,
		log:        log,
	}
}

// Process executes every pipeline phase for the job, updating its
// status as it goes. A failure before products exist marks the job
// failed; per-product seeding errors leave it partial.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "brand", job.Brand, "filename", job.Filename)

	products, lines, err := w.extract(job)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "failed")
		return
	}
	job.ReleaseFileData()

	unique := extractor.Dedupe(products)
	job.SetCounts(lines, len(unique), len(products)-len(unique))
	log.Info("extraction done",
		"lines", lines,
		"products", len(unique),
		"duplicates", len(products)-len(unique))

	job.SetStatus(StatusClassifying, "classifying")
	w.classifier.Assign(unique)
	job.SetProducts(unique)

	if w.cmsClient == nil {
		job.SetStatus(StatusCompleted, "completed")
		return
	}

	job.SetStatus(StatusSeeding, "seeding")
	failed := w.seed(ctx, job, unique)
	switch {
	case failed == 0:
		job.SetStatus(StatusCompleted, "completed")
	case failed < len(unique):
		log.Warn("job partially seeded", "failed", failed, "total", len(unique))
		job.SetStatus(StatusPartial, "completed")
	default:
		log.Error("seeding failed for every product", "total", len(unique))
		job.SetStatus(StatusFailed, "failed")
	}
}

// extract parses the file and runs the vendor's extraction strategy.
func (w *Worker) extract(job *Job) ([]catalog.Product, int, error) {
	vendor, ok := extractor.VendorFor(job.Brand)
	if !ok {
		return nil, 0, fmt.Errorf("unknown brand: %s", job.Brand)
	}

	job.SetStatus(StatusParsing, "parsing")
	data := job.FileData()

	if parser.IsTableExtension(job.Filename) {
		if vendor.Table == nil {
			return nil, 0, fmt.Errorf("brand %s has no tabular layout for %s", job.Brand, job.Filename)
		}
		rows, err := parser.ReadTable(bytes.NewReader(data), job.Filename)
		if err != nil {
			return nil, 0, fmt.Errorf("read table: %w", err)
		}
		job.SetStatus(StatusExtracting, "extracting")
		return extractor.ExtractTable(rows, *vendor.Table), len(rows), nil
	}

	if vendor.Grammar == nil {
		return nil, 0, fmt.Errorf("brand %s has no line grammar for %s", job.Brand, job.Filename)
	}
	p, err := parser.ForFile(job.Filename)
	if err != nil {
		return nil, 0, err
	}
	doc, err := p.Parse(bytes.NewReader(data), job.Filename)
	if err != nil {
		return nil, 0, fmt.Errorf("parse %s: %w", job.Filename, err)
	}

	job.SetStatus(StatusExtracting, "extracting")
	return vendor.Grammar.Extract(doc), doc.LineCount(), nil
}

// seed upserts products with bounded concurrency and retry on
// transient CMS failures. Returns the number of products that could
// not be written.
func (w *Worker) seed(ctx context.Context, job *Job, products []catalog.Product) int {
	sem := make(chan struct{}, w.maxSeed)
	var wg sync.WaitGroup
	var mu sync.Mutex
	failed := 0

	for _, p := range products {
		select {
		case <-ctx.Done():
			mu.Lock()
			failed++
			mu.Unlock()
			continue
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(p catalog.Product) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := w.upsertWithRetry(ctx, p); err != nil {
				w.log.Error("product upsert failed",
					"job_id", job.ID, "article_code", p.ArticleCode, "error", err)
				job.AddError(fmt.Sprintf("upsert %s: %v", p.ArticleCode, err))
				mu.Lock()
				failed++
				mu.Unlock()
				return
			}
			job.IncrSeeded()
		}(p)
	}

	wg.Wait()
	return failed
}

func (w *Worker) upsertWithRetry(ctx context.Context, p catalog.Product) error {
	var err error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(Backoff(attempt - 1)):
			}
		}
		err = w.cmsClient.UpsertProduct(ctx, p)
		if err == nil || !IsRetryable(err) {
			return err
		}
	}
	return fmt.Errorf("after %d retries: %w", maxRetries, err)
}
