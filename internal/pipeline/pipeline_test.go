package pipeline

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/classify"
	"github.com/Dubas14/HairCareStore/internal/cms"
	"github.com/Dubas14/HairCareStore/internal/refdata"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testClassifier(t *testing.T) *classify.Classifier {
	t.Helper()
	taxonomy, err := refdata.DefaultTaxonomy()
	if err != nil {
		t.Fatal(err)
	}
	c, err := classify.New(classify.DefaultRules(), taxonomy)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// One MOOD-shaped document as plain text, enough for the full pipeline.
const moodText = `DREAM CURLS
Шампунь для кучерявого волосся
0104001 - 250 мл
Ціна салону
350 грн
РРЦ
450 грн
Шампунь для кучерявого волосся
0104001 - 250 мл
350 грн
450 грн
`

func TestWorker_Process_WithoutCMS(t *testing.T) {
	w := NewWorker(testClassifier(t), nil, 2, testLogger())
	job := NewJob(catalog.BrandMood, "MOOD прайс.txt", []byte(moodText))

	w.Process(context.Background(), job)

	if job.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", job.Status)
	}
	snap := job.Snapshot()
	if snap.Progress.Extracted != 1 {
		t.Errorf("extracted = %d, want 1 after dedup", snap.Progress.Extracted)
	}
	if snap.Progress.Duplicates != 1 {
		t.Errorf("duplicates = %d, want 1", snap.Progress.Duplicates)
	}
	if snap.Progress.Seeded != 0 {
		t.Errorf("seeded = %d, want 0 without a CMS", snap.Progress.Seeded)
	}

	products := job.Products()
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	if products[0].Category == "" {
		t.Error("product not classified")
	}
	if job.FileData() != nil {
		t.Error("file bytes not released after parsing")
	}
}

func TestWorker_Process_UnknownBrandFails(t *testing.T) {
	w := NewWorker(testClassifier(t), nil, 1, testLogger())
	job := NewJob(catalog.Brand("unknown"), "прайс.txt", []byte("x"))

	w.Process(context.Background(), job)

	if job.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", job.Status)
	}
	if len(job.Snapshot().Progress.Errors) == 0 {
		t.Error("expected a recorded error")
	}
}

func TestWorker_Process_TableDocumentForGrammarBrandFails(t *testing.T) {
	w := NewWorker(testClassifier(t), nil, 1, testLogger())
	// MOOD has no tabular layout, so a spreadsheet upload must fail.
	job := NewJob(catalog.BrandMood, "MOOD.csv", []byte("a,b\n"))

	w.Process(context.Background(), job)
	if job.Status != StatusFailed {
		t.Fatalf("status = %s, want failed", job.Status)
	}
}

func TestWorker_Process_SeedsProducts(t *testing.T) {
	posts := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{}})
		case http.MethodPost:
			posts++
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("{}"))
		}
	}))
	defer ts.Close()

	client := cms.NewClient(ts.URL)
	defer client.Close()

	w := NewWorker(testClassifier(t), client, 2, testLogger())
	job := NewJob(catalog.BrandMood, "MOOD.txt", []byte(moodText))
	w.Process(context.Background(), job)

	if job.Status != StatusCompleted {
		t.Fatalf("status = %s, want completed", job.Status)
	}
	if snap := job.Snapshot(); snap.Progress.Seeded != 1 {
		t.Errorf("seeded = %d, want 1", snap.Progress.Seeded)
	}
	if posts != 1 {
		t.Errorf("cms received %d creates, want 1", posts)
	}
}

func TestWorker_Process_PartialOnSeedFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{}})
		case http.MethodPost:
			var doc map[string]any
			_ = json.NewDecoder(r.Body).Decode(&doc)
			// Reject one article permanently; 400 is not retried.
			if doc["articleCode"] == "0104001" {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(`{"error":"validation"}`))
				return
			}
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("{}"))
		}
	}))
	defer ts.Close()

	client := cms.NewClient(ts.URL)
	defer client.Close()

	twoProducts := moodText + strings.Join([]string{
		"Кондиціонер для кучерявого волосся",
		"0104002 - 250 мл",
		"300 грн",
		"400 грн",
		"",
	}, "\n")

	w := NewWorker(testClassifier(t), client, 2, testLogger())
	job := NewJob(catalog.BrandMood, "MOOD.txt", []byte(twoProducts))
	w.Process(context.Background(), job)

	if job.Status != StatusPartial {
		t.Fatalf("status = %s, want partial", job.Status)
	}
	snap := job.Snapshot()
	if snap.Progress.Seeded != 1 {
		t.Errorf("seeded = %d, want 1", snap.Progress.Seeded)
	}
	if len(snap.Progress.Errors) != 1 {
		t.Errorf("errors = %v, want exactly one", snap.Progress.Errors)
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(time.Minute)
	fresh := NewJob(catalog.BrandMood, "a.txt", nil)
	stale := NewJob(catalog.BrandMood, "b.txt", nil)
	stale.UpdatedAt = time.Now().Add(-2 * time.Minute)
	store.Put(fresh)
	store.Put(stale)

	store.Cleanup()

	if store.Get(fresh.ID) == nil {
		t.Error("fresh job evicted")
	}
	if store.Get(stale.ID) != nil {
		t.Error("stale job survived cleanup")
	}
}

func TestOrchestrator_EnqueueFailsWhenQueueFull(t *testing.T) {
	w := NewWorker(testClassifier(t), nil, 1, testLogger())
	// Not started: nothing drains the queue.
	o := NewOrchestrator(w, 1, 1, time.Minute, testLogger())

	first := NewJob(catalog.BrandMood, "a.txt", nil)
	if err := o.Enqueue(first); err != nil {
		t.Fatalf("first enqueue: %v", err)
	}
	second := NewJob(catalog.BrandMood, "b.txt", nil)
	if err := o.Enqueue(second); err == nil {
		t.Fatal("expected queue-full error")
	}
	if second.Status != StatusFailed {
		t.Errorf("rejected job status = %s, want failed", second.Status)
	}
	// Both jobs remain observable by id.
	if o.Job(first.ID) == nil || o.Job(second.ID) == nil {
		t.Error("jobs not registered in the store")
	}
}

func TestOrchestrator_ProcessesEnqueuedJob(t *testing.T) {
	w := NewWorker(testClassifier(t), nil, 1, testLogger())
	o := NewOrchestrator(w, 2, 4, time.Minute, testLogger())
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob(catalog.BrandMood, "MOOD.txt", []byte(moodText))
	if err := o.Enqueue(job); err != nil {
		t.Fatalf("enqueue: %v", err)
	}

	deadline := time.After(5 * time.Second)
	for {
		snap := o.Job(job.ID).Snapshot()
		if snap.Status == StatusCompleted {
			break
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %v", snap.Progress.Errors)
		}
		select {
		case <-deadline:
			t.Fatalf("job stuck in %s", snap.Status)
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestBackoff_GrowsAndCaps(t *testing.T) {
	for i := 0; i < 8; i++ {
		d := Backoff(i)
		if d < baseDelay {
			t.Errorf("Backoff(%d) = %v below base", i, d)
		}
		if d > maxDelay+time.Duration(float64(maxDelay)*jitterFactor) {
			t.Errorf("Backoff(%d) = %v above cap", i, d)
		}
	}
}

func TestIsRetryable(t *testing.T) {
	if !IsRetryable(&cms.RetryableError{Err: context.DeadlineExceeded}) {
		t.Error("RetryableError not recognized")
	}
	if IsRetryable(context.Canceled) {
		t.Error("plain error reported retryable")
	}
}
