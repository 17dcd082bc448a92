package cms

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

func TestLogin_StoresToken(t *testing.T) {
	var gotAuth string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/users/login":
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["email"] != "admin@example.com" {
				t.Errorf("login email = %q", body["email"])
			}
			_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok123"})
		default:
			gotAuth = r.Header.Get("Authorization")
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{}})
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	defer c.Close()
	if err := c.Login(context.Background(), "admin@example.com", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := c.FindOne(context.Background(), "products", "slug", "x"); err != nil {
		t.Fatalf("FindOne: %v", err)
	}
	if gotAuth != "JWT tok123" {
		t.Errorf("Authorization = %q, want JWT tok123", gotAuth)
	}
}

func TestUpsert_CreatesWhenAbsent(t *testing.T) {
	var created bool
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			if got := r.URL.Query().Get("where[slug][equals]"); got != "novyi-tovar" {
				t.Errorf("filter = %q", got)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{}})
		case http.MethodPost:
			created = true
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	defer c.Close()
	err := c.Upsert(context.Background(), "products", "slug", "novyi-tovar", map[string]string{"slug": "novyi-tovar"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !created {
		t.Error("expected POST for a missing document")
	}
}

func TestUpsert_PatchesWhenPresent(t *testing.T) {
	var patchedPath string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			// Numeric ids arrive as JSON numbers.
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{map[string]any{"id": 42}}})
		case http.MethodPatch:
			patchedPath = r.URL.Path
			_, _ = w.Write([]byte("{}"))
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	defer c.Close()
	err := c.Upsert(context.Background(), "products", "slug", "tovar", map[string]string{"slug": "tovar"})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if patchedPath != "/products/42" {
		t.Errorf("patched %q, want /products/42", patchedPath)
	}
}

func TestDo_MarksTransientFailuresRetryable(t *testing.T) {
	status := http.StatusInternalServerError
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer ts.Close()

	c := NewClient(ts.URL)
	defer c.Close()

	var re *RetryableError
	err := c.Create(context.Background(), "products", map[string]string{})
	if !errors.As(err, &re) {
		t.Errorf("500 error not retryable: %v", err)
	}

	status = http.StatusTooManyRequests
	err = c.Create(context.Background(), "products", map[string]string{})
	if !errors.As(err, &re) {
		t.Errorf("429 error not retryable: %v", err)
	}

	status = http.StatusBadRequest
	err = c.Create(context.Background(), "products", map[string]string{})
	if err == nil {
		t.Fatal("expected error for 400")
	}
	if errors.As(err, &re) {
		t.Errorf("400 error must not be retryable: %v", err)
	}
}

func TestUpsertTaxonomy_ParentsBeforeChildren(t *testing.T) {
	var order []string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"docs": []any{}})
		case http.MethodPost:
			var doc categoryDoc
			_ = json.NewDecoder(r.Body).Decode(&doc)
			order = append(order, doc.Slug)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte("{}"))
		}
	}))
	defer ts.Close()

	taxonomy, err := catalog.NewTaxonomy([]catalog.Category{
		{Name: "Фарба", Slug: "farba", Order: 1, Children: []catalog.Category{
			{Name: "Перманентна", Slug: "permanentna", Order: 1},
		}},
	}, "farba")
	if err != nil {
		t.Fatal(err)
	}

	c := NewClient(ts.URL)
	defer c.Close()
	n, err := c.UpsertTaxonomy(context.Background(), taxonomy)
	if err != nil {
		t.Fatalf("UpsertTaxonomy: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
	if len(order) != 2 || order[0] != "farba" || order[1] != "permanentna" {
		t.Errorf("write order = %v", order)
	}
}

func TestProductPayload_SlugIsStable(t *testing.T) {
	p := catalog.Product{
		Title:       "Шампунь зволожуючий",
		Brand:       catalog.BrandMood,
		ArticleCode: "0104001",
	}
	doc := ProductPayload(p)
	want := "mood-shampun-zvolozhuyuchyy-0104001"
	if doc.Slug != want {
		t.Errorf("slug = %q, want %q", doc.Slug, want)
	}
	if ProductPayload(p).Slug != doc.Slug {
		t.Error("slug not stable across calls")
	}
}
