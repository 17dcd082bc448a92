package extractor

import (
	"testing"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

func TestDedupe_KeepsFirstOccurrence(t *testing.T) {
	in := []catalog.Product{
		{ArticleCode: "100", Title: "Перший"},
		{ArticleCode: "200", Title: "Другий"},
		{ArticleCode: "100", Title: "Дубль першого"},
		{ArticleCode: "300", Title: "Третій"},
		{ArticleCode: "200", Title: "Дубль другого"},
	}

	out := Dedupe(in)
	if len(out) != 3 {
		t.Fatalf("got %d products, want 3", len(out))
	}
	wantTitles := []string{"Перший", "Другий", "Третій"}
	for i, want := range wantTitles {
		if out[i].Title != want {
			t.Errorf("out[%d].Title = %q, want %q", i, out[i].Title, want)
		}
	}
}

func TestDedupe_Empty(t *testing.T) {
	if out := Dedupe(nil); len(out) != 0 {
		t.Fatalf("got %d products, want 0", len(out))
	}
}
