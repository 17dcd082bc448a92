package catalog

import "testing"

func testRoots() []Category {
	return []Category{
		{Name: "Фарба", Slug: "farba", Order: 1, Children: []Category{
			{Name: "Перманентна", Slug: "permanentna", Order: 1},
		}},
		{Name: "Догляд", Slug: "doglyad", Order: 2},
	}
}

func TestNewTaxonomy(t *testing.T) {
	tax, err := NewTaxonomy(testRoots(), "doglyad")
	if err != nil {
		t.Fatalf("NewTaxonomy: %v", err)
	}
	if tax.Count() != 3 {
		t.Errorf("Count = %d, want 3", tax.Count())
	}
	if !tax.Contains("permanentna") {
		t.Error("expected nested slug to be indexed")
	}
	if tax.Contains("no-such") {
		t.Error("unexpected slug reported present")
	}
}

func TestNewTaxonomy_RejectsDuplicateSlug(t *testing.T) {
	roots := testRoots()
	roots = append(roots, Category{Name: "Дубль", Slug: "farba", Order: 3})
	if _, err := NewTaxonomy(roots, "doglyad"); err == nil {
		t.Fatal("expected duplicate slug error")
	}
}

func TestNewTaxonomy_RejectsMissingFallback(t *testing.T) {
	if _, err := NewTaxonomy(testRoots(), "no-such"); err == nil {
		t.Fatal("expected missing fallback error")
	}
}

func TestNewTaxonomy_RejectsEmptySlug(t *testing.T) {
	roots := []Category{{Name: "Без слага"}}
	if _, err := NewTaxonomy(roots, "x"); err == nil {
		t.Fatal("expected empty slug error")
	}
}
