package extractor

import (
	"strings"
	"testing"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/pages"
)

func lineDoc(lines ...string) *pages.Document {
	return &pages.Document{
		Pages: []pages.Page{pages.FromText(1, strings.Join(lines, "\n"))},
	}
}

func TestGrammarExtract_PriceListProduct(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"DREAM CURLS",
		"Шампунь для кучерявого волосся",
		"0104001 - 250 мл",
		"Ціна салону",
		"350 грн",
		"РРЦ",
		"450 грн",
	)

	products := g.Extract(doc)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if p.Title != "Шампунь для кучерявого волосся" {
		t.Errorf("title = %q", p.Title)
	}
	if p.ArticleCode != "0104001" {
		t.Errorf("article code = %q", p.ArticleCode)
	}
	if p.CategoryHint != "DREAM CURLS" {
		t.Errorf("category hint = %q", p.CategoryHint)
	}
	if p.Volume == nil || p.Volume.Quantity != 250 || p.Volume.Unit != catalog.UnitMl {
		t.Errorf("volume = %+v", p.Volume)
	}
	if p.Price != 450 {
		t.Errorf("price = %d, want 450", p.Price)
	}
	if p.CostPrice == nil || *p.CostPrice != 350 {
		t.Errorf("cost price = %v, want 350", p.CostPrice)
	}
	if !p.InStock {
		t.Error("expected product in stock")
	}
}

func TestGrammarExtract_SwapsPricesWhenRetailLower(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"Кондиціонер відновлюючий",
		"0104002",
		"450 грн",
		"350 грн",
	)

	products := g.Extract(doc)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	if p.Price != 450 {
		t.Errorf("price = %d, want 450", p.Price)
	}
	if p.CostPrice == nil || *p.CostPrice != 350 {
		t.Errorf("cost price = %v, want 350", p.CostPrice)
	}
}

func TestGrammarExtract_PriceScanStopsAtNextIdentifier(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"Перший шампунь для волосся",
		"0104001",
		"350 грн",
		"Другий кондиціонер для волосся",
		"0104002",
		"400 грн",
	)

	products := g.Extract(doc)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	// The first product must not swallow the second one's price tier.
	if products[0].Price != 350 {
		t.Errorf("first price = %d, want 350", products[0].Price)
	}
	if products[0].CostPrice != nil {
		t.Errorf("first cost price = %v, want nil", products[0].CostPrice)
	}
	if products[1].Price != 400 {
		t.Errorf("second price = %d, want 400", products[1].Price)
	}
}

func TestGrammarExtract_DropsRecordWithoutName(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"0104001",
		"350 грн",
	)
	if products := g.Extract(doc); len(products) != 0 {
		t.Fatalf("got %d products, want 0", len(products))
	}
}

func TestGrammarExtract_DropsRecordWithoutPrice(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"Шампунь для кучерявого волосся",
		"0104001 - 250 мл",
	)
	if products := g.Extract(doc); len(products) != 0 {
		t.Fatalf("got %d products, want 0", len(products))
	}
}

func TestGrammarExtract_SectionTracking(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"SILVER SPECIFIC",
		"Шампунь для сивого волосся",
		"0104001",
		"350 грн",
		"COLOR PROTECT",
		"Маска для фарбованого волосся",
		"0104002",
		"400 грн",
	)

	products := g.Extract(doc)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].CategoryHint != "SILVER SPECIFIC" {
		t.Errorf("first hint = %q", products[0].CategoryHint)
	}
	if products[1].CategoryHint != "COLOR PROTECT" {
		t.Errorf("second hint = %q", products[1].CategoryHint)
	}
}

func TestGrammarClassify_BareNumeralDisambiguation(t *testing.T) {
	g := Nevitaly()

	// Inside both ranges: quantity while the volume slot is open, price after.
	if got := g.Classify("500", true); got != LabelQuantity {
		t.Errorf("Classify(500, open) = %v, want quantity", got)
	}
	if got := g.Classify("500", false); got != LabelPrice {
		t.Errorf("Classify(500, filled) = %v, want price", got)
	}
	// Outside the quantity range the numeral is a price even with the slot open.
	if got := g.Classify("2000", true); got != LabelPrice {
		t.Errorf("Classify(2000, open) = %v, want price", got)
	}
	// Outside both ranges: noise.
	if got := g.Classify("9", false); got != LabelNoise {
		t.Errorf("Classify(9, filled) = %v, want noise", got)
	}
}

func TestGrammarExtract_PageScopedSectionReset(t *testing.T) {
	g := Nevitaly()
	doc := &pages.Document{
		Pages: []pages.Page{
			pages.FromText(1, "STYLING\nЛак для волосся сильної фіксації\n1012345\n500\n950"),
			pages.FromText(2, "Маска відновлююча для волосся\n1054321\n250\n980"),
		},
	}

	products := g.Extract(doc)
	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	p := products[0]
	if p.CategoryHint != "STYLING" {
		t.Errorf("first hint = %q", p.CategoryHint)
	}
	if p.Volume == nil || p.Volume.Quantity != 500 || p.Volume.Unit != catalog.UnitMl {
		t.Errorf("first volume = %+v, want 500 мл via default unit", p.Volume)
	}
	if p.Price != 950 {
		t.Errorf("first price = %d, want 950", p.Price)
	}
	// Section state must not leak onto the next page.
	if products[1].CategoryHint != "" {
		t.Errorf("second hint = %q, want empty", products[1].CategoryHint)
	}
	if products[1].Volume == nil || products[1].Volume.Quantity != 250 {
		t.Errorf("second volume = %+v", products[1].Volume)
	}
}

func TestGrammarExtract_ForwardNameWithContinuation(t *testing.T) {
	g := Inebrya()
	doc := &pages.Document{
		Pages: []pages.Page{pages.FromText(1, strings.Join([]string{
			"1234567",
			"Шампунь для фарбованого волосся",
			"з олією аргани зволожуючий",
			"300 мл",
			"Ціна салону",
			"280 грн",
			"РРЦ",
			"380 грн",
		}, "\n"))},
	}

	products := g.Extract(doc)
	if len(products) != 1 {
		t.Fatalf("got %d products, want 1", len(products))
	}
	p := products[0]
	want := "Шампунь для фарбованого волосся з олією аргани зволожуючий"
	if p.Title != want {
		t.Errorf("title = %q, want %q", p.Title, want)
	}
	if p.Volume == nil || p.Volume.Quantity != 300 || p.Volume.Unit != catalog.UnitMl {
		t.Errorf("volume = %+v", p.Volume)
	}
	if p.Price != 380 {
		t.Errorf("price = %d, want 380", p.Price)
	}
	if p.CostPrice == nil || *p.CostPrice != 280 {
		t.Errorf("cost price = %v, want 280", p.CostPrice)
	}
}

func TestGrammarExtract_Idempotent(t *testing.T) {
	g := Mood()
	doc := lineDoc(
		"Шампунь для кучерявого волосся",
		"0104001 - 250 мл",
		"350 грн",
		"450 грн",
	)

	first := g.Extract(doc)
	second := g.Extract(doc)
	if len(first) != len(second) {
		t.Fatalf("runs differ in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Title != second[i].Title || first[i].Price != second[i].Price {
			t.Errorf("run mismatch at %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
