package extractor

import (
	"regexp"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// Vendor binds a brand to its source-document discovery keyword and its
// extraction strategy. Exactly one of Grammar or Table is set.
type Vendor struct {
	Brand   catalog.Brand
	Keyword string // filename substring used for catalog-dir discovery
	Grammar *Grammar
	Table   *TableConfig
}

// Vendors lists every known vendor in seed order.
func Vendors() []Vendor {
	elgon := ElgonTable()
	mood := Mood()
	nevitaly := Nevitaly()
	inebrya := Inebrya()
	return []Vendor{
		{Brand: catalog.BrandElgon, Keyword: "Elgon", Table: &elgon},
		{Brand: catalog.BrandMood, Keyword: "MOOD", Grammar: &mood},
		{Brand: catalog.BrandNevitaly, Keyword: "Nevitaly", Grammar: &nevitaly},
		{Brand: catalog.BrandInebrya, Keyword: "Inebrya", Grammar: &inebrya},
	}
}

// VendorFor looks up the vendor configuration for a brand.
func VendorFor(brand catalog.Brand) (Vendor, bool) {
	for _, v := range Vendors() {
		if v.Brand == brand {
			return v, true
		}
	}
	return Vendor{}, false
}

// ElgonTable describes the Elgon spreadsheet layout: a ten-row header
// block, then article / supplier code / indented name / cost / price.
func ElgonTable() TableConfig {
	return TableConfig{
		Brand:       catalog.BrandElgon,
		SkipRows:    10,
		ArticleCol:  1,
		SupplierCol: 2,
		NameCol:     3,
		CostCol:     4,
		PriceCol:    5,
	}
}

// Mood parses the MOOD price PDF. Product names sit above the article
// code; volume and the two "N грн" price tiers follow it.
func Mood() Grammar {
	return Grammar{
		Brand:      catalog.BrandMood,
		Identifier: regexp.MustCompile(`^(\d{6,10})\s*(?:-\s*)?(\d+\s*(?:мл|гр|ml))?$`),
		SectionKeywords: []string{
			"DREAM CURLS", "BODY BUILDER", "ULTRA CARE", "KERATIN",
			"INTENSE REPAIR", "SILVER SPECIFIC", "DERMA CLEANSING",
			"COLOR PROTECT", "DAILY", "CELL FORCE", "BODYGUARD",
			"SUNCARE", "HAIR BODYGUARD",
		},
		Name: NameRule{
			Window: 7,
			MinLen: 5,
			Exclude: []*regexp.Regexp{
				regexp.MustCompile(`^\d+\s*(грн|мл|гр|Vol|%)`),
				regexp.MustCompile(`^(Ціна|РРЦ|салону)`),
			},
		},
		WindowForward: 9,
		Quantity: NumericRule{
			Pattern: regexp.MustCompile(`^(\d+)\s*(мл|гр|ml)$`),
			Min:     1,
			Max:     10000,
		},
		Price: NumericRule{
			Pattern: regexp.MustCompile(`^(\d+)\s*грн$`),
			Min:     1,
			Max:     1000000,
		},
		PriceLabels: []string{"Ціна салону", "РРЦ"},
	}
}

// Nevitaly parses the Nevitaly catalog PDF page by page. Prices and
// volumes appear as bare numerals, told apart only by magnitude:
// quantities lie in [50,1500] мл, prices in [200,5000] грн.
func Nevitaly() Grammar {
	return Grammar{
		Brand:      catalog.BrandNevitaly,
		PageScoped: true,
		Identifier: regexp.MustCompile(`^(10\d{5,7})$`),
		SectionKeywords: []string{
			"NEV COLOR", "CURL SUBLIME", "FILLER SUBLIME", "COLOR SUBLIME",
			"HYDRA SOURCE", "SHIMMER", "PRECIOUS", "BLONDE SUBLIME",
			"BLOND SUBLIME", "STYLING", "GENTLE", "SCALP", "PURIFYING",
			"ENERGY", "SOOTHING", "DETOX", "AHA", "TERRAE", "SYNUOSA",
		},
		Name: NameRule{
			Window: 9,
			MinLen: 5,
			Exclude: []*regexp.Regexp{
				regexp.MustCompile(`^[\d\s,.грн]+$`),
				regexp.MustCompile(`^(Об'єм|Ціна|мл|грн|pH|рН)`),
			},
		},
		WindowBack:    5,
		WindowForward: 9,
		Quantity: NumericRule{
			Pattern: regexp.MustCompile(`^(\d+)$`),
			Min:     50,
			Max:     1500,
		},
		DefaultUnit: catalog.UnitMl,
		Price: NumericRule{
			Pattern: regexp.MustCompile(`^(\d{3,5})$`),
			Min:     200,
			Max:     5000,
		},
	}
}

// Inebrya parses the Inebrya shop price PDF page by page. The article
// code comes first; the Ukrainian product name, volume, and the two
// price tiers follow it.
func Inebrya() Grammar {
	return Grammar{
		Brand:      catalog.BrandInebrya,
		PageScoped: true,
		Identifier: regexp.MustCompile(`^(\d{7})$`),
		SectionKeywords: []string{
			"НОВИНКИ", "ФАРБА", "ОКИСНИК", "ОСВІТЛЕННЯ", "BLONDESSE",
			"ICE CREAM", "STYLE-IN", "SHECARE", "COLOR PERFECT", "KARYN",
			"HAIR LIFT", "Перманентна", "Деміперманентна",
		},
		Name: NameRule{
			Forward:         true,
			Window:          11,
			MinLen:          10,
			RequireCyrillic: true,
			Continuation:    true,
			Exclude: []*regexp.Regexp{
				regexp.MustCompile(`^[\d\s,.грн]+$`),
				regexp.MustCompile(`^\d+\s*(мл|гр|грн)`),
				regexp.MustCompile(`^(Ціна|РРЦ)`),
			},
		},
		WindowForward: 11,
		Quantity: NumericRule{
			Pattern: regexp.MustCompile(`^(\d+)\s*(мл|гр)$`),
			Min:     1,
			Max:     10000,
		},
		Price: NumericRule{
			Pattern: regexp.MustCompile(`^(\d+)\s*грн$`),
			Min:     1,
			Max:     1000000,
		},
		PriceLabels: []string{"Ціна салону", "РРЦ"},
	}
}
