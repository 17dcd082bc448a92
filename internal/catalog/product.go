package catalog

// Brand identifies the vendor a product was extracted from.
type Brand string

const (
	BrandElgon    Brand = "elgon"
	BrandMood     Brand = "mood"
	BrandNevitaly Brand = "nevitaly"
	BrandInebrya  Brand = "inebrya"
)

// Unit is a package-size unit as it appears in vendor documents.
type Unit string

const (
	UnitMl   Unit = "мл"
	UnitGram Unit = "гр"
)

// Volume is a parsed package size, e.g. {250, мл}.
type Volume struct {
	Quantity int  `json:"quantity"`
	Unit     Unit `json:"unit"`
}

// Product is one normalized catalog record extracted from a vendor document.
// Price values are whole currency units. CostPrice is the wholesale tier and,
// when present, never exceeds Price. Category is empty until classification.
type Product struct {
	Title        string  `json:"title"`
	Brand        Brand   `json:"brand"`
	CategoryHint string  `json:"categoryHint"`
	ArticleCode  string  `json:"articleCode"`
	SupplierCode string  `json:"supplierCode"`
	Price        int     `json:"price"`
	CostPrice    *int    `json:"costPrice,omitempty"`
	Volume       *Volume `json:"volume,omitempty"`
	InStock      bool    `json:"inStock"`
	Category     string  `json:"category,omitempty"`
}

// BrandInfo is static descriptive content for a vendor brand page.
type BrandInfo struct {
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	ShortDescription string         `json:"shortDescription"`
	CountryOfOrigin  string         `json:"countryOfOrigin"`
	FoundedYear      int            `json:"foundedYear"`
	Website          string         `json:"website"`
	AccentColor      string         `json:"accentColor"`
	Benefits         []BrandBenefit `json:"benefits"`
}

// BrandBenefit is one selling point on a brand page.
type BrandBenefit struct {
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Article is a static blog post tied to a brand.
type Article struct {
	Title   string   `json:"title"`
	Slug    string   `json:"slug"`
	Brand   Brand    `json:"brand"`
	Excerpt string   `json:"excerpt"`
	Tags    []string `json:"tags"`
	Body    string   `json:"content"`
}
