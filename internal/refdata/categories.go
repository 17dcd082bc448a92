// Package refdata holds the hand-authored reference data of the store:
// the category taxonomy, brand descriptions, and blog articles. None of
// it is derived from vendor documents.
package refdata

import "github.com/Dubas14/HairCareStore/internal/catalog"

// FallbackSlug is the generic hair-care parent category returned when no
// classification rule matches.
const FallbackSlug = "doglyad-za-volossynam"

// DefaultTaxonomy returns the store category forest. Slugs here are
// referenced by the classification rules and by seeded CMS records, so
// they must never change without a data migration.
func DefaultTaxonomy() (*catalog.Taxonomy, error) {
	return catalog.NewTaxonomy(categories(), FallbackSlug)
}

func categories() []catalog.Category {
	return []catalog.Category{
		{Name: "Фарба для волосся", Slug: "farba-dlya-volossya", Order: 1, Children: []catalog.Category{
			{Name: "Перманентна фарба", Slug: "permanentna-farba", Order: 1},
			{Name: "Безаміачна фарба", Slug: "bezamіachna-farba", Order: 2},
			{Name: "Деміперманентна фарба", Slug: "demipermanentna-farba", Order: 3},
			{Name: "Тонуючі засоби", Slug: "tonuyuchi-zasoby", Order: 4},
		}},
		{Name: "Окислювачі", Slug: "okyslyuvachi", Order: 2},
		{Name: "Освітлення та знебарвлення", Slug: "osvitlennya-ta-znebarvlennya", Order: 3},
		{Name: "Догляд за волоссям", Slug: "doglyad-za-volossynam", Order: 4, Children: []catalog.Category{
			{Name: "Шампуні", Slug: "shampuni", Order: 1},
			{Name: "Маски та бальзами", Slug: "masky-ta-balzamy", Order: 2},
			{Name: "Кондиціонери", Slug: "kondytsionery", Order: 3},
			{Name: "Незмивні засоби", Slug: "nezmyvni-zasoby", Order: 4},
			{Name: "Олії та сироватки", Slug: "oliyi-ta-syrovatky", Order: 5},
			{Name: "Спреї", Slug: "spreyi", Order: 6},
		}},
		{Name: "Стайлінг", Slug: "staylinh", Order: 5, Children: []catalog.Category{
			{Name: "Лаки", Slug: "laky", Order: 1},
			{Name: "Муси та піни", Slug: "musy-ta-piny", Order: 2},
			{Name: "Пасти та воски", Slug: "pasty-ta-vosky", Order: 3},
			{Name: "Термозахист", Slug: "termozakhyst", Order: 4},
		}},
		{Name: "Лікування волосся", Slug: "likuvannya-volossya", Order: 6, Children: []catalog.Category{
			{Name: "Ампули та концентрати", Slug: "ampuly-ta-kontsentraty", Order: 1},
			{Name: "Кератинові засоби", Slug: "keratynovi-zasoby", Order: 2},
			{Name: "Ламінування", Slug: "laminuvannya", Order: 3},
		}},
		{Name: "Скальп-догляд", Slug: "skalp-doglyad", Order: 7, Children: []catalog.Category{
			{Name: "Проти лупи", Slug: "proty-lupy", Order: 1},
			{Name: "Проти випадіння", Slug: "proty-vypadinnya", Order: 2},
			{Name: "Детокс", Slug: "detoks", Order: 3},
		}},
		{Name: "Для чоловіків", Slug: "dlya-cholovikiv", Order: 8},
		{Name: "Сонцезахист", Slug: "sontsezakhyst", Order: 9},
		{Name: "Хімічна завивка", Slug: "khimichna-zavyvka", Order: 10},
		{Name: "Набори", Slug: "nabory", Order: 11},
		{Name: "Кольорові маски", Slug: "kolorovi-masky", Order: 12},
		{Name: "Догляд за кольором", Slug: "doglyad-za-kolorom", Order: 13},
	}
}
