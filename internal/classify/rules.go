package classify

// Keyword groups shared by several rules.
var (
	dyeWords     = []string{"фарба", "крем-фарба", "color", "colour"}
	ampouleWords = []string{"ампул", "лосьйон", "lotion", "концентрат", "treatment"}
)

// DefaultRules is the authored classification cascade, evaluated
// top-to-bottom with first-match-wins. The order is a contract: several
// keyword groups overlap (color care before shampoo, bleach before
// styling powder), and reordering changes which slug wins.
func DefaultRules() []Rule {
	return []Rule{
		// Colorants. Ammonia-free and demi-permanent narrow the generic
		// dye group, so they must precede it.
		{Slug: "bezamіachna-farba", Title: dyeWords, Also: []string{"безаміачн", "bionic"}},
		{Slug: "demipermanentna-farba", Title: dyeWords, Also: []string{"деміперманент", "demi"}},
		{Slug: "permanentna-farba", Title: dyeWords},

		// Toning.
		{Slug: "tonuyuchi-zasoby", Title: []string{"тонуюч", "i-care", "i-light", "тонер", "tonalight", "пігмент прямої"}},

		// Oxidants.
		{Slug: "okyslyuvachi", Title: []string{"окисл", "оксид", "окисник", "активатор", "activator", "oxidant", "oxydant"}},

		// Bleach and lightening.
		{Slug: "osvitlennya-ta-znebarvlennya", Title: []string{"пудра", "знебарвл", "освітл", "bleach", "blonde", "lightener"}},

		// Color masks, by section hint.
		{Slug: "kolorovi-masky", Hint: []string{"кольоров", "terrae"}},

		// Perm and waving.
		{Slug: "khimichna-zavyvka", Title: []string{"завивк", "waving", "fixing lotion", "біозавівк"}},

		// Sets.
		{Slug: "nabory", Title: []string{"набір", "gift box", "kit"}},

		// Men's line.
		{Slug: "dlya-cholovikiv", Title: []string{"man ", "man,", "для чоловік", "elgon man"}},
		{Slug: "dlya-cholovikiv", Hint: []string{"для чоловік"}},

		// Suncare.
		{Slug: "sontsezakhyst", Title: []string{"сонцезахис", "suncare", "aftersun", "sun "}},
		{Slug: "sontsezakhyst", Hint: []string{"suncare"}},

		// Scalp conditions.
		{Slug: "proty-lupy", Title: []string{"проти лупи", "purifying", "purif"}},
		{Slug: "proty-vypadinnya", Title: []string{"проти випад", "anti hairloss", "stimulat", "випадіння", "anti-hairloss", "scalp awake"}},
		{Slug: "detoks", Title: []string{"детокс", "detox", "пілінг", "peeling", "глибокого очищення шкіри", "rebalancing", "deep clean"}},
		{Slug: "skalp-doglyad", Title: []string{"скальп", "scalp", "шкіри голови", "шкіри гол"}},

		// Color care. Listed before the care form-factors so that silver
		// shampoos and color-section products land here, not under shampoos.
		{Slug: "doglyad-za-kolorom", Title: []string{"colorcare", "color protect", "color sublime", "за кольором", "silver shamp", "silver cond", "anti-red", "anti-yellow", "фіолетовими пігмент", "нейтралізац"}},
		{Slug: "doglyad-za-kolorom", Hint: []string{"silver", "anti-red", "color"}, NotTitle: []string{"фарба", "color,", "крем-фарба"}},

		// Keratin and lamination treatments.
		{Slug: "keratynovi-zasoby", Title: []string{"кератин", "keratin"}},
		{Slug: "laminuvannya", Title: []string{"ламінуванн", "lamination"}},

		// Ampoules and concentrates; scalp-specific ones route to their
		// condition first.
		{Slug: "proty-vypadinnya", Title: ampouleWords, Also: []string{"випадіння", "hairloss"}},
		{Slug: "proty-lupy", Title: ampouleWords, Also: []string{"лупи", "purif"}},
		{Slug: "ampuly-ta-kontsentraty", Title: ampouleWords},

		// Styling form-factors.
		{Slug: "laky", Title: []string{"лак ", "лак,", "hairspray", "hair spray", "fix it", "eco spray", "total fix", "logic style"}},
		{Slug: "musy-ta-piny", Title: []string{"мус ", "мус,", "mousse", "піна", "foam"}},
		{Slug: "pasty-ta-vosky", Title: []string{"паста", "paste", "віск", "wax", "гума", "gum", "гель", "gel", "пудра для об", "hair lift", "volumizing powder"}, NotTitle: []string{"знебарвл"}},
		{Slug: "termozakhyst", Title: []string{"термозахис", "thermo", "heat defend", "straight look"}},
		{Slug: "staylinh", Hint: []string{"стайлінг", "styling", "affixx", "bodyguard", "style-in"}},

		// Care form-factors.
		{Slug: "shampuni", Title: []string{"шампунь", "shampoo", "cleanser", "cleancer"}},
		{Slug: "masky-ta-balzamy", Title: []string{"маска", "mask", "pack"}},
		{Slug: "kondytsionery", Title: []string{"кондиціонер", "conditioner", "бальзам"}},
		{Slug: "nezmyvni-zasoby", Title: []string{"незмивн", "leave-in", "leave in", "крем для", "cream", "флюїд", "fluid", "праймер", "primer"}},
		{Slug: "oliyi-ta-syrovatky", Title: []string{"олія", "oil", "сироватк", "serum"}},
		{Slug: "spreyi", Title: []string{"спрей", "spray", "mist", "тонік", "tonic"}},
	}
}
