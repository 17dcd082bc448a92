package refdata

import "github.com/Dubas14/HairCareStore/internal/catalog"

// Brands returns the static descriptions of the four carried brands.
func Brands() []catalog.BrandInfo {
	return []catalog.BrandInfo{
		{
			Name:             "Elgon",
			Slug:             "elgon",
			ShortDescription: "Італійський професійний бренд для догляду за волоссям з 1953 року. Інноваційні формули на основі натуральних компонентів.",
			CountryOfOrigin:  "Італія",
			FoundedYear:      1953,
			Website:          "https://www.elgoncosmetic.com",
			AccentColor:      "#2E86AB",
			Benefits: []catalog.BrandBenefit{
				{Icon: "🇮🇹", Title: "Made in Italy", Description: "Виробництво в Мілані з 1953 року"},
				{Icon: "🌿", Title: "Натуральні формули", Description: "Використання рослинних екстрактів та олій"},
				{Icon: "💎", Title: "Професійна якість", Description: "Продукти для салонів та домашнього використання"},
				{Icon: "🔬", Title: "Інноваційні технології", Description: "Постійне впровадження наукових розробок"},
			},
		},
		{
			Name:             "MOOD",
			Slug:             "mood",
			ShortDescription: "Професійний італійський бренд з інноваційними формулами для фарбування та догляду за волоссям.",
			CountryOfOrigin:  "Італія",
			FoundedYear:      2000,
			Website:          "https://www.moodprofessional.com",
			AccentColor:      "#E63946",
			Benefits: []catalog.BrandBenefit{
				{Icon: "🎨", Title: "104 відтінки фарби", Description: "Широка палітра кольорів для будь-яких потреб"},
				{Icon: "🧬", Title: "Пептидні формули", Description: "Інноваційний догляд з пептидами для відновлення"},
				{Icon: "🌱", Title: "Веганські формули", Description: "Серія KERATIN без SLES та солі"},
				{Icon: "☀️", Title: "Сонцезахист", Description: "Спеціальна лінія SUNCARE для захисту волосся"},
			},
		},
		{
			Name:             "Nevitaly",
			Slug:             "nevitaly",
			ShortDescription: "Італійський бренд, що поєднує досвід, інноваційні наукові розробки та силу рослинної терапії для здоров'я волосся.",
			CountryOfOrigin:  "Італія",
			FoundedYear:      2005,
			Website:          "https://nevitaly.com.ua",
			AccentColor:      "#588157",
			Benefits: []catalog.BrandBenefit{
				{Icon: "🌿", Title: "Фітотерапія", Description: "Формули на основі рослинних екстрактів та ефірних олій"},
				{Icon: "🔬", Title: "Трихологія", Description: "Професійна лінійка трихологічних засобів для шкіри голови"},
				{Icon: "💆", Title: "Комплексний догляд", Description: "Від фарбування до глибокого відновлення волосся"},
				{Icon: "🇮🇹", Title: "Made in Italy", Description: "Італійська якість та традиції"},
			},
		},
		{
			Name:             "Inebrya",
			Slug:             "inebrya",
			ShortDescription: "Італійський бренд професійної косметики для волосся з олією насіння льону та алое вера.",
			CountryOfOrigin:  "Італія",
			FoundedYear:      2003,
			Website:          "https://inebrya.com.ua",
			AccentColor:      "#9B5DE5",
			Benefits: []catalog.BrandBenefit{
				{Icon: "💜", Title: "118 відтінків", Description: "Одна з найширших палітр фарб на ринку"},
				{Icon: "🌿", Title: "Натуральні олії", Description: "Олія насіння льону та алое вера у кожному продукті"},
				{Icon: "💎", Title: "Кератинова серія", Description: "Рослинний кератин та мікрокристали сапфіру"},
				{Icon: "🔬", Title: "ICE CREAM серія", Description: "Інноваційні засоби для глибокого відновлення"},
			},
		},
	}
}
