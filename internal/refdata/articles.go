package refdata

import "github.com/Dubas14/HairCareStore/internal/catalog"

// Articles returns the static blog posts seeded alongside the catalog.
// Bodies are markdown-flavoured plain text; RenderHTML converts them for
// the CMS rich-text field.
func Articles() []catalog.Article {
	return []catalog.Article{
		{
			Title:   "Як надати об'єм тонкому волоссю: секрети MOOD Body Builder",
			Slug:    "yak-nadaty-obyem-tonkomu-volossyu",
			Brand:   catalog.BrandMood,
			Excerpt: "Професійна лінійка для ущільнення та надання об'єму тонкому й ослабленому волоссю. Збагачена пептидом Pisum Sativum.",
			Tags:    []string{"об'єм", "тонке волосся", "MOOD", "Body Builder"},
			Body: "Тонке та ослаблене волосся потребує особливого догляду. Лінійка MOOD Body Builder створена спеціально для вирішення цієї проблеми. Формула збагачена пептидом Pisum Sativum, який впливає на діаметр волосся, роблячи його візуально густішим і щільнішим без обтяження.\n\n" +
				"Основні продукти серії:\n\n- Body Builder Densifying Shampoo — шампунь для ущільнення\n- Body Builder Densifying Filler — філер для миттєвого ефекту\n\n" +
				"Рекомендований протокол:\n\n1. Нанесіть шампунь на вологе волосся, масажуйте 2-3 хвилини\n2. Змийте та нанесіть філер на підсушені рушником кінчики\n3. Висушіть феном від коренів для максимального об'єму",
		},
		{
			Title:   "Догляд за кучерявим волоссям з MOOD Dream Curls",
			Slug:    "doglyad-za-kucheryavym-volossynam-dream-curls",
			Brand:   catalog.BrandMood,
			Excerpt: "Професійна лінійка для підкреслення форми локонів. Збагачена гіперферментованою рисовою водою.",
			Tags:    []string{"кучері", "кучеряве волосся", "MOOD", "Dream Curls"},
			Body: "Кучеряве та хвилясте волосся має свої унікальні потреби. Серія MOOD Dream Curls створена для підкреслення форми локонів без обтяження.\n\n" +
				"Головний активний компонент — гіперферментована рисова вода, фітокомплекс, отриманий шляхом гіперферментації. Формула сприяє підтриманню оптимального рівня зволоження, еластичності та чіткої форми локонів.\n\n" +
				"Продукти серії:\n\n- Dream Curls Shampoo — зволожуючий шампунь\n- Dream Curls Mask — зволожуюча маска\n- Dream Curls Leave In — спрей-кондиціонер\n\n" +
				"Секрет ідеальних кучерів: після миття не сушіть волосся рушником — натисніть і видавіть воду, нанесіть Leave In та дозвольте висохнути природним шляхом.",
		},
		{
			Title:   "Кератиновий догляд: відновлення та зміцнення волосся",
			Slug:    "keratynovyy-doglyad-vidnovlennya-zmitsnennya",
			Brand:   catalog.BrandMood,
			Excerpt: "Серія MOOD Keratin на основі рослинного кератину та мультимінерального комплексу для відновлення та зміцнення.",
			Tags:    []string{"кератин", "відновлення", "MOOD", "Keratin"},
			Body: "Волосся, яке піддається хімічній обробці, кератиновому випрямленню та моделюванню, потребує посиленого догляду. Серія MOOD KERATIN — це рішення на основі рослинного кератину та мультимінерального комплексу.\n\n" +
				"Склад мультимінерального комплексу: залізо, мідь, магній, кремній, цинк. Ці мінерали працюють синергетично для відновлення, зволоження та зміцнення волосся.\n\n" +
				"Веганська формула без SLES і солі — ідеально підходить для волосся після кератинового випрямлення.\n\n" +
				"Результат: захист від ламкості, запобігання появі посічених кінчиків, відновлення структури.",
		},
		{
			Title:   "Захист волосся та шкіри влітку: лінійка MOOD Suncare",
			Slug:    "zakhyst-volossya-ta-shkiry-vlitku-suncare",
			Brand:   catalog.BrandMood,
			Excerpt: "Як захистити волосся від сонця, солоної води та хлору. Професійні рекомендації з лінійкою MOOD Suncare.",
			Tags:    []string{"сонцезахист", "літній догляд", "MOOD", "Suncare"},
			Body: "Влітку волосся потребує особливого захисту від UV-випромінювання, солоної морської води та хлору в басейнах.\n\n" +
				"Лінійка MOOD SUNCARE розроблена спеціально для літнього періоду і забезпечує комплексний захист волосся та шкіри.\n\n" +
				"Поради для літнього догляду:\n\n1. Нанесіть захисний засіб перед виходом на сонце\n2. Після купання обов'язково промийте волосся чистою водою\n3. Використовуйте зволожуючу маску 2-3 рази на тиждень\n4. Уникайте термоприладів — дозвольте волоссю висохнути природним шляхом",
		},
		{
			Title:   "Професійний стайлінг з Elgon AFFIXX: повний гід",
			Slug:    "profesiynyy-staylinh-elgon-affixx",
			Brand:   catalog.BrandElgon,
			Excerpt: "Огляд лінійки стайлінгу Elgon AFFIXX — від термозахисту до фінішного блиску. 16 продуктів для будь-якої зачіски.",
			Tags:    []string{"стайлінг", "Elgon", "AFFIXX", "укладання"},
			Body: "Лінійка Elgon AFFIXX — це повний арсенал стайлінгових засобів для професіоналів та домашнього використання.\n\n" +
				"Основні продукти:\n\n- AFFIXX 11 Straight Look — термозахисний спрей для ідеально гладкого волосся\n- AFFIXX 22 Quick Dry — прискорювач сушіння волосся\n- AFFIXX 42 Volume Pump Mousse — мус для створення об'єму\n- AFFIXX 44 Flex Hold Spray Wax — спрей-віск еластичної фіксації\n- AFFIXX 55 Pack Oil — відновлююча олія для волосся\n- AFFIXX 60 Flex Hold Eco Spray — екологічний лак\n- AFFIXX 67 Hair Lift — пудра для прикореневого об'єму\n- AFFIXX 83 Curls Creator — крем для формування локонів\n- AFFIXX 100 Rasta Gum — текстуруюча гума\n- AFFIXX 101 Fix It — лак надсильної фіксації\n\n" +
				"Лайфхак: для максимального об'єму нанесіть пудру Hair Lift на корені та підсушіть феном, тримаючи голову донизу.",
		},
		{
			Title:   "Протоколи догляду за шкірою голови з Elgon Primaria",
			Slug:    "protokoly-doglyadu-za-shkiroyu-holovy-elgon",
			Brand:   catalog.BrandElgon,
			Excerpt: "Як обрати правильний догляд для шкіри голови: від лупи до випадіння. Серія Elgon Primaria.",
			Tags:    []string{"скальп", "шкіра голови", "Elgon", "Primaria", "лупа", "випадіння"},
			Body: "Здоров'я волосся починається зі здоров'я шкіри голови. Серія Elgon Primaria пропонує комплексний підхід до вирішення проблем скальпу.\n\n" +
				"Протокол проти лупи:\n\n1. Purifying Shampoo — шампунь з цинком\n2. Purifying Lotion — лосьйон проти лупи з цинком\n\n" +
				"Протокол проти випадіння:\n\n1. Stimulating Shampoo — зміцнюючий шампунь\n2. Anti Hairloss Treatment — лосьйон в ампулах\n\n" +
				"Протокол для жирної шкіри голови:\n\n1. Rebalancing Shampoo — шампунь з глиною\n2. Rebalancing Deep Cleansing — засіб глибокого очищення\n\n" +
				"Для щоденного використання:\n\n- Biodaily Shampoo — делікатний щоденний шампунь, підходить для всіх типів",
		},
		{
			Title:   "Нова серія Elgon YES Essential: краса та догляд",
			Slug:    "nova-seriya-elgon-yes-essential",
			Brand:   catalog.BrandElgon,
			Excerpt: "Огляд нових ліній YES: Nourish, Hydra, Curls, Shine, Smooth та Daily. Догляд для кожного типу волосся.",
			Tags:    []string{"Elgon", "YES Essential", "догляд", "новинки"},
			Body: "Серія Elgon YES Essential — це нове покоління засобів для професійного догляду. Кожна лінія спрямована на конкретний тип волосся.\n\n" +
				"YES Nourish — живлення сухого та пошкодженого волосся:\n\n- Power Source Shampoo, Hyper Nutri Mask, Wonder Nutri Oil, Miracle Night&Day Serum\n\n" +
				"YES Hydra — зволоження:\n\n- Beauty Shampoo, Beauty Conditioner\n\n" +
				"YES Curls — для кучерявого волосся:\n\n- Hydra Shampoo, Hydra Mask, Nutri Mask, Hydra Spray, Memory Cream, Gentle Shampoo\n\n" +
				"YES Shine — для блиску:\n\n- Sparkle Shampoo, Extra Glow Mask, Crystal Water\n\n" +
				"YES Smooth — для розгладження:\n\n- Super Control Shampoo, So Sleek Conditioner, Liss Forever Mask, Magic-Coat Spray\n\n" +
				"YES Daily — щоденний догляд:\n\n- Everyday Shampoo, Day-By-Day Hydra Mist, No-stress Dry Shampoo",
		},
		{
			Title:   "Огляд професійного бренду Nevitaly: від фарби до трихології",
			Slug:    "ohlyad-profesiynoho-brendu-nevitaly",
			Brand:   catalog.BrandNevitaly,
			Excerpt: "Nevitaly — італійський бренд, що поєднує інноваційні наукові розробки та силу рослинної терапії для здоров'я волосся.",
			Tags:    []string{"Nevitaly", "огляд бренду", "трихологія", "фарба"},
			Body: "Nevitaly — це більше, ніж професійна косметика для волосся. Це італійський бренд, що поєднує багаторічний досвід, інноваційні наукові розробки та силу рослинної терапії.\n\n" +
				"NEV COLOR — професійна фарба:\n\n- Floressence (безаміачна) — 7 тонів з екстрактом лотосу\n- Niu_Tech (аміачна) — 9 тонів з гранатовим соком\n- Shine_On (деміперманентна) — для оновлення кольору\n\n" +
				"Серії догляду:\n\n- Curl Sublime — для кучерявого волосся (олія бабасу)\n- Filler Sublime — для об'єму тонкого волосся\n- Color Sublime — захист фарбованого волосся\n- Hydra Source — зволоження сухого волосся\n\n" +
				"Трихологічна лінія:\n\n- Gentle Micellar Cleanser, AHA Peeling, Detox Peeling\n- Purifying Cleanser та Lotion — проти лупи\n- Scalp Balance Cleanser та Lotion — відновлення балансу\n- Energy Scalp Cleanser та Lotion — проти випадіння",
		},
	}
}
