package catalog

import "strings"

// translit maps Ukrainian (and a few Russian) letters to latin sequences.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
	'є': "ye", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "yi", 'й': "y",
	'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
	'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "yu", 'я': "ya", 'ъ': "", 'ы': "y",
	'э': "e", '\'': "",
}

const maxSlugLen = 80

// Slugify builds a URL-friendly slug from Ukrainian or latin text.
func Slugify(text string) string {
	lower := strings.ToLower(strings.TrimSpace(text))
	var b strings.Builder
	for _, ch := range lower {
		if s, ok := translit[ch]; ok {
			b.WriteString(s)
			continue
		}
		switch {
		case ch == '-' || ch >= 'a' && ch <= 'z' || ch >= '0' && ch <= '9':
			b.WriteRune(ch)
		case ch == ' ' || ch == '_' || ch == '.' || ch == '/':
			b.WriteRune('-')
		}
	}
	parts := strings.FieldsFunc(b.String(), func(r rune) bool { return r == '-' })
	slug := strings.Join(parts, "-")
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return slug
}
