package catalog

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Фарба для волосся Elgon 7.3", "farba-dlya-volossya-elgon-7-3"},
		{"Шампунь MOOD Color Protect", "shampun-mood-color-protect"},
		{"Ніч  --  День!", "nich-den"},
		{"Об'єм 250 мл", "obyem-250-ml"},
		{"already-latin-slug", "already-latin-slug"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugify_TruncatesLongInput(t *testing.T) {
	got := Slugify(strings.Repeat("a", 200))
	if len(got) != maxSlugLen {
		t.Errorf("len = %d, want %d", len(got), maxSlugLen)
	}
}
