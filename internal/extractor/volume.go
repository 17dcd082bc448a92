package extractor

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// volumeRe finds a package-size token such as "250 мл" or "500 gr".
// The unit must not run into a following letter ("100 gram" is not "100 g").
var volumeRe = regexp.MustCompile(`(?i)(\d+)\s*(мл|гр|ml|gr|g)(?:[^\p{L}]|$)`)

// ParseVolume extracts a package size from a line or product title.
// Latin unit spellings are normalized to their Cyrillic forms.
func ParseVolume(s string) (catalog.Volume, bool) {
	m := volumeRe.FindStringSubmatch(s)
	if m == nil {
		return catalog.Volume{}, false
	}
	q, ok := atoiStrict(m[1])
	if !ok {
		return catalog.Volume{}, false
	}
	return catalog.Volume{Quantity: q, Unit: normalizeUnit(m[2])}, true
}

func normalizeUnit(u string) catalog.Unit {
	switch strings.ToLower(u) {
	case "ml", "мл":
		return catalog.UnitMl
	case "gr", "g", "гр":
		return catalog.UnitGram
	}
	return catalog.Unit(strings.ToLower(u))
}

// atoiStrict converts a digit run to int, rejecting anything non-numeric.
func atoiStrict(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return n, true
}
