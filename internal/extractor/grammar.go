package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Dubas14/HairCareStore/internal/catalog"
	"github.com/Dubas14/HairCareStore/internal/pages"
)

// Label classifies a single line of vendor document text.
type Label int

const (
	LabelNoise Label = iota // anything else, including product names
	LabelSectionHeader
	LabelIdentifier
	LabelQuantity
	LabelPrice
)

// NameRule controls how the product name is located relative to an
// identifier line.
type NameRule struct {
	Forward         bool // scan forward from the identifier instead of backward
	Window          int  // max lines scanned
	MinLen          int  // accepted name must exceed this many runes
	RequireCyrillic bool
	Continuation    bool             // append one follow-up line passing the same test
	Exclude         []*regexp.Regexp // noise patterns never accepted as a name
}

// NumericRule matches a numeric line and constrains its value.
// Pattern must capture the value in group 1; a labeled pattern may capture
// the unit in group 2.
type NumericRule struct {
	Pattern  *regexp.Regexp
	Min, Max int
}

func (r NumericRule) inRange(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Grammar is the per-vendor configuration of the line-window parser.
// One instance fully describes how to pull product records out of a
// line-oriented price list.
type Grammar struct {
	Brand      catalog.Brand
	PageScoped bool // scan each page independently; section state resets per page

	// Identifier must anchor to the whole line and capture the article code
	// in group 1. An optional group 2 captures an inline volume token.
	Identifier *regexp.Regexp

	// SectionKeywords update the current section whenever a line
	// case-insensitively contains one of them.
	SectionKeywords []string

	Name NameRule

	// WindowBack/WindowForward bound the quantity/price scan around the
	// identifier line.
	WindowBack    int
	WindowForward int

	Quantity    NumericRule
	DefaultUnit catalog.Unit // unit assumed for bare quantity numerals

	Price NumericRule

	// PriceLabels name a price tier without carrying a value
	// ("Ціна салону", "РРЦ"). Such lines are skipped without consuming
	// a price slot.
	PriceLabels []string
}

var (
	pureNumericRe = regexp.MustCompile(`^[\d\s.,]+$`)
	cyrillicRe    = regexp.MustCompile(`[а-яА-ЯіІїЇєЄґҐ]`)
)

// Classify labels one line. It is a pure function of the line, the grammar,
// and volumeOpen, which reports whether the product's volume slot is still
// unfilled; bare numerals that fall inside both the quantity and the price
// range resolve to Quantity while the slot is open and to Price afterwards.
func (g *Grammar) Classify(line string, volumeOpen bool) Label {
	t := strings.TrimSpace(line)
	if t == "" {
		return LabelNoise
	}
	if g.Identifier.MatchString(t) {
		return LabelIdentifier
	}
	if g.isSectionHeader(t) {
		return LabelSectionHeader
	}
	if volumeOpen && g.Quantity.Pattern != nil {
		if m := g.Quantity.Pattern.FindStringSubmatch(t); m != nil {
			if v, ok := atoiStrict(m[1]); ok && g.Quantity.inRange(v) {
				return LabelQuantity
			}
		}
	}
	if g.Price.Pattern != nil {
		if m := g.Price.Pattern.FindStringSubmatch(t); m != nil {
			if v, ok := atoiStrict(m[1]); ok && g.Price.inRange(v) {
				return LabelPrice
			}
		}
	}
	return LabelNoise
}

// isSectionHeader reports whether the line introduces a product-line grouping.
// Lines opening with digits are never headers; that keeps identifier and
// price rows out even when they embed a keyword.
func (g *Grammar) isSectionHeader(t string) bool {
	if utf8.RuneCountInString(t) <= 3 {
		return false
	}
	for i, r := range []rune(t) {
		if i >= 3 {
			break
		}
		if r >= '0' && r <= '9' {
			return false
		}
	}
	upper := strings.ToUpper(t)
	for _, kw := range g.SectionKeywords {
		if strings.Contains(upper, strings.ToUpper(kw)) {
			return true
		}
	}
	return false
}

// Extract runs the grammar over a decoded document and returns product
// records in emission order. A nil document yields no records.
func (g *Grammar) Extract(doc *pages.Document) []catalog.Product {
	if doc == nil {
		return nil
	}
	if g.PageScoped {
		var out []catalog.Product
		for _, p := range doc.Pages {
			out = append(out, g.scan(p.Lines)...)
		}
		return out
	}
	return g.scan(doc.Flatten())
}

// scan folds over one ordered line sequence. The only state threaded
// through the walk is the current section; every other field is located
// by a bounded window around the identifier line.
func (g *Grammar) scan(lines []pages.Line) []catalog.Product {
	var out []catalog.Product
	section := ""

	for i := range lines {
		t := strings.TrimSpace(lines[i].Text)
		if t == "" {
			continue
		}
		if g.isSectionHeader(t) {
			section = t
			continue
		}

		m := g.Identifier.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		code := m[1]

		var volume *catalog.Volume
		if len(m) > 2 && m[2] != "" {
			if v, ok := ParseVolume(m[2]); ok {
				volume = &v
			}
		}

		name := g.findName(lines, i)
		volume, cost, retail := g.scanWindow(lines, i, volume)

		// Drop candidates with no name or no price at all; a partial
		// record is worse than a missing one.
		if name == "" || (cost == nil && retail == nil) {
			continue
		}

		// First-seen is tentatively cost, second-seen retail. Cost must
		// never exceed retail in emitted output.
		if cost != nil && retail != nil && *retail < *cost {
			cost, retail = retail, cost
		}

		p := catalog.Product{
			Title:        name,
			Brand:        g.Brand,
			CategoryHint: section,
			ArticleCode:  code,
			Volume:       volume,
			InStock:      true,
		}
		if retail != nil {
			p.Price = *retail
			p.CostPrice = cost
		} else {
			p.Price = *cost
		}
		out = append(out, p)
	}
	return out
}

// findName scans up to Name.Window lines from the identifier for the first
// acceptable name line. Identifier lines terminate a forward scan (they
// open the next product) and are skipped on a backward one.
func (g *Grammar) findName(lines []pages.Line, i int) string {
	step := -1
	if g.Name.Forward {
		step = 1
	}
	seen := 0
	for j := i + step; j >= 0 && j < len(lines) && seen < g.Name.Window; j += step {
		seen++
		t := strings.TrimSpace(lines[j].Text)
		if t == "" {
			continue
		}
		if g.Identifier.MatchString(t) {
			if g.Name.Forward {
				break
			}
			continue
		}
		if !g.acceptName(t) {
			continue
		}
		name := t
		if g.Name.Continuation {
			if k := j + step; k >= 0 && k < len(lines) {
				c := strings.TrimSpace(lines[k].Text)
				if c != "" && !g.Identifier.MatchString(c) && g.acceptName(c) {
					if g.Name.Forward {
						name = name + " " + c
					} else {
						name = c + " " + name
					}
				}
			}
		}
		return name
	}
	return ""
}

func (g *Grammar) acceptName(t string) bool {
	if utf8.RuneCountInString(t) <= g.Name.MinLen {
		return false
	}
	if pureNumericRe.MatchString(t) {
		return false
	}
	if g.Name.RequireCyrillic && !cyrillicRe.MatchString(t) {
		return false
	}
	for _, re := range g.Name.Exclude {
		if re.MatchString(t) {
			return false
		}
	}
	return true
}

// scanWindow locates the volume and up to two price values around the
// identifier line at index i. The scan runs in line order from
// i-WindowBack to i+WindowForward, stops at the next identifier line past
// i, and returns early once both price slots are filled.
func (g *Grammar) scanWindow(lines []pages.Line, i int, volume *catalog.Volume) (*catalog.Volume, *int, *int) {
	var cost, retail *int

	start := i - g.WindowBack
	if start < 0 {
		start = 0
	}
	end := i + g.WindowForward
	if end > len(lines)-1 {
		end = len(lines) - 1
	}

	for j := start; j <= end; j++ {
		if j == i {
			continue
		}
		t := strings.TrimSpace(lines[j].Text)
		if t == "" {
			continue
		}
		if j > i && g.Identifier.MatchString(t) {
			break // belongs to the next product
		}
		if g.isPriceLabel(t) {
			continue
		}

		switch g.Classify(t, volume == nil) {
		case LabelQuantity:
			m := g.Quantity.Pattern.FindStringSubmatch(t)
			v, _ := atoiStrict(m[1])
			unit := g.DefaultUnit
			if len(m) > 2 && m[2] != "" {
				unit = normalizeUnit(m[2])
			}
			volume = &catalog.Volume{Quantity: v, Unit: unit}
		case LabelPrice:
			m := g.Price.Pattern.FindStringSubmatch(t)
			v, _ := atoiStrict(m[1])
			if cost == nil {
				cost = &v
			} else if retail == nil {
				retail = &v
			}
		}
		if cost != nil && retail != nil {
			break
		}
	}
	return volume, cost, retail
}

func (g *Grammar) isPriceLabel(t string) bool {
	lower := strings.ToLower(t)
	for _, label := range g.PriceLabels {
		if strings.Contains(lower, strings.ToLower(label)) {
			return true
		}
	}
	return false
}
