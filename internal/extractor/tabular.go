package extractor

import (
	"strconv"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/catalog"
)

// TableConfig describes the column layout of a spreadsheet price list.
type TableConfig struct {
	Brand    catalog.Brand
	SkipRows int // leading header rows to ignore

	ArticleCol  int
	SupplierCol int
	NameCol     int // leading whitespace in this column encodes category depth
	CostCol     int
	PriceCol    int
}

// categoryFrame is one entry of the indent-keyed category stack.
type categoryFrame struct {
	indent int
	name   string
}

// ExtractTable walks spreadsheet rows in order and emits product records.
// Rows without an article code are category rows: the stack is trimmed to
// entries shallower than the row's indent, then the row is pushed. Product
// rows take the stack top as their category hint. Rows with neither a
// usable cost nor a usable price are discarded; a numeric cell that fails
// to parse degrades to absent rather than aborting the pass.
func ExtractTable(rows [][]string, cfg TableConfig) []catalog.Product {
	var out []catalog.Product
	var stack []categoryFrame

	for i := cfg.SkipRows; i < len(rows); i++ {
		row := rows[i]
		nameRaw := cell(row, cfg.NameCol)
		name := strings.TrimSpace(nameRaw)
		if name == "" {
			continue
		}
		indent := len(nameRaw) - len(strings.TrimLeft(nameRaw, " \t"))

		article := strings.TrimSpace(cell(row, cfg.ArticleCol))
		if article == "" {
			// Category row: trim the stack to this indent level.
			for len(stack) > 0 && stack[len(stack)-1].indent >= indent {
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, categoryFrame{indent: indent, name: name})
			continue
		}

		cost := parseMoney(cell(row, cfg.CostCol))
		price := parseMoney(cell(row, cfg.PriceCol))
		if cost == nil && price == nil {
			continue
		}

		hint := ""
		if len(stack) > 0 {
			hint = stack[len(stack)-1].name
		}

		p := catalog.Product{
			Title:        name,
			Brand:        cfg.Brand,
			CategoryHint: hint,
			ArticleCode:  article,
			SupplierCode: strings.TrimSpace(cell(row, cfg.SupplierCol)),
			InStock:      true,
		}
		if v, ok := ParseVolume(name); ok {
			p.Volume = &v
		}
		if price != nil {
			p.Price = *price
			p.CostPrice = cost
		} else {
			p.Price = *cost
		}
		out = append(out, p)
	}
	return out
}

func cell(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col]
}

// parseMoney reads a whole-unit price cell. Spreadsheet cells often carry
// float formatting ("450.0"), so fractional digits are truncated.
func parseMoney(s string) *int {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f <= 0 {
		return nil
	}
	n := int(f)
	return &n
}
