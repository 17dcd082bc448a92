package pages

import "strings"

// Document is the decoded text of one vendor source file.
type Document struct {
	Title string // Document title (from metadata or filename)
	Pages []Page // Ordered pages; single-page for non-paginated formats
}

// Page is an ordered run of text lines from one document page.
type Page struct {
	Number int // 1-based page number
	Lines  []Line
}

// Line is a single line of extracted text with its position,
// kept for window scans and error reporting.
type Line struct {
	Text string
	Row  int // 0-based row index within the page
}

// FromText builds a single page from raw text, one Line per
// newline-separated row. Lines are trimmed of trailing whitespace only;
// leading whitespace can be significant for tabular sources.
func FromText(number int, text string) Page {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for i, s := range raw {
		lines = append(lines, Line{Text: strings.TrimRight(s, " \t\r"), Row: i})
	}
	return Page{Number: number, Lines: lines}
}

// Flatten returns every line of the document in page order.
func (d *Document) Flatten() []Line {
	var out []Line
	for _, p := range d.Pages {
		out = append(out, p.Lines...)
	}
	return out
}

// LineCount returns the total number of lines across all pages.
func (d *Document) LineCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Lines)
	}
	return n
}
