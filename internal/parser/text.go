package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/pages"
)

// TextParser handles plain text files. Form feeds separate pages, which
// lets tests and pre-extracted documents exercise page-scoped grammars.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*pages.Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read text: %w", err)
	}

	doc := &pages.Document{
		Title: strings.TrimSuffix(filename, ".txt"),
	}
	for i, chunk := range strings.Split(string(data), "\f") {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		doc.Pages = append(doc.Pages, pages.FromText(i+1, chunk))
	}
	return doc, nil
}
