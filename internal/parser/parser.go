// Package parser decodes vendor source files into ordered text lines or
// table rows. It never interprets content; that is the extractor's job.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/Dubas14/HairCareStore/internal/pages"
)

// Parser converts raw document bytes into a page/line Document.
type Parser interface {
	Parse(r io.Reader, filename string) (*pages.Document, error)
}

// LineExtensions lists line-oriented document formats.
var LineExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".html": true,
	".htm":  true,
	".txt":  true,
}

// TableExtensions lists tabular formats read via ReadTable.
var TableExtensions = map[string]bool{
	".xlsx": true,
	".csv":  true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file can be handled at all,
// as a line document or as a table.
func IsSupportedExtension(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return LineExtensions[ext] || TableExtensions[ext]
}

// IsTableExtension checks if a file is a tabular source.
func IsTableExtension(filename string) bool {
	return TableExtensions[strings.ToLower(filepath.Ext(filename))]
}
