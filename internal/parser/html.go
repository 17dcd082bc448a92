package parser

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"

	"github.com/Dubas14/HairCareStore/internal/pages"
)

// HTMLParser handles HTML exports of price lists. Block elements break
// lines; script/style/nav subtrees are dropped.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*pages.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	title := strings.TrimSuffix(strings.TrimSuffix(filename, ".html"), ".htm")
	if t := findTitle(root); t != "" {
		title = t
	}

	var b strings.Builder
	collectLines(&b, root)

	raw := strings.Split(b.String(), "\n")
	var lines []pages.Line
	row := 0
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		lines = append(lines, pages.Line{Text: s, Row: row})
		row++
	}

	return &pages.Document{
		Title: title,
		Pages: []pages.Page{{Number: 1, Lines: lines}},
	}, nil
}

func findTitle(n *html.Node) string {
	var res string
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if res != "" {
			return
		}
		if cur.Type == html.ElementNode && strings.EqualFold(cur.Data, "title") && cur.FirstChild != nil {
			res = strings.TrimSpace(cur.FirstChild.Data)
			return
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return res
}

func collectLines(b *strings.Builder, n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "head", "iframe":
			return
		case "br", "hr", "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
	if n.Type == html.TextNode {
		b.WriteString(strings.ReplaceAll(n.Data, "\t", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(b, c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "div", "li", "tr", "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		}
	}
}
