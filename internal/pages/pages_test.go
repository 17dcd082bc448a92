package pages

import "testing"

func TestFromText(t *testing.T) {
	p := FromText(3, "перший рядок  \nдругий\r\n\nчетвертий")
	if p.Number != 3 {
		t.Errorf("page number = %d, want 3", p.Number)
	}
	if len(p.Lines) != 4 {
		t.Fatalf("got %d lines, want 4", len(p.Lines))
	}
	if p.Lines[0].Text != "перший рядок" {
		t.Errorf("trailing whitespace not stripped: %q", p.Lines[0].Text)
	}
	if p.Lines[1].Text != "другий" {
		t.Errorf("carriage return not stripped: %q", p.Lines[1].Text)
	}
	if p.Lines[2].Text != "" {
		t.Errorf("blank line lost: %q", p.Lines[2].Text)
	}
	if p.Lines[3].Row != 3 {
		t.Errorf("row index = %d, want 3", p.Lines[3].Row)
	}
}

func TestDocumentFlattenAndCount(t *testing.T) {
	doc := &Document{Pages: []Page{
		FromText(1, "a\nb"),
		FromText(2, "c"),
	}}
	flat := doc.Flatten()
	if len(flat) != 3 {
		t.Fatalf("got %d lines, want 3", len(flat))
	}
	if flat[2].Text != "c" {
		t.Errorf("flatten order broken: %q", flat[2].Text)
	}
	if doc.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", doc.LineCount())
	}
}
