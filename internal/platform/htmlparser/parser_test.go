package htmlparser

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name      string
		html      string
		wantLinks int
	}{
		{
			name:      "absolute URLs",
			html:      `<html><body><a href="https://example.com/page1">Link 1</a><a href="http://example.com/page2">Link 2</a></body></html>`,
			wantLinks: 2,
		},
		{
			name:      "no links",
			html:      `<html><body><p>No links here</p></body></html>`,
			wantLinks: 0,
		},
		{
			name:      "nested anchors (malformed but parseable)",
			html:      `<html><body><div><a href="/outer"><span><a href="/inner">Inner</a></span></a></div></body></html>`,
			wantLinks: 2,
		},
		{
			name:      "empty document",
			html:      ``,
			wantLinks: 0,
		},
		{
			name:      "unclosed tags",
			html:      `<html><body><a href="/test">Link</body></html>`,
			wantLinks: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.html))
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}

			got := doc.Find("a[href]").Length()
			if got != tt.wantLinks {
				t.Errorf("Parse() found %d <a href> elements, want %d", got, tt.wantLinks)
			}
		})
	}
}

func TestParse_MetaDescription(t *testing.T) {
	html := `<html><head><meta name="description" content="Plan lekcji w szkole"></head><body></body></html>`
	doc, err := Parse([]byte(html))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	content, ok := doc.Find(`meta[name="description"]`).Attr("content")
	if !ok {
		t.Fatalf("expected meta description to be found")
	}
	if content != "Plan lekcji w szkole" {
		t.Errorf("content = %q, want %q", content, "Plan lekcji w szkole")
	}
}
