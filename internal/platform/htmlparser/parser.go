// Package htmlparser wraps goquery's HTML parsing behind a single Parse
// function, mirroring how the teacher's htmlparser package isolated
// golang.org/x/net/html from the rest of the crawler. Parse returns a
// *goquery.Document, which the crawler package queries with goquery directly.
package htmlparser

import (
	"bytes"

	"github.com/PuerkitoBio/goquery"
)

// Parse reads HTML from body and returns a queryable document. Parsing is
// permissive (the underlying golang.org/x/net/html tokenizer never rejects
// malformed markup), so the only error path is an unreadable reader.
func Parse(body []byte) (*goquery.Document, error) {
	return goquery.NewDocumentFromReader(bytes.NewReader(body))
}
