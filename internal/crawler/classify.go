package crawler

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// optivumSignatures are the two literal substrings that mark a page's
// meta-description as an Optivum-published timetable. Matching is
// case-sensitive per spec: presumed intentional, left as-is.
var optivumSignatures = []string{
	"programu Plan lekcji Optivum firmy VULCAN",
	"Plan lekcji w szkole",
}

// IsCandidate reports whether doc is a terminal Optivum candidate: any
// meta[name="description"] tag whose content contains either signature
// substring. If multiple such tags exist, any match suffices.
func IsCandidate(doc *goquery.Document) bool {
	candidate := false
	doc.Find(`meta[name="description"]`).EachWithBreak(func(_ int, tag *goquery.Selection) bool {
		content, ok := tag.Attr("content")
		if !ok {
			return true
		}
		for _, sig := range optivumSignatures {
			if strings.Contains(content, sig) {
				candidate = true
				return false
			}
		}
		return true
	})
	return candidate
}
