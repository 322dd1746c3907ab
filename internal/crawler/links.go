package crawler

import (
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// scriptEscapeRe undoes JS-source-encoder double-escaping: two literal
// backslashes followed by any character are replaced by that character
// alone (so "\\/" becomes "/", etc). Ported verbatim from the original
// crawler's `\\\\(.)` pattern; the pattern is intentionally loose and is
// not to be refined without evidence it mismatches observed pages.
var scriptEscapeRe = regexp.MustCompile(`\\\\(.)`)

// scriptURLRe finds URL-like substrings inside de-escaped script bodies.
// Ported verbatim; it may over- or under-match by design.
var scriptURLRe = regexp.MustCompile(`(?:(?:https?|ftp)://)?[\w/\-?=%.]+\.[\w/\-&?=%.]+`)

// ExtractLinks implements C3: it extracts the union of anchor hrefs,
// iframe srcs, and script-embedded URLs from doc, canonicalizing each
// against docURL and dropping anything that doesn't resolve to an http(s)
// CanonicalURL. Returned URLs are deduplicated.
func ExtractLinks(doc *goquery.Document, docURL *url.URL) []string {
	seen := make(map[string]struct{})
	var out []string

	add := func(raw string) {
		canon, ok := Canonicalize(raw, docURL)
		if !ok {
			return
		}
		if _, dup := seen[canon]; dup {
			return
		}
		seen[canon] = struct{}{}
		out = append(out, canon)
	}

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")

		worthFollowing := ContainsKeyword(href) || ContainsKeyword(a.Text())
		if !worthFollowing {
			a.Find("img").EachWithBreak(func(_ int, img *goquery.Selection) bool {
				src, _ := img.Attr("src")
				alt, _ := img.Attr("alt")
				if ContainsKeyword(src) || ContainsKeyword(alt) {
					worthFollowing = true
					return false
				}
				return true
			})
		}

		if worthFollowing {
			add(href)
		}
	})

	doc.Find("iframe[src]").Each(func(_ int, iframe *goquery.Selection) {
		src, _ := iframe.Attr("src")
		add(src)
	})

	doc.Find("script").Each(func(_ int, script *goquery.Selection) {
		content := scriptEscapeRe.ReplaceAllString(script.Text(), "$1")
		for _, match := range scriptURLRe.FindAllString(content, -1) {
			if ContainsKeyword(match) {
				add(match)
			}
		}
	})

	return out
}
