package crawler

import (
	"net/url"
	"strings"
)

// Canonicalize resolves raw against base (if base is non-nil) and returns
// the canonical string form: scheme must be http or https, and one leading
// "www." host label is stripped. Unlike a general link-sanitizer, it does
// not lowercase the path, does not strip the fragment, and does not
// collapse an empty path to "/" — the canonical form is exactly "whatever
// the URL resolves to, with the www. prefix removed".
func Canonicalize(raw string, base *url.URL) (string, bool) {
	ref, err := url.Parse(raw)
	if err != nil {
		return "", false
	}

	resolved := ref
	if base != nil {
		resolved = base.ResolveReference(ref)
	}

	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", false
	}

	host := resolved.Hostname()
	if strings.HasPrefix(host, "www.") {
		port := resolved.Port()
		newHost := host[len("www."):]
		if port != "" {
			newHost += ":" + port
		}
		resolved.Host = newHost
	}

	return resolved.String(), true
}

// CanonicalizeURL is the parsed-URL-input form of Canonicalize, used when
// the caller already has a *url.URL (e.g. a validated seed) rather than a
// raw string plus base.
func CanonicalizeURL(u *url.URL) (string, bool) {
	return Canonicalize(u.String(), nil)
}
