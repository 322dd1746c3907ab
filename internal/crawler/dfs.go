package crawler

import (
	"context"
	"errors"
	"log"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dominik-korsa/timetable-crawler/internal/platform/htmlparser"
)

// PermitTimeout is the default gate-permit budget for a single fetch; see
// FanoutConfig.PermitTimeout to override it.
const PermitTimeout = 2 * time.Second

// crawlDFS implements C7: a depth-bounded, dedup-guarded recursive
// traversal starting at u. It fetches at most once per school per
// CanonicalURL (enforced by state.TryVisit), classifies each fetched page
// as a terminal candidate or an intermediate, and fans out over the
// intermediate's extracted links concurrently, awaiting all children
// before returning.
func crawlDFS(ctx context.Context, u *url.URL, remainingDepth int, fetcher Fetcher, gate *Gate, permitTimeout time.Duration, state *CrawlState) {
	canonicalURL, ok := CanonicalizeURL(u)
	if !ok {
		return
	}
	if !state.TryVisit(canonicalURL) {
		return
	}

	var fetched *FetchResult
	err := gate.WithPermit(ctx, permitTimeout, func(ctx context.Context) error {
		result, fetchErr := fetcher.Fetch(ctx, canonicalURL)
		if fetchErr != nil {
			return fetchErr
		}
		fetched = result
		return nil
	})
	if err != nil {
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			log.Printf("Failed to fetch %s [%s]\nReason: %v", canonicalURL, httpErr.Category(), err)
		} else {
			log.Printf("Failed to fetch %s\nReason: %v", canonicalURL, err)
		}
		return
	}

	doc, err := htmlparser.Parse(fetched.Body)
	if err != nil {
		// Malformed HTML is tolerated elsewhere; a parse error here means
		// the body could not even be tokenized, which is effectively a
		// fetch failure for this node.
		return
	}

	if IsCandidate(doc) {
		state.AddCandidate(canonicalURL)
		return
	}

	if remainingDepth <= 0 {
		return
	}

	docURL, err := url.Parse(canonicalURL)
	if err != nil {
		return
	}

	children := ExtractLinks(doc, docURL)
	if len(children) == 0 {
		return
	}

	g, childCtx := errgroup.WithContext(ctx)
	for _, childRaw := range children {
		childURL, err := url.Parse(childRaw)
		if err != nil {
			continue
		}
		g.Go(func() error {
			crawlDFS(childCtx, childURL, remainingDepth-1, fetcher, gate, permitTimeout, state)
			return nil
		})
	}
	_ = g.Wait()
}
