package crawler

import (
	"context"
	"log"
	"net/url"
	"sync"
	"time"

	"github.com/dominik-korsa/timetable-crawler/internal/platform/outputsink"
)

// Progress is satisfied by *progressbar.ProgressBar; narrowed to the one
// method the fanout needs so tests can substitute a no-op stub.
type Progress interface {
	Add(int) error
}

type noopProgress struct{}

func (noopProgress) Add(int) error { return nil }

// FanoutConfig configures C8, the school-level fanout.
type FanoutConfig struct {
	Fetcher           Fetcher
	Gate              *Gate
	Sink              *outputsink.Sink
	Progress          Progress
	ConcurrentSchools int
	MaxDepth          int
	// PermitTimeout bounds how long one fetch may hold its gate permit
	// before it is released early. Zero uses PermitTimeout's default.
	PermitTimeout time.Duration
}

// Run implements C8: it fans out over seeds with a bounded pool of
// cfg.ConcurrentSchools workers. Each worker canonicalizes its seed's
// website URL, runs a fresh per-school crawlDFS at cfg.MaxDepth, writes
// any discovered candidates through the shared sink, logs a summary, and
// advances the progress indicator. Run blocks until every seed handed to a
// worker has been processed and returns the number of schools processed;
// once ctx is done, no further seeds are handed out.
func Run(ctx context.Context, seeds []Seed, cfg FanoutConfig) int {
	progress := cfg.Progress
	if progress == nil {
		progress = noopProgress{}
	}

	workers := cfg.ConcurrentSchools
	if workers <= 0 {
		workers = 1
	}
	permitTimeout := cfg.PermitTimeout
	if permitTimeout <= 0 {
		permitTimeout = PermitTimeout
	}

	seedCh := make(chan Seed, workers)
	var processed int
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range seedCh {
				candidates := crawlSchool(ctx, seed, cfg.Fetcher, cfg.Gate, permitTimeout, cfg.MaxDepth)
				if len(candidates) > 0 {
					log.Printf("Found potential timetables for school %d:\n%v", seed.SchoolID, candidates)
					for _, candidate := range candidates {
						if err := cfg.Sink.Write(seed.SchoolID, candidate); err != nil {
							log.Printf("Failed to write candidate for school %d: %v", seed.SchoolID, err)
						}
					}
				}
				_ = progress.Add(1)
			}
		}()
	}

feed:
	for _, seed := range seeds {
		select {
		case seedCh <- seed:
			processed++
		case <-ctx.Done():
			break feed
		}
	}
	close(seedCh)
	wg.Wait()

	return processed
}

// crawlSchool canonicalizes seed.WebsiteURL and, if valid, runs the
// per-school DFS to completion, returning discovered candidates in
// discovery order. An unparsable or non-http(s) seed URL yields zero
// candidates without logging (spec: per-school skip, no log noise).
func crawlSchool(ctx context.Context, seed Seed, fetcher Fetcher, gate *Gate, permitTimeout time.Duration, maxDepth int) []string {
	parsed, err := url.Parse(seed.WebsiteURL)
	if err != nil {
		return nil
	}
	canonicalStart, ok := CanonicalizeURL(parsed)
	if !ok {
		return nil
	}
	startURL, err := url.Parse(canonicalStart)
	if err != nil {
		return nil
	}

	state := NewCrawlState()
	crawlDFS(ctx, startURL, maxDepth, fetcher, gate, permitTimeout, state)
	return state.Candidates()
}
