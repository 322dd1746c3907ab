package crawler

import "sync"

// CrawlState holds the visited set and discovered candidates for one
// school's DFS. It is created fresh at school entry and discarded at
// school completion; state.mu is held only for the O(1) map-insert /
// slice-append operations below, never across a fetch or a fan-out join.
type CrawlState struct {
	mu         sync.Mutex
	visited    map[string]struct{}
	candidates []string
}

// NewCrawlState returns an empty CrawlState ready for one school's DFS.
func NewCrawlState() *CrawlState {
	return &CrawlState{visited: make(map[string]struct{})}
}

// TryVisit marks canonicalURL as visited and reports whether it was newly
// added. A false return means this URL was already dispatched for fetch
// within this school — the caller must stop descending (cycle/dedup cut).
func (s *CrawlState) TryVisit(canonicalURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visited[canonicalURL]; ok {
		return false
	}
	s.visited[canonicalURL] = struct{}{}
	return true
}

// AddCandidate appends canonicalURL to the discovery-ordered candidate
// list. Call only after C4 classifies the page as terminal.
func (s *CrawlState) AddCandidate(canonicalURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.candidates = append(s.candidates, canonicalURL)
}

// Candidates returns the discovered candidates in discovery order. Call
// only after the DFS for this school has fully completed.
func (s *CrawlState) Candidates() []string {
	return s.candidates
}
