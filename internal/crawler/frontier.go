package crawler

import "fmt"

// Frontier is the per-section queue of detail pages to visit. URLs are
// deduplicated and fetch outcomes are tallied for the end-of-crawl summary.
type Frontier struct {
	pending []string
	visited map[string]bool
	stats   FetchStats
}

// FetchStats counts page fetch outcomes for one section.
type FetchStats struct {
	Discovered int
	Succeeded  int
	Failed     int
}

// String returns a one-line summary of the stats.
func (s FetchStats) String() string {
	return fmt.Sprintf("%d discovered, %d rendered, %d failed", s.Discovered, s.Succeeded, s.Failed)
}

// NewFrontier creates an empty frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		visited: make(map[string]bool),
	}
}

// Push queues a URL unless it was already seen. It reports whether the URL
// was accepted.
func (f *Frontier) Push(url string) bool {
	if url == "" || f.visited[url] {
		return false
	}

	f.visited[url] = true
	f.pending = append(f.pending, url)
	f.stats.Discovered++

	return true
}

// Next pops the next URL to visit.
func (f *Frontier) Next() (string, bool) {
	if len(f.pending) == 0 {
		return "", false
	}

	url := f.pending[0]
	f.pending = f.pending[1:]

	return url, true
}

// RecordResult tallies the outcome of one page.
func (f *Frontier) RecordResult(success bool) {
	if success {
		f.stats.Succeeded++
	} else {
		f.stats.Failed++
	}
}

// Stats returns the accumulated fetch statistics.
func (f *Frontier) Stats() FetchStats {
	return f.stats
}
