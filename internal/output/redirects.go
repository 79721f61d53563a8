package output

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// RedirectEntry maps a legacy node path to the new relative path.
type RedirectEntry struct {
	Source string
	Target string
}

// RedirectMap accumulates legacy-URL to new-path mappings for the lifetime of
// a crawl. It is safe for concurrent appends.
type RedirectMap struct {
	mu      sync.Mutex
	entries []RedirectEntry
	seen    map[string]bool
}

// NewRedirectMap creates an empty redirect map.
func NewRedirectMap() *RedirectMap {
	return &RedirectMap{
		seen: make(map[string]bool),
	}
}

// Add records a mapping from the legacy node to the new path. Duplicate
// sources are ignored so each node maps to exactly one target.
func (m *RedirectMap) Add(node int, newPath string) {
	source := fmt.Sprintf("node/%d.md", node)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen[source] {
		return
	}

	m.seen[source] = true
	m.entries = append(m.entries, RedirectEntry{
		Source: source,
		Target: "/" + strings.TrimPrefix(newPath, "/"),
	})
}

// Len returns the number of accumulated entries.
func (m *RedirectMap) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// Entries returns a copy of the accumulated entries.
func (m *RedirectMap) Entries() []RedirectEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]RedirectEntry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Flush writes the map to path, one mapping per line:
//
//	"node/1234.md": "/articles/2015/2015-02-06_some_title.md"
func (m *RedirectMap) Flush(path string) error {
	var sb strings.Builder

	for _, e := range m.Entries() {
		fmt.Fprintf(&sb, "%q: %q\n", e.Source, e.Target)
	}

	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write redirect map: %w", err)
	}

	return nil
}
