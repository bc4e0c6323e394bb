// Package report holds the aggregate result model of a scan and renders it to
// the final Markdown document.
package report

import "time"

// Match is a single pattern occurrence: root-relative file path, 1-based line
// number, and a trimmed snippet of the matching line.
type Match struct {
	File    string
	Line    int
	Snippet string
}

// Hit aggregates one detector's results across a whole scan. Count is the true
// total; Examples is capped and never affects Count.
type Hit struct {
	Key      string
	Count    int
	Examples []Match
}

// AntiFinding aggregates one anti-pattern rule's matches. Like Hit, Count is
// the true total while Matches is capped.
type AntiFinding struct {
	Key     string
	Count   int
	Matches []Match
}

// Report is the complete result of one scan run. The scanner builds it, the
// recommendation engine appends its lines, the renderer only reads it.
type Report struct {
	Root            string
	GeneratedAt     time.Time
	Run             string
	FilesScanned    int
	FilesSkipped    int
	Hits            map[string]*Hit
	AntiFindings    map[string]*AntiFinding
	Recommendations []string
}

// Count returns the hit count for a detector key; absent keys read as zero.
func (r *Report) Count(key string) int {
	if hit, ok := r.Hits[key]; ok {
		return hit.Count
	}
	return 0
}
