// Package search implements the cascading multi-tier resolution of an
// application name to a launchable candidate.
package search

// Kind tags where a candidate came from, which decides how it is launched
type Kind int

const (
	// KindFile is a plain filesystem path, dispatched via the platform's
	// launch fallback chain
	KindFile Kind = iota
	// KindDesktop is a desktop entry, dispatched via its recorded Exec line
	KindDesktop
)

// String returns the kind as a short label
func (k Kind) String() string {
	if k == KindDesktop {
		return "desktop"
	}
	return "file"
}

// Candidate is the unit of comparison across all search tiers
type Candidate struct {
	// Path is the file the candidate was found at
	Path string
	// Score is 0 for an exact match, otherwise the edit distance between the
	// full candidate name and the query. Only produced for names containing
	// the query.
	Score int
	// Exec is the verbatim launch command of a desktop candidate
	Exec string
	// Kind distinguishes desktop entries from plain files
	Kind Kind
}

// Exact reports whether the candidate is an exact match
func (c Candidate) Exact() bool {
	return c.Score == 0
}

// bestOf is the best-so-far accumulator. A new candidate replaces the current
// one only with a strictly lower score, so the first tier to report a given
// score wins ties against later tiers.
type bestOf struct {
	c *Candidate
}

func (b *bestOf) offer(c Candidate) {
	if b.c == nil || c.Score < b.c.Score {
		b.c = &c
	}
}

func (b *bestOf) candidate() *Candidate {
	return b.c
}

// sink receives candidates as a scan produces them. add returns true when the
// scan should stop.
type sink interface {
	add(c Candidate) (stop bool)
}

// bestSink keeps only the best candidate and stops the scan at an exact match
type bestSink struct {
	best bestOf
}

func (s *bestSink) add(c Candidate) bool {
	s.best.offer(c)
	return c.Score == 0
}

func (s *bestSink) result() *Candidate {
	return s.best.candidate()
}

// collectSink keeps every candidate and never stops the scan
type collectSink struct {
	all []Candidate
}

func (s *collectSink) add(c Candidate) bool {
	s.all = append(s.all, c)
	return false
}
