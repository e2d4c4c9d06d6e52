package search

import (
	"sort"
	"strings"

	"github.com/quantmind-br/gopen/internal/config"
	"github.com/quantmind-br/gopen/internal/platform"
	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Resolver runs the search tiers against a filesystem. One resolution run is
// single-threaded and scans cold; nothing is cached between runs.
type Resolver struct {
	fs      afero.Fs
	profile *platform.Profile
	cfg     config.SearchConfig
	log     *zerolog.Logger
	verbose bool
}

// NewResolver creates a Resolver for the given platform profile
func NewResolver(fs afero.Fs, profile *platform.Profile, cfg config.SearchConfig, log *zerolog.Logger, verbose bool) *Resolver {
	return &Resolver{
		fs:      fs,
		profile: profile,
		cfg:     cfg,
		log:     log,
		verbose: verbose,
	}
}

// Resolve runs the search tiers in priority order and returns the best
// candidate, or nil when nothing matched. Each tier short-circuits the whole
// run on an exact match; otherwise the globally lowest score wins, with ties
// kept by the earlier tier.
func (r *Resolver) Resolve(name string) *Candidate {
	query := strings.ToLower(name)
	var best bestOf

	if r.profile.HasDesktopEntries() {
		r.narrate("Searching desktop entries...")
		s := &bestSink{}
		r.scanDesktopEntries(query, s)
		if c := s.result(); c != nil {
			if c.Exact() {
				r.narrate("Found exact desktop entry match.")
				return c
			}
			best.offer(*c)
		}
	}

	r.narrate("Searching common paths...")
	s := &bestSink{}
	r.scanCommonPaths(query, s)
	if c := s.result(); c != nil {
		if c.Exact() {
			r.narrate("Found exact common path match.")
			return c
		}
		best.offer(*c)
	}

	if r.cfg.FullScan {
		r.narrate("Searching full filesystem...")
		s := &bestSink{}
		r.scanFullTree(query, s)
		if c := s.result(); c != nil {
			if c.Exact() {
				r.narrate("Found exact filesystem match.")
				return c
			}
			best.offer(*c)
		}
	}

	if c := best.candidate(); c != nil {
		r.narrate("No exact match found. Using closest fuzzy match (score: %d).", c.Score)
		return c
	}

	return nil
}

// Collect gathers every candidate from the desktop-entry and common-path
// tiers (and optionally the full tree), sorted by score. The sort is stable,
// so equal scores keep tier discovery order.
func (r *Resolver) Collect(name string, includeFullTree bool) []Candidate {
	query := strings.ToLower(name)
	s := &collectSink{}

	if r.profile.HasDesktopEntries() {
		r.scanDesktopEntries(query, s)
	}
	r.scanCommonPaths(query, s)
	if includeFullTree {
		r.scanFullTree(query, s)
	}

	sort.SliceStable(s.all, func(i, j int) bool {
		return s.all[i].Score < s.all[j].Score
	})

	return s.all
}

// scoreEntry applies the matching primitive to one filesystem entry
func (r *Resolver) scoreEntry(name string, isDir bool, query string) (int, bool) {
	if isDir && !r.profile.MatchDirs {
		return 0, false
	}
	return MatchScore(strings.ToLower(name), query, r.profile.ExactSuffixes)
}

func (r *Resolver) narrate(format string, args ...interface{}) {
	if r.verbose {
		ui.PrintInfo(format, args...)
	}
}
