// Package platform captures the per-OS knowledge the resolver and dispatcher
// need: which directories to scan, which file suffixes count as exact
// matches, and which launch mechanisms to try in which order.
package platform

import (
	"context"

	"github.com/quantmind-br/gopen/internal/helpers"
)

// LaunchStrategy is one ordered attempt at launching a plain file candidate.
// Strategies are tried in sequence until one succeeds.
type LaunchStrategy struct {
	Name string
	// Applies filters the paths this strategy handles. Nil means all paths.
	Applies func(path string) bool
	Launch  func(ctx context.Context, runner helpers.CommandRunner, path string) error
}

// Profile bundles the platform-conditional behavior of the whole resolution
// run, selected once at startup.
type Profile struct {
	// OS is the runtime.GOOS value this profile was built for
	OS string

	// DesktopDirs are the desktop-entry registries scanned by the
	// entry-metadata tier, in priority order. Empty on platforms without
	// desktop entries.
	DesktopDirs []string

	// CommonDirs are the conventional install directories scanned by the
	// common-path tier.
	CommonDirs []string

	// ScanRoot is where the full-tree tier starts
	ScanRoot string

	// PruneDirs are virtual/kernel trees the full-tree tier must not descend
	// into
	PruneDirs []string

	// ExactSuffixes are suffixes that, appended to the query, still count as
	// an exact match (".exe", ".app")
	ExactSuffixes []string

	// MatchDirs allows directories themselves to match. On macOS .app bundles
	// are directories; elsewhere directory names only produce false positives.
	MatchDirs bool

	// Native asks the host's own program lookup to run the name directly,
	// bypassing the search tiers
	Native func(ctx context.Context, runner helpers.CommandRunner, name string) error

	// Strategies is the ordered launch fallback chain for plain file
	// candidates
	Strategies []LaunchStrategy
}

// HasDesktopEntries reports whether the entry-metadata tier applies
func (p *Profile) HasDesktopEntries() bool {
	return len(p.DesktopDirs) > 0
}
