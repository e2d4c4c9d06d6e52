package search

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/quantmind-br/gopen/internal/desktop"
)

// scanDesktopEntries walks the platform's desktop-entry directories in
// priority order, scoring each entry's display name. An exact match stops the
// scan across all remaining directories, not just the current one.
// Unreadable or incomplete entries are skipped.
func (r *Resolver) scanDesktopEntries(query string, s sink) {
	for _, dir := range r.profile.DesktopDirs {
		stopped := !walkDepth(r.fs, dir, 2, true, func(path string, info os.FileInfo) bool {
			if info.IsDir() || filepath.Ext(path) != ".desktop" {
				return true
			}

			entry, err := desktop.ParseFile(r.fs, path)
			if err != nil {
				r.log.Debug().Err(err).Str("path", path).Msg("skipping unreadable desktop entry")
				return true
			}
			if !entry.Complete() {
				return true
			}

			score, ok := MatchScore(strings.ToLower(entry.Name), query, nil)
			if !ok {
				return true
			}

			r.log.Debug().
				Str("path", path).
				Str("name", entry.Name).
				Int("score", score).
				Msg("desktop entry candidate")

			return !s.add(Candidate{
				Path:  path,
				Score: score,
				Exec:  entry.Exec,
				Kind:  KindDesktop,
			})
		})
		if stopped {
			return
		}
	}
}
