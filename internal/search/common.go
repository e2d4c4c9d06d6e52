package search

import (
	"os"
)

// commonPathDepth bounds how deep the common-path tier descends below each
// configured directory.
const commonPathDepth = 3

// scanCommonPaths walks the platform's conventional install directories plus
// any configured extras, scoring entry names. The first exact match stops the
// whole scan.
func (r *Resolver) scanCommonPaths(query string, s sink) {
	dirs := make([]string, 0, len(r.profile.CommonDirs)+len(r.cfg.ExtraDirs))
	dirs = append(dirs, r.profile.CommonDirs...)
	dirs = append(dirs, r.cfg.ExtraDirs...)

	for _, dir := range dirs {
		stopped := !walkDepth(r.fs, dir, commonPathDepth, false, func(path string, info os.FileInfo) bool {
			score, ok := r.scoreEntry(info.Name(), info.IsDir(), query)
			if !ok {
				return true
			}

			return !s.add(Candidate{
				Path:  path,
				Score: score,
				Kind:  KindFile,
			})
		})
		if stopped {
			return
		}
	}
}
