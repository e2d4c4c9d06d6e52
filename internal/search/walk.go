package search

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// walkDepth visits every entry under dir down to maxDepth levels below it,
// depth-first. fn returns false to stop the whole walk; walkDepth then
// returns false as well. Unreadable directories and entries are skipped.
// With followLinks, symlinked entries are resolved so symlinked directories
// get descended into.
func walkDepth(fsys afero.Fs, dir string, maxDepth int, followLinks bool, fn func(path string, info os.FileInfo) bool) bool {
	if maxDepth < 1 {
		return true
	}

	entries, err := afero.ReadDir(fsys, dir)
	if err != nil {
		return true
	}

	for _, info := range entries {
		path := filepath.Join(dir, info.Name())

		if followLinks && info.Mode()&os.ModeSymlink != 0 {
			resolved, err := fsys.Stat(path)
			if err != nil {
				continue // broken link
			}
			info = resolved
		}

		if !fn(path, info) {
			return false
		}

		if info.IsDir() {
			if !walkDepth(fsys, path, maxDepth-1, followLinks, fn) {
				return false
			}
		}
	}

	return true
}
