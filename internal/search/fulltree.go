package search

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/spf13/afero"
)

var errStopWalk = errors.New("stop walk")

// scanFullTree walks the whole filesystem from the platform's scan root. The
// prune list (virtual/kernel trees plus configured exclusions) is skipped
// before descending, symlinks are not followed, and on a real filesystem the
// walk never leaves the root's storage volume. Traversal errors skip the
// affected entry and continue.
func (r *Resolver) scanFullTree(query string, s sink) {
	root := r.profile.ScanRoot

	prune := make(map[string]struct{}, len(r.profile.PruneDirs)+len(r.cfg.ExcludeDirs))
	for _, dir := range r.profile.PruneDirs {
		prune[filepath.Clean(dir)] = struct{}{}
	}
	for _, dir := range r.cfg.ExcludeDirs {
		prune[filepath.Clean(dir)] = struct{}{}
	}

	// The volume bound only applies to the real filesystem; an in-memory fs
	// has no devices.
	var rootDev uint64
	var haveRootDev bool
	if _, ok := r.fs.(*afero.OsFs); ok {
		rootDev, haveRootDev = deviceOf(root)
	}

	var spin *ui.Spinner
	if r.verbose {
		spin = ui.NewSpinner("scanning " + root)
		defer spin.Finish()
	}
	visited := 0

	err := afero.Walk(r.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // permission denied, vanished entry: skip
		}

		if spin != nil {
			visited++
			if visited%1024 == 0 {
				spin.Tick(1)
			}
		}

		if info.IsDir() && path != root {
			if _, pruned := prune[path]; pruned {
				return filepath.SkipDir
			}
			if haveRootDev {
				if dev, ok := deviceOf(path); ok && dev != rootDev {
					return filepath.SkipDir
				}
			}
		}

		score, ok := r.scoreEntry(info.Name(), info.IsDir(), query)
		if !ok {
			return nil
		}

		if s.add(Candidate{Path: path, Score: score, Kind: KindFile}) {
			return errStopWalk
		}
		return nil
	})

	if err != nil && !errors.Is(err, errStopWalk) {
		r.log.Debug().Err(err).Str("root", root).Msg("full-tree scan ended early")
	}
}
