//go:build !linux && !darwin

package search

// deviceOf is unavailable on this platform; the full-tree scan does not
// enforce a volume boundary here.
func deviceOf(path string) (uint64, bool) {
	return 0, false
}
