//go:build linux || darwin

package search

import "golang.org/x/sys/unix"

// deviceOf returns the device id of path, or false when it cannot be
// determined. Used to keep the full-tree scan on a single storage volume.
func deviceOf(path string) (uint64, bool) {
	var st unix.Stat_t
	if err := unix.Lstat(path, &st); err != nil {
		return 0, false
	}
	return uint64(st.Dev), true
}
