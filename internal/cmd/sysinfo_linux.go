//go:build linux

package cmd

import (
	"bytes"
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// systemInfo returns kernel name, release, and machine from uname
func systemInfo() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return runtime.GOOS + "/" + runtime.GOARCH
	}

	return fmt.Sprintf("%s %s %s",
		utsField(uts.Sysname[:]),
		utsField(uts.Release[:]),
		utsField(uts.Machine[:]),
	)
}

func utsField(b []byte) string {
	if i := bytes.IndexByte(b, 0); i >= 0 {
		b = b[:i]
	}
	return string(b)
}
