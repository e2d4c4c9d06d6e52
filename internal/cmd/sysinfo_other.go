//go:build !linux

package cmd

import "runtime"

func systemInfo() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
