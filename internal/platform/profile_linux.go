//go:build linux

package platform

import (
	"context"
	"os"
	"path/filepath"

	"github.com/quantmind-br/gopen/internal/helpers"
)

// Current returns the Linux profile
func Current() *Profile {
	homeDir, _ := os.UserHomeDir()

	return &Profile{
		OS: "linux",
		DesktopDirs: []string{
			"/usr/share/applications",
			filepath.Join(homeDir, ".local", "share", "applications"),
			"/var/lib/flatpak/exports/share/applications",
			"/snap/gui",
		},
		CommonDirs: []string{
			"/usr/bin",
			"/usr/local/bin",
			"/opt",
			"/snap/bin",
			"/var/lib/flatpak/exports/bin",
		},
		ScanRoot: "/",
		PruneDirs: []string{
			"/proc",
			"/sys",
			"/dev",
			"/run",
		},
		MatchDirs: false,
		Native: func(ctx context.Context, runner helpers.CommandRunner, name string) error {
			// Run the name as-is and require a clean exit, like typing it
			// into a shell would
			_, err := runner.RunCommand(ctx, name)
			return err
		},
		Strategies: []LaunchStrategy{
			{
				Name: "xdg-open",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					_, err := runner.RunCommand(ctx, "xdg-open", path)
					return err
				},
			},
			{
				Name: "direct",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					return runner.StartDetached(path)
				},
			},
			{
				Name: "sh",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					return runner.StartDetached("sh", path)
				},
			},
		},
	}
}
