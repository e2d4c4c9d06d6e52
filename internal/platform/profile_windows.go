//go:build windows

package platform

import (
	"context"

	"github.com/quantmind-br/gopen/internal/helpers"
)

// Current returns the Windows profile
func Current() *Profile {
	return &Profile{
		OS: "windows",
		CommonDirs: []string{
			`C:\Program Files`,
			`C:\Program Files (x86)`,
		},
		ScanRoot:      `C:\`,
		ExactSuffixes: []string{".exe"},
		MatchDirs:     false,
		Native: func(ctx context.Context, runner helpers.CommandRunner, name string) error {
			_, err := runner.RunCommand(ctx, "cmd", "/C", "start", "", name)
			return err
		},
		Strategies: []LaunchStrategy{
			{
				Name: "start",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					_, err := runner.RunCommand(ctx, "cmd", "/C", "start", "", path)
					return err
				},
			},
			{
				Name: "direct",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					return runner.StartDetached(path)
				},
			},
		},
	}
}
