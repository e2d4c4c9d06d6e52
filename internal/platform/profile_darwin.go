//go:build darwin

package platform

import (
	"context"
	"strings"

	"github.com/quantmind-br/gopen/internal/helpers"
)

// Current returns the macOS profile
func Current() *Profile {
	return &Profile{
		OS: "darwin",
		CommonDirs: []string{
			"/Applications",
			"/System/Applications",
			"/Users/Shared/Applications",
		},
		ScanRoot:      "/",
		ExactSuffixes: []string{".app"},
		// .app bundles are directories, so directory names must match
		MatchDirs: true,
		Native: func(ctx context.Context, runner helpers.CommandRunner, name string) error {
			_, err := runner.RunCommand(ctx, "open", "-a", name)
			return err
		},
		Strategies: []LaunchStrategy{
			{
				Name: "open-bundle",
				Applies: func(path string) bool {
					return strings.HasSuffix(strings.ToLower(path), ".app")
				},
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					_, err := runner.RunCommand(ctx, "open", path)
					return err
				},
			},
			{
				Name: "open",
				Launch: func(ctx context.Context, runner helpers.CommandRunner, path string) error {
					_, err := runner.RunCommand(ctx, "open", path)
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
