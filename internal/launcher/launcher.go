// Package launcher owns the resolution run: the native fast path, the search
// tiers, and the final dispatch of the winning candidate.
package launcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantmind-br/gopen/internal/desktop"
	"github.com/quantmind-br/gopen/internal/helpers"
	"github.com/quantmind-br/gopen/internal/platform"
	"github.com/quantmind-br/gopen/internal/search"
	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/rs/zerolog"
)

// Launcher resolves an application name and starts it
type Launcher struct {
	runner   helpers.CommandRunner
	profile  *platform.Profile
	resolver *search.Resolver
	log      *zerolog.Logger
	verbose  bool
}

// New creates a Launcher
func New(runner helpers.CommandRunner, profile *platform.Profile, resolver *search.Resolver, log *zerolog.Logger, verbose bool) *Launcher {
	return &Launcher{
		runner:   runner,
		profile:  profile,
		resolver: resolver,
		log:      log,
		verbose:  verbose,
	}
}

// Launch attempts the native fast path with the original-case name, falls
// back to the search tiers, and dispatches the winning candidate. Returns an
// error naming the query when nothing matched.
func (l *Launcher) Launch(ctx context.Context, name string) error {
	l.narrate("Attempting to launch '%s'...", name)

	if err := l.profile.Native(ctx, l.runner, name); err == nil {
		l.narrate("Successfully launched '%s' using native command.", name)
		return nil
	} else {
		l.log.Debug().Err(err).Str("name", name).Msg("native launch failed, falling back to search")
		l.narrate("Native launch failed.")
	}

	candidate := l.resolver.Resolve(name)
	if candidate == nil {
		return fmt.Errorf("could not find or launch application: %s", name)
	}

	return l.Dispatch(ctx, *candidate)
}

// Dispatch starts the chosen candidate. Desktop candidates are spawned via
// their recorded Exec line, plain files via the platform's ordered launch
// fallback chain.
func (l *Launcher) Dispatch(ctx context.Context, c search.Candidate) error {
	if c.Kind == search.KindDesktop {
		return l.dispatchDesktop(c)
	}
	return l.dispatchFile(ctx, c.Path)
}

func (l *Launcher) dispatchDesktop(c search.Candidate) error {
	l.narrate("Launching desktop entry: %s (Exec=%s)", c.Path, c.Exec)

	argv, err := desktop.SplitExec(c.Exec)
	if err != nil {
		return fmt.Errorf("desktop entry %s: %w", c.Path, err)
	}

	if err := l.runner.StartDetached(argv[0], argv[1:]...); err != nil {
		return fmt.Errorf("spawn desktop entry command: %w", err)
	}

	l.log.Debug().Str("path", c.Path).Strs("argv", argv).Msg("desktop entry spawned")
	return nil
}

func (l *Launcher) dispatchFile(ctx context.Context, path string) error {
	l.narrate("Launching: %s", path)

	var attempted []string
	for _, strategy := range l.profile.Strategies {
		if strategy.Applies != nil && !strategy.Applies(path) {
			continue
		}

		attempted = append(attempted, strategy.Name)
		if err := strategy.Launch(ctx, l.runner, path); err != nil {
			l.log.Debug().Err(err).Str("strategy", strategy.Name).Str("path", path).Msg("launch strategy failed")
			continue
		}

		l.log.Debug().Str("strategy", strategy.Name).Str("path", path).Msg("launched")
		return nil
	}

	return fmt.Errorf("failed to launch %s (tried %s)", path, strings.Join(attempted, ", "))
}

func (l *Launcher) narrate(format string, args ...interface{}) {
	if l.verbose {
		ui.PrintInfo(format, args...)
	}
}
