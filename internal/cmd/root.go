package cmd

import (
	"fmt"
	"strconv"

	"github.com/quantmind-br/gopen/internal/config"
	"github.com/quantmind-br/gopen/internal/helpers"
	"github.com/quantmind-br/gopen/internal/launcher"
	"github.com/quantmind-br/gopen/internal/platform"
	"github.com/quantmind-br/gopen/internal/search"
	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd(cfg *config.Config, log *zerolog.Logger, version string) *cobra.Command {
	var (
		verbose bool
		choose  bool
	)

	cmd := &cobra.Command{
		Use:          "gopen <app name>",
		Short:        "Launch applications by name",
		Long:         `A multiplatform app launcher: resolves a name against desktop entries, common install paths, and the filesystem, then starts the best match.`,
		Version:      version,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.InitColors()
			name := args[0]

			log.Info().
				Str("name", name).
				Bool("verbose", verbose).
				Msg("starting resolution")

			profile := platform.Current()
			runner := helpers.NewOSCommandRunner()
			resolver := search.NewResolver(afero.NewOsFs(), profile, cfg.Search, log, verbose)
			l := launcher.New(runner, profile, resolver, log, verbose)
			ctx := cmd.Context()

			if choose {
				candidate, err := chooseCandidate(resolver, name, cfg.Search.FullScan)
				if err != nil {
					return err
				}
				return l.Dispatch(ctx, *candidate)
			}

			return l.Launch(ctx, name)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	cmd.Flags().BoolVar(&choose, "choose", false, "pick interactively among matching candidates instead of launching the best one")

	// Add subcommands
	cmd.AddCommand(NewSearchCmd(cfg, log))
	cmd.AddCommand(NewDoctorCmd(cfg, log))
	cmd.AddCommand(NewCompletionCmd(cfg, log))
	cmd.AddCommand(NewVersionCmd(version))

	return cmd
}

// chooseCandidate collects the search-tier candidates and prompts the user
func chooseCandidate(resolver *search.Resolver, name string, includeFullTree bool) (*search.Candidate, error) {
	candidates := resolver.Collect(name, includeFullTree)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("could not find application: %s", name)
	}

	items := make([]string, len(candidates))
	for i, c := range candidates {
		items[i] = c.Path + " [" + c.Kind.String() + ", score " + strconv.Itoa(c.Score) + "]"
	}

	index, _, err := ui.SelectPrompt("Select application to launch", items)
	if err != nil {
		return nil, err
	}

	return &candidates[index], nil
}
