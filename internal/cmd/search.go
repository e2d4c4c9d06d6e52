package cmd

import (
	"encoding/json"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/quantmind-br/gopen/internal/config"
	"github.com/quantmind-br/gopen/internal/platform"
	"github.com/quantmind-br/gopen/internal/search"
	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// searchResult is the JSON shape of one candidate
type searchResult struct {
	Path   string `json:"path"`
	Score  int    `json:"score"`
	Source string `json:"source"`
	Exec   string `json:"exec,omitempty"`
}

// NewSearchCmd creates the search command
func NewSearchCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	var (
		jsonOutput bool
		fullTree   bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "search <app name>",
		Short: "List matching candidates without launching",
		Long:  `Run the resolution tiers and print every candidate ranked by score, without launching anything.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.InitColors()
			name := args[0]

			profile := platform.Current()
			resolver := search.NewResolver(afero.NewOsFs(), profile, cfg.Search, log, false)

			candidates := resolver.Collect(name, fullTree)
			if limit > 0 && len(candidates) > limit {
				candidates = candidates[:limit]
			}

			log.Debug().
				Str("name", name).
				Int("candidates", len(candidates)).
				Bool("full_tree", fullTree).
				Msg("search finished")

			if jsonOutput {
				results := make([]searchResult, len(candidates))
				for i, c := range candidates {
					results[i] = searchResult{
						Path:   c.Path,
						Score:  c.Score,
						Source: c.Kind.String(),
						Exec:   c.Exec,
					}
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(results)
			}

			if len(candidates) == 0 {
				ui.PrintWarning("No candidates found for %q", name)
				return nil
			}

			printCandidateTable(cmd, candidates)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&fullTree, "full", false, "include the full filesystem tier (slow)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 15, "maximum number of candidates to show (0 for all)")

	return cmd
}

// printCandidateTable prints candidates as a table, best match first
func printCandidateTable(cmd *cobra.Command, candidates []search.Candidate) {
	table := tablewriter.NewTable(cmd.OutOrStdout(),
		tablewriter.WithHeader([]string{"Score", "Source", "Path", "Exec"}),
		tablewriter.WithAlignment(tw.MakeAlign(4, tw.AlignLeft)),
		tablewriter.WithSymbols(tw.NewSymbols(tw.StyleNone)),
	)

	for _, c := range candidates {
		exec := c.Exec
		if exec == "" {
			exec = "-"
		}

		table.Append(
			strconv.Itoa(c.Score),
			ui.ColorizeSource(c.Kind.String()),
			c.Path,
			exec,
		)
	}

	table.Render()
}
