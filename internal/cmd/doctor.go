package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/quantmind-br/gopen/internal/config"
	"github.com/quantmind-br/gopen/internal/helpers"
	"github.com/quantmind-br/gopen/internal/platform"
	"github.com/quantmind-br/gopen/internal/ui"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor command
func NewDoctorCmd(cfg *config.Config, log *zerolog.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check launch tools and scan directories",
		Long:  `Check the availability of the platform's launch tools, the scanned directories, and the effective configuration.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ui.InitColors()
			profile := platform.Current()
			runner := helpers.NewOSCommandRunner()

			ui.PrintHeader("System Diagnostics")
			ui.PrintKeyValue("System", systemInfo())

			var issues []string
			var warnings []string

			// 1. Launch tools used by the dispatch fallback chain
			ui.PrintSubheader("Launch Tools")
			for _, tool := range launchTools(profile) {
				if runner.CommandExists(tool.command) {
					ui.PrintSuccess("%s: found", tool.command)
					continue
				}
				if tool.required {
					ui.PrintError("%s: NOT FOUND", tool.command)
					issues = append(issues, fmt.Sprintf("missing required tool: %s (%s)", tool.command, tool.purpose))
				} else {
					ui.PrintWarning("%s: not found (optional - %s)", tool.command, tool.purpose)
					warnings = append(warnings, fmt.Sprintf("optional tool missing: %s", tool.command))
				}
			}

			// 2. Scanned directories
			ui.PrintSubheader("Desktop Entry Directories")
			if !profile.HasDesktopEntries() {
				ui.PrintInfo("not used on this platform")
			}
			for _, dir := range profile.DesktopDirs {
				reportDir(dir, &warnings)
			}

			ui.PrintSubheader("Common Path Directories")
			for _, dir := range append(append([]string{}, profile.CommonDirs...), cfg.Search.ExtraDirs...) {
				reportDir(dir, &warnings)
			}

			// 3. Effective configuration
			ui.PrintSubheader("Configuration")
			ui.PrintKeyValue("Full filesystem scan", fmt.Sprintf("%t", cfg.Search.FullScan))
			ui.PrintKeyValue("Scan root", profile.ScanRoot)
			if len(cfg.Search.ExcludeDirs) > 0 {
				ui.PrintKeyValue("Extra exclusions", strings.Join(cfg.Search.ExcludeDirs, ", "))
			}
			logFile := cfg.Paths.LogFile
			if logFile == "" {
				logFile = "(console only)"
			}
			ui.PrintKeyValue("Log file", logFile)

			// Summary
			fmt.Println()
			if len(issues) > 0 {
				ui.PrintError("%d issue(s) found", len(issues))
				ui.PrintList(issues)
				return fmt.Errorf("doctor found %d issue(s)", len(issues))
			}
			if len(warnings) > 0 {
				ui.PrintWarning("%d warning(s)", len(warnings))
				ui.PrintList(warnings)
			}
			ui.PrintSuccess("Everything looks fine")

			log.Debug().
				Int("issues", len(issues)).
				Int("warnings", len(warnings)).
				Msg("doctor finished")
			return nil
		},
	}

	return cmd
}

type launchTool struct {
	command  string
	purpose  string
	required bool
}

// launchTools lists the external commands the dispatch chain may call
func launchTools(profile *platform.Profile) []launchTool {
	switch profile.OS {
	case "linux":
		return []launchTool{
			{"xdg-open", "open files with the default handler", false},
			{"sh", "shell fallback for scripts", true},
		}
	case "darwin":
		return []launchTool{
			{"open", "open applications and bundles", true},
		}
	case "windows":
		return []launchTool{
			{"cmd", "start applications", true},
		}
	default:
		return nil
	}
}

func reportDir(dir string, warnings *[]string) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		ui.PrintWarning("%s: not present (skipped during scans)", dir)
		*warnings = append(*warnings, fmt.Sprintf("directory not present: %s", dir))
		return
	}
	ui.PrintSuccess("%s", dir)
}
