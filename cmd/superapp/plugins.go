// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/superapp-labs/superapp/internal/issue"
)

var pluginsCmd = &cobra.Command{
	Use:   "plugins",
	Short: "List all discovered plugins",
	Long: `Lists every plugin manifest found in the search locations, in the
order they will be composed: the project plugins directory first, then
~/.superapp/plugins, then configured search paths.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlugins(cmd)
	},
}

func runPlugins(cmd *cobra.Command) error {
	result := discoverManifests(nil)
	renderDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	renderDiagnosticCards(cmd.ErrOrStderr(), result.Diagnostics)

	out := cmd.OutOrStdout()
	if len(result.Manifests) == 0 {
		renderIssueCard(cmd.ErrOrStderr(), issue.ManifestNotFoundId)
		fmt.Fprintln(out, SubtitleStyle.Render("No plugins discovered."))
		return nil
	}

	fmt.Fprintln(out, TitleStyle.Render("Discovered plugins")+SubtitleStyle.Render(" (in composition order)"))
	for _, dm := range result.Manifests {
		if dm.Error != nil {
			fmt.Fprintf(out, "  %s %s\n", ErrorStyle.Render("✗"), dm.Path)
			fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(formatErrorForDisplay(dm.Error, verbose)))
			continue
		}

		m := dm.Manifest
		header := fmt.Sprintf("  %s %s", SuccessStyle.Render("•"), PluginStyle.Render(m.Name))
		if m.Version != "" {
			header += SubtitleStyle.Render(" v" + m.Version)
		}
		fmt.Fprintln(out, header)
		if m.Description != "" {
			fmt.Fprintf(out, "    %s\n", SubtitleStyle.Render(m.Description))
		}
		fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(fmt.Sprintf("%d contribution(s), from %s", m.ContributionCount(), dm.Source)))
		if verbose {
			fmt.Fprintf(out, "    %s\n", VerboseStyle.Render(dm.Path))
		}
	}
	return nil
}
