// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/superapp-labs/superapp/internal/discovery"
	"github.com/superapp-labs/superapp/internal/issue"
	"github.com/superapp-labs/superapp/pkg/resolve"
)

var checkCmd = &cobra.Command{
	Use:   "check [dir...]",
	Short: "Compose all plugins and report conflicts",
	Long: `Discovers plugin manifests, composes them in discovery order, and
reports the result. With directory arguments, only those directories are
scanned, in the order given.

The command fails when a manifest cannot be parsed or when two plugins
claim the same exclusive key (the auth provider slot, a permission slug,
an action name, or a route).`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(cmd, args)
	},
}

func runCheck(cmd *cobra.Command, args []string) error {
	result := discoverManifests(args)
	renderDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	renderDiagnosticCards(cmd.ErrOrStderr(), result.Diagnostics)

	if hasErrorDiagnostics(result.Diagnostics) {
		return &ExitError{Code: 1, Err: errors.New("plugin manifests failed to parse")}
	}

	parsed := result.Parsed()
	if len(parsed) == 0 {
		renderIssueCard(cmd.ErrOrStderr(), issue.ManifestNotFoundId)
		return &ExitError{Code: 1, Err: errors.New("no plugin manifests found")}
	}

	cfg, err := resolve.Resolve(result.Plugins())
	if err != nil {
		var conflict *resolve.ConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Composition failed: ")+conflict.Error())
			renderIssueCard(cmd.ErrOrStderr(), issue.PluginConflictId)
			return &ExitError{Code: 1, Err: err}
		}
		return &ExitError{Code: 1, Err: err}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, SuccessStyle.Render("✓")+" composed "+PluginStyle.Render(fmt.Sprintf("%d plugin(s)", len(parsed)))+" without conflicts")
	fmt.Fprintf(out, "  integrations: %d\n", len(cfg.Integrations))
	fmt.Fprintf(out, "  permissions:  %d\n", len(cfg.Permissions))
	fmt.Fprintf(out, "  roles:        %d\n", len(cfg.Roles))
	fmt.Fprintf(out, "  actions:      %d\n", len(cfg.Actions))
	fmt.Fprintf(out, "  middleware:   %d\n", len(cfg.Middleware))
	fmt.Fprintf(out, "  routes:       %d\n", len(cfg.Routes))
	if cfg.Auth != nil {
		fmt.Fprintf(out, "  auth:         %s\n", cfg.Auth.ProviderName())
	}
	return nil
}

// discoverManifests loads manifests from explicit directories when given,
// otherwise from all configured sources.
func discoverManifests(dirs []string) *discovery.Result {
	d := discovery.New(loadConfigOrDefault())
	if len(dirs) > 0 {
		logger.Debug("discovering plugins from explicit directories", "dirs", dirs)
		return d.LoadDirs(dirs)
	}
	if wd, err := os.Getwd(); err == nil {
		logger.Debug("discovering plugins", "cwd", wd)
	}
	return d.LoadAll()
}

func hasErrorDiagnostics(diags []discovery.Diagnostic) bool {
	for _, diag := range diags {
		if diag.Severity == discovery.SeverityError {
			return true
		}
	}
	return false
}
