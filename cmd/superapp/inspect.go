// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"sort"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/superapp-labs/superapp/internal/discovery"
	"github.com/superapp-labs/superapp/internal/issue"
	"github.com/superapp-labs/superapp/pkg/resolve"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect [dir...]",
	Short: "Show the resolved configuration with owners",
	Long: `Composes all discovered plugins and prints the resolved configuration:
every contribution with the plugin that owns it. Exclusive keys (the auth
provider, permissions, actions, routes) have exactly one owner; shared
categories (integrations, middleware, hooks) list contributors in
composition order.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInspect(cmd, args)
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "output format: text, json, or toml")
}

type (
	// ownedEntry pairs a contribution with its owning plugin.
	ownedEntry struct {
		Name  string `json:"name" toml:"name"`
		Owner string `json:"owner" toml:"owner"`
	}

	// ownedRoute describes a resolved route and its owner.
	ownedRoute struct {
		Handler     string `json:"handler" toml:"handler"`
		Owner       string `json:"owner" toml:"owner"`
		Description string `json:"description,omitempty" toml:"description,omitempty"`
	}

	// reportPlugin identifies a composed plugin.
	reportPlugin struct {
		Name    string `json:"name" toml:"name"`
		Version string `json:"version,omitempty" toml:"version,omitempty"`
		Path    string `json:"path,omitempty" toml:"path,omitempty"`
	}

	// compositionReport is the serializable view of a resolved composition.
	compositionReport struct {
		Plugins      []reportPlugin        `json:"plugins" toml:"plugins"`
		Integrations []ownedEntry          `json:"integrations,omitempty" toml:"integrations,omitempty"`
		Auth         *ownedEntry           `json:"auth,omitempty" toml:"auth,omitempty"`
		Permissions  map[string]string     `json:"permissions,omitempty" toml:"permissions,omitempty"`
		Roles        map[string][]string   `json:"roles,omitempty" toml:"roles,omitempty"`
		Actions      map[string]string     `json:"actions,omitempty" toml:"actions,omitempty"`
		Middleware   []ownedEntry          `json:"middleware,omitempty" toml:"middleware,omitempty"`
		Routes       map[string]ownedRoute `json:"routes,omitempty" toml:"routes,omitempty"`
		Hooks        map[string][]string   `json:"hooks,omitempty" toml:"hooks,omitempty"`
	}
)

func runInspect(cmd *cobra.Command, args []string) error {
	if inspectFormat != "text" && inspectFormat != "json" && inspectFormat != "toml" {
		return fmt.Errorf("unknown format %q (must be text, json, or toml)", inspectFormat)
	}

	result := discoverManifests(args)
	renderDiagnostics(cmd.ErrOrStderr(), result.Diagnostics)
	renderDiagnosticCards(cmd.ErrOrStderr(), result.Diagnostics)

	parsed := result.Parsed()
	if len(parsed) == 0 {
		renderIssueCard(cmd.ErrOrStderr(), issue.ManifestNotFoundId)
		return &ExitError{Code: 1, Err: errors.New("no plugin manifests found")}
	}

	// Resolve first so a conflicting composition is reported instead of a
	// misleading ownership table.
	if _, err := resolve.Resolve(result.Plugins()); err != nil {
		var conflict *resolve.ConflictError
		if errors.As(err, &conflict) {
			fmt.Fprintln(cmd.ErrOrStderr(), ErrorStyle.Render("Composition failed: ")+conflict.Error())
			renderIssueCard(cmd.ErrOrStderr(), issue.PluginConflictId)
		}
		return &ExitError{Code: 1, Err: err}
	}

	report := buildReport(result)

	switch inspectFormat {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "toml":
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(report)
	default:
		renderReportText(cmd.OutOrStdout(), report)
		return nil
	}
}

// buildReport derives owner mappings from the parsed manifests in composition
// order. The composition has already resolved without conflict, so every
// exclusive key appears in exactly one manifest.
func buildReport(result *discovery.Result) *compositionReport {
	report := &compositionReport{
		Permissions: map[string]string{},
		Roles:       map[string][]string{},
		Actions:     map[string]string{},
		Routes:      map[string]ownedRoute{},
		Hooks:       map[string][]string{},
	}

	for _, dm := range result.Manifests {
		if dm.Error != nil || dm.Manifest == nil {
			continue
		}
		m := dm.Manifest
		report.Plugins = append(report.Plugins, reportPlugin{
			Name:    m.Name,
			Version: m.Version,
			Path:    dm.Path,
		})

		for _, integration := range m.Integrations {
			report.Integrations = append(report.Integrations, ownedEntry{Name: integration, Owner: m.Name})
		}
		if m.Auth != nil {
			report.Auth = &ownedEntry{Name: m.Auth.Provider, Owner: m.Name}
		}
		for slug := range m.Permissions {
			report.Permissions[slug] = m.Name
		}
		for role, grants := range m.Roles {
			merged := report.Roles[role]
			for _, grant := range grants {
				if !slices.Contains(merged, grant) {
					merged = append(merged, grant)
				}
			}
			report.Roles[role] = merged
		}
		for action := range m.Actions {
			report.Actions[action] = m.Name
		}
		for _, mw := range m.Middleware {
			report.Middleware = append(report.Middleware, ownedEntry{Name: mw, Owner: m.Name})
		}
		for key, route := range m.Routes {
			report.Routes[key] = ownedRoute{
				Handler:     route.Handler,
				Owner:       m.Name,
				Description: route.Description,
			}
		}
		for phase, set := range map[string]bool{
			"onInit":     m.Hooks.OnInit,
			"onRequest":  m.Hooks.OnRequest,
			"onError":    m.Hooks.OnError,
			"onShutdown": m.Hooks.OnShutdown,
		} {
			if set {
				report.Hooks[phase] = append(report.Hooks[phase], m.Name)
			}
		}
	}

	// Hook contributor lists come from map iteration above; restore
	// composition order.
	order := make(map[string]int, len(report.Plugins))
	for i, p := range report.Plugins {
		order[p.Name] = i
	}
	for phase := range report.Hooks {
		sort.SliceStable(report.Hooks[phase], func(i, j int) bool {
			return order[report.Hooks[phase][i]] < order[report.Hooks[phase][j]]
		})
	}

	return report
}

func renderReportText(out io.Writer, report *compositionReport) {
	fmt.Fprintln(out, TitleStyle.Render("Resolved configuration"))

	fmt.Fprintln(out, SubtitleStyle.Render("Plugins (composition order):"))
	for _, p := range report.Plugins {
		line := "  " + PluginStyle.Render(p.Name)
		if p.Version != "" {
			line += SubtitleStyle.Render(" v" + p.Version)
		}
		fmt.Fprintln(out, line)
	}

	if len(report.Integrations) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Integrations:"))
		for _, entry := range report.Integrations {
			fmt.Fprintf(out, "  %s %s\n", entry.Name, ownerSuffix(entry.Owner))
		}
	}
	if report.Auth != nil {
		fmt.Fprintln(out, SubtitleStyle.Render("Auth provider:"))
		fmt.Fprintf(out, "  %s %s\n", report.Auth.Name, ownerSuffix(report.Auth.Owner))
	}
	if len(report.Permissions) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Permissions:"))
		for _, slug := range sortedKeys(report.Permissions) {
			fmt.Fprintf(out, "  %s %s\n", slug, ownerSuffix(report.Permissions[slug]))
		}
	}
	if len(report.Roles) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Roles:"))
		for _, role := range sortedKeys(report.Roles) {
			fmt.Fprintf(out, "  %s: %v\n", role, report.Roles[role])
		}
	}
	if len(report.Actions) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Actions:"))
		for _, action := range sortedKeys(report.Actions) {
			fmt.Fprintf(out, "  %s %s\n", action, ownerSuffix(report.Actions[action]))
		}
	}
	if len(report.Middleware) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Middleware (outermost first):"))
		for _, entry := range report.Middleware {
			fmt.Fprintf(out, "  %s %s\n", entry.Name, ownerSuffix(entry.Owner))
		}
	}
	if len(report.Routes) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Routes:"))
		for _, key := range sortedKeys(report.Routes) {
			route := report.Routes[key]
			fmt.Fprintf(out, "  %s → %s %s\n", key, route.Handler, ownerSuffix(route.Owner))
		}
	}
	if len(report.Hooks) > 0 {
		fmt.Fprintln(out, SubtitleStyle.Render("Hooks:"))
		for _, phase := range sortedKeys(report.Hooks) {
			fmt.Fprintf(out, "  %s: %v\n", phase, report.Hooks[phase])
		}
	}
}

func ownerSuffix(owner string) string {
	return VerboseStyle.Render("(" + owner + ")")
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
