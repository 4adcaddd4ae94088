// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for superapp.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/superapp-labs/superapp/internal/config"
	"github.com/superapp-labs/superapp/internal/issue"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "superapp",
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "superapp",
		Short: "A plugin composition engine",
		Long: TitleStyle.Render("superapp") + SubtitleStyle.Render(" - A plugin composition engine") + `

superapp composes an application from an ordered list of plugins. Each
plugin declares its contributions in a 'plugin.cue' manifest: data-source
integrations, an authentication provider, permissions, roles, server
actions, middleware, routes, and lifecycle hooks. Composition merges the
contributions and fails fast when two plugins claim the same exclusive key.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Scaffold a plugin with: superapp init <name>
  2. Declare contributions in its plugin.cue
  3. Validate the composition with: superapp check

` + SubtitleStyle.Render("Examples:") + `
  superapp plugins          List all discovered plugins
  superapp check            Compose all plugins and report conflicts
  superapp check ./extras   Compose plugins from an explicit directory
  superapp inspect          Show the resolved configuration with owners
  superapp init blog        Scaffold a new plugin named "blog"`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/superapp/config.cue)")

	// Add subcommands
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(pluginsCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(initCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig reads in config file and ENV variables if set.
func initRootConfig() {
	if cfgFile != "" {
		config.SetConfigFilePathOverride(cfgFile)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		renderIssueCard(os.Stderr, issue.ConfigLoadFailedId)
	}

	// Apply verbose from config if not set via flag
	if cfg != nil && !verbose {
		verbose = cfg.UI.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
}

// loadConfigOrDefault returns the loaded configuration, falling back to
// defaults with a warning so listing and checking stay operational.
func loadConfigOrDefault() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using defaults", "error", err)
		return config.DefaultConfig()
	}
	return cfg
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
