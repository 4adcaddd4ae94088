// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/superapp-labs/superapp/pkg/manifest"
	"github.com/superapp-labs/superapp/pkg/types"
)

var (
	initForce    bool
	initTemplate string

	// initCmd scaffolds a new plugin manifest
	initCmd = &cobra.Command{
		Use:   "init <name>",
		Short: "Scaffold a new plugin",
		Long: `Create a new plugin directory under the project plugins directory
with a starter plugin.cue manifest.

The generated manifest declares one permission, one action, and one route
as examples of the contribution categories.`,
		Args: cobra.ExactArgs(1),
		RunE: runInit,
	}
)

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing plugin.cue")
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "default", "template to use (default, minimal)")
}

func runInit(cmd *cobra.Command, args []string) error {
	name := types.PluginName(args[0])
	if ok, errs := name.IsValid(); !ok {
		return fmt.Errorf("invalid plugin name %q: %v", args[0], errs)
	}

	cfg := loadConfigOrDefault()
	dir := filepath.Join(cfg.PluginsDir, string(name))
	path := filepath.Join(dir, manifest.ManifestName+".cue")

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("file '%s' already exists. Use --force to overwrite", path)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create plugin directory: %w", err)
	}

	content := generateManifest(string(name), initTemplate)

	// Guard against a broken template before writing anything.
	if _, err := manifest.ParseBytes([]byte(content), path); err != nil {
		return fmt.Errorf("generated manifest is invalid: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	out := cmd.OutOrStdout()
	absPath, _ := filepath.Abs(path)
	fmt.Fprintf(out, "%s Created %s\n", SuccessStyle.Render("✓"), absPath)
	fmt.Fprintln(out)
	fmt.Fprintln(out, SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(out, "  1. Edit the plugin.cue to declare your contributions")
	fmt.Fprintln(out, "  2. Run 'superapp check' to validate the composition")
	fmt.Fprintln(out, "  3. Run 'superapp inspect' to see who owns what")

	return nil
}

func generateManifest(name, template string) string {
	if template == "minimal" {
		return fmt.Sprintf(`name:    %q
version: "0.1.0"
`, name)
	}

	return fmt.Sprintf(`name:        %q
version:     "0.1.0"
description: "TODO: describe the %s plugin"

permissions: {
	"%s.read": {
		description: "Read %s data"
	}
}

roles: {
	viewer: ["%s.read"]
}

actions: {
	ping: {description: "Health probe action"}
}

routes: {
	"GET /%s": {handler: "index"}
}
`, name, name, name, name, name, name)
}
