// SPDX-License-Identifier: MPL-2.0

package discovery_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/superapp-labs/superapp/internal/config"
	"github.com/superapp-labs/superapp/internal/discovery"
	"github.com/superapp-labs/superapp/internal/issue"
)

// Cannot run in parallel: discovery resolves the user plugin directory
// through package-level config overrides.

func writePlugin(t *testing.T, root, dirName, name string) string {
	t.Helper()

	dir := filepath.Join(root, dirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll(%q) returned error: %v", dir, err)
	}
	path := filepath.Join(dir, "plugin.cue")
	data := fmt.Sprintf("name: %q\nversion: \"1.0.0\"\n", name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile(%q) returned error: %v", path, err)
	}
	return path
}

func emptyUserDir(t *testing.T) {
	t.Helper()

	config.SetUserPluginsDirOverride(t.TempDir())
	t.Cleanup(config.Reset)
}

func TestDiscovery_LoadAll_Order(t *testing.T) {
	emptyUserDir(t)

	projectDir := t.TempDir()
	searchDir := t.TempDir()
	writePlugin(t, projectDir, "bravo", "bravo")
	writePlugin(t, projectDir, "alpha", "alpha")
	writePlugin(t, searchDir, "zulu", "zulu")

	d := discovery.New(&config.Config{
		PluginsDir:  projectDir,
		SearchPaths: []string{searchDir},
	})
	result := d.LoadAll()

	if len(result.Diagnostics) != 0 {
		t.Fatalf("LoadAll() produced diagnostics: %+v", result.Diagnostics)
	}

	// Project plugins come first, lexically ordered, then search paths.
	var names []string
	for _, m := range result.Parsed() {
		names = append(names, m.Name)
	}
	want := []string{"alpha", "bravo", "zulu"}
	if len(names) != len(want) {
		t.Fatalf("LoadAll() parsed %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("LoadAll() order[%d] = %q, want %q", i, names[i], want[i])
		}
	}

	if src := result.Manifests[0].Source; src != discovery.SourceProjectDir {
		t.Errorf("LoadAll() first source = %v, want project plugins", src)
	}
	if src := result.Manifests[2].Source; src != discovery.SourceConfigPath {
		t.Errorf("LoadAll() last source = %v, want configured search path", src)
	}
}

func TestDiscovery_LoadAll_UserDir(t *testing.T) {
	userDir := t.TempDir()
	config.SetUserPluginsDirOverride(userDir)
	t.Cleanup(config.Reset)
	writePlugin(t, userDir, "notes", "notes")

	d := discovery.New(&config.Config{PluginsDir: filepath.Join(t.TempDir(), "missing")})
	result := d.LoadAll()

	parsed := result.Parsed()
	if len(parsed) != 1 || parsed[0].Name != "notes" {
		t.Fatalf("LoadAll() parsed %d manifests, want the user-dir plugin", len(parsed))
	}
	if result.Manifests[0].Source != discovery.SourceUserDir {
		t.Errorf("LoadAll() source = %v, want user plugins", result.Manifests[0].Source)
	}
}

func TestDiscovery_LoadAll_ParseFailure(t *testing.T) {
	emptyUserDir(t)

	projectDir := t.TempDir()
	writePlugin(t, projectDir, "good", "good")
	badPath := writePlugin(t, projectDir, "bad", "bad")
	if err := os.WriteFile(badPath, []byte(`name: 42`), 0o644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	d := discovery.New(&config.Config{PluginsDir: projectDir})
	result := d.LoadAll()

	parsed := result.Parsed()
	if len(parsed) != 1 || parsed[0].Name != "good" {
		t.Fatalf("LoadAll() parsed %d manifests, want only the valid one", len(parsed))
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("LoadAll() produced %d diagnostics, want 1: %+v", len(result.Diagnostics), result.Diagnostics)
	}
	diag := result.Diagnostics[0]
	if diag.Severity != discovery.SeverityError || diag.Code != discovery.CodeManifestParseFailed {
		t.Errorf("LoadAll() diagnostic = %+v, want manifest parse error", diag)
	}
	if diag.Path != badPath {
		t.Errorf("LoadAll() diagnostic path = %q, want %q", diag.Path, badPath)
	}

	// The diagnostic cause (and the manifest's Error) carry operation
	// context and suggestions for the CLI to format.
	var ae *issue.ActionableError
	if !errors.As(diag.Cause, &ae) {
		t.Fatalf("LoadAll() diagnostic cause type = %T, want ActionableError in chain", diag.Cause)
	}
	if ae.Resource != badPath || !ae.HasSuggestions() {
		t.Errorf("LoadAll() wrapped cause = %+v, want resource %q with suggestions", ae, badPath)
	}
	for _, dm := range result.Manifests {
		if dm.Path == badPath && !errors.As(dm.Error, &ae) {
			t.Errorf("LoadAll() manifest error type = %T, want ActionableError in chain", dm.Error)
		}
	}
}

func TestDiscovery_LoadAll_DuplicateNames(t *testing.T) {
	emptyUserDir(t)

	projectDir := t.TempDir()
	writePlugin(t, projectDir, "first", "twin")
	writePlugin(t, projectDir, "second", "twin")

	d := discovery.New(&config.Config{PluginsDir: projectDir})
	result := d.LoadAll()

	if len(result.Parsed()) != 2 {
		t.Fatalf("LoadAll() parsed %d manifests, want both twins", len(result.Parsed()))
	}
	if len(result.Diagnostics) != 1 {
		t.Fatalf("LoadAll() produced %d diagnostics, want 1 duplicate warning", len(result.Diagnostics))
	}
	diag := result.Diagnostics[0]
	if diag.Severity != discovery.SeverityWarning || diag.Code != discovery.CodeDuplicatePluginName {
		t.Errorf("LoadAll() diagnostic = %+v, want duplicate-name warning", diag)
	}
}

func TestDiscovery_LoadDirs(t *testing.T) {
	emptyUserDir(t)

	dirA := t.TempDir()
	dirB := t.TempDir()
	writePlugin(t, dirA, "crm", "crm")
	writePlugin(t, dirB, "billing", "billing")

	d := discovery.New(config.DefaultConfig())
	result := d.LoadDirs([]string{dirB, dirA})

	var names []string
	for _, m := range result.Parsed() {
		names = append(names, m.Name)
	}
	// Explicit dirs keep the caller's order.
	if len(names) != 2 || names[0] != "billing" || names[1] != "crm" {
		t.Fatalf("LoadDirs() composition order = %v, want [billing crm]", names)
	}
	if result.Manifests[0].Source != discovery.SourceExplicit {
		t.Errorf("LoadDirs() source = %v, want command line", result.Manifests[0].Source)
	}
}

func TestDiscovery_LoadDirs_DirectManifest(t *testing.T) {
	emptyUserDir(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "plugin.cue")
	if err := os.WriteFile(path, []byte("name: \"solo\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile() returned error: %v", err)
	}

	d := discovery.New(config.DefaultConfig())
	result := d.LoadDirs([]string{dir})

	parsed := result.Parsed()
	if len(parsed) != 1 || parsed[0].Name != "solo" {
		t.Fatalf("LoadDirs() parsed %v, want a single plugin named solo", parsed)
	}
}

func TestDiscovery_Plugins(t *testing.T) {
	emptyUserDir(t)

	projectDir := t.TempDir()
	writePlugin(t, projectDir, "wiki", "wiki")

	d := discovery.New(&config.Config{PluginsDir: projectDir})
	plugins := d.LoadAll().Plugins()

	if len(plugins) != 1 || string(plugins[0].Name) != "wiki" {
		t.Fatalf("Plugins() = %+v, want a single descriptor named wiki", plugins)
	}
}
