// SPDX-License-Identifier: MPL-2.0

package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/superapp-labs/superapp/internal/config"
	"github.com/superapp-labs/superapp/internal/issue"
	"github.com/superapp-labs/superapp/pkg/manifest"
	"github.com/superapp-labs/superapp/pkg/plugin"
)

// Source represents where a plugin manifest was found.
type Source int

const (
	// SourceProjectDir indicates the manifest was found in the project
	// plugin directory.
	SourceProjectDir Source = iota
	// SourceUserDir indicates the manifest was found in ~/.superapp/plugins.
	SourceUserDir
	// SourceConfigPath indicates the manifest was found in a configured
	// search path.
	SourceConfigPath
	// SourceExplicit indicates the manifest path was given on the command
	// line.
	SourceExplicit
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceProjectDir:
		return "project plugins"
	case SourceUserDir:
		return "user plugins (~/.superapp/plugins)"
	case SourceConfigPath:
		return "configured search path"
	case SourceExplicit:
		return "command line"
	default:
		return "unknown"
	}
}

// DiscoveredManifest represents a found plugin.cue with its source.
type DiscoveredManifest struct {
	// Path is the absolute path to the plugin.cue file.
	Path string
	// Source indicates where the manifest was found.
	Source Source
	// Manifest is the parsed content (nil if parsing failed).
	Manifest *manifest.Manifest
	// Error contains any error that occurred during parsing.
	Error error
}

// Discovery handles finding plugin manifests.
type Discovery struct {
	cfg *config.Config
}

// New creates a new Discovery instance.
func New(cfg *config.Config) *Discovery {
	return &Discovery{cfg: cfg}
}

// DiscoverAll finds all plugin manifests from all sources in composition
// order: project plugin directory first, then the user plugin directory,
// then configured search paths. Within one source, plugins load in
// lexical directory order, which keeps composition order deterministic
// across runs.
func (d *Discovery) DiscoverAll() ([]*DiscoveredManifest, []Diagnostic) {
	var (
		found []*DiscoveredManifest
		diags []Diagnostic
	)

	found = append(found, d.discoverInDir(d.projectPluginsDir(), SourceProjectDir)...)

	userDir, err := config.UserPluginsDir()
	if err != nil {
		diags = append(diags, Diagnostic{
			Severity: SeverityWarning,
			Code:     CodeUserDirUnavailable,
			Message:  "skipping user plugins: " + err.Error(),
			Cause:    err,
		})
	} else {
		found = append(found, d.discoverInDir(userDir, SourceUserDir)...)
	}

	for _, searchPath := range d.cfg.SearchPaths {
		found = append(found, d.discoverInDir(searchPath, SourceConfigPath)...)
	}

	return found, diags
}

// projectPluginsDir resolves the plugin directory of the current project.
func (d *Discovery) projectPluginsDir() string {
	dir := d.cfg.PluginsDir
	if dir == "" {
		dir = "plugins"
	}
	return dir
}

// discoverInDir finds plugin manifests under dir. Each plugin is a
// subdirectory holding a plugin.cue; a plugin.cue directly in dir is also
// accepted so a search path can point at a single plugin.
func (d *Discovery) discoverInDir(dir string, source Source) []*DiscoveredManifest {
	var found []*DiscoveredManifest

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return found
	}

	if direct := filepath.Join(absDir, manifest.ManifestName+".cue"); fileExists(direct) {
		found = append(found, &DiscoveredManifest{Path: direct, Source: source})
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		return found
	}

	// os.ReadDir sorts entries, so composition order is stable.
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(absDir, entry.Name(), manifest.ManifestName+".cue")
		if fileExists(path) {
			found = append(found, &DiscoveredManifest{Path: path, Source: source})
		}
	}

	return found
}

// LoadAll discovers and parses all plugin manifests. Parse failures are
// reported as diagnostics and the affected manifests carry their error;
// they are excluded from Result.Manifests' parsed set but kept in the
// returned list so callers can render provenance.
func (d *Discovery) LoadAll() *Result {
	found, diags := d.DiscoverAll()
	diags = append(diags, loadManifests(found)...)
	diags = append(diags, duplicateNameDiagnostics(found)...)
	return &Result{Manifests: found, Diagnostics: diags}
}

// LoadDirs parses manifests from explicitly given plugin directories,
// bypassing configured sources. Order is preserved: it is the composition
// order the caller asked for.
func (d *Discovery) LoadDirs(dirs []string) *Result {
	var found []*DiscoveredManifest
	for _, dir := range dirs {
		found = append(found, d.discoverInDir(dir, SourceExplicit)...)
	}

	diags := loadManifests(found)
	diags = append(diags, duplicateNameDiagnostics(found)...)
	return &Result{Manifests: found, Diagnostics: diags}
}

// Plugins converts the successfully parsed manifests into descriptor form,
// preserving discovery order.
func (r *Result) Plugins() []plugin.Plugin {
	var plugins []plugin.Plugin
	for _, dm := range r.Manifests {
		if dm.Error != nil || dm.Manifest == nil {
			continue
		}
		plugins = append(plugins, dm.Manifest.ToPlugin())
	}
	return plugins
}

// Parsed returns the successfully parsed manifests in discovery order.
func (r *Result) Parsed() []*manifest.Manifest {
	var out []*manifest.Manifest
	for _, dm := range r.Manifests {
		if dm.Error == nil && dm.Manifest != nil {
			out = append(out, dm.Manifest)
		}
	}
	return out
}

// loadManifests parses every discovered manifest in place and returns a
// diagnostic for each parse failure.
func loadManifests(found []*DiscoveredManifest) []Diagnostic {
	var diags []Diagnostic
	for _, dm := range found {
		m, err := manifest.Parse(dm.Path)
		if err != nil {
			// Wrapped so CLI rendering can surface the operation and
			// remediation hints alongside the raw parse error.
			wrapped := issue.NewErrorContext().
				WithOperation("load plugin manifest").
				WithResource(dm.Path).
				WithSuggestion("Check that the file contains valid CUE syntax").
				WithSuggestion("Verify permission, action, and route keys follow the naming conventions").
				Wrap(err).
				BuildError()
			dm.Error = wrapped
			diags = append(diags, Diagnostic{
				Severity: SeverityError,
				Code:     CodeManifestParseFailed,
				Message:  fmt.Sprintf("skipping plugin manifest: %v", err),
				Path:     dm.Path,
				Cause:    wrapped,
			})
			continue
		}
		dm.Manifest = m
	}
	return diags
}

// duplicateNameDiagnostics warns when two parsed manifests share a display
// name. The merge itself stays correct, but conflict ownership tracing cuts
// off at the first plugin with the current name, so collisions involving
// twins report the "host configuration" fallback owner instead of the real
// one.
func duplicateNameDiagnostics(found []*DiscoveredManifest) []Diagnostic {
	var diags []Diagnostic
	firstPath := make(map[string]string)

	for _, dm := range found {
		if dm.Error != nil || dm.Manifest == nil {
			continue
		}
		name := dm.Manifest.Name
		if prev, exists := firstPath[name]; exists {
			diags = append(diags, Diagnostic{
				Severity: SeverityWarning,
				Code:     CodeDuplicatePluginName,
				Message:  fmt.Sprintf("plugin name %q is used by both %s and %s; conflict diagnostics will not identify the owner reliably", name, prev, dm.Path),
				Path:     dm.Path,
			})
			continue
		}
		firstPath[name] = dm.Path
	}
	return diags
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
