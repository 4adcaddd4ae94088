// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"github.com/superapp-labs/superapp/pkg/plugin"
)

// ManifestName is the conventional file name for plugin manifests
// (with the ".cue" extension appended on disk).
const ManifestName = "plugin"

type (
	// AuthDecl declares that the plugin contributes the authentication
	// provider slot.
	AuthDecl struct {
		// Provider names the provider implementation (e.g., "oauth2").
		Provider string `json:"provider"`
	}

	// ActionDecl declares a callable server action by name.
	ActionDecl struct {
		// Description is optional human-readable documentation.
		Description string `json:"description,omitempty"`
	}

	// RouteDecl declares a route contribution.
	RouteDecl struct {
		// Handler names the handler function the plugin code exports.
		Handler string `json:"handler"`
		// Description is optional human-readable documentation.
		Description string `json:"description,omitempty"`
	}

	// HooksDecl flags which lifecycle hooks the plugin code provides.
	HooksDecl struct {
		OnInit     bool `json:"onInit,omitempty"`
		OnRequest  bool `json:"onRequest,omitempty"`
		OnError    bool `json:"onError,omitempty"`
		OnShutdown bool `json:"onShutdown,omitempty"`
	}

	// Manifest is the parsed content of a plugin.cue file.
	Manifest struct {
		// Name is the plugin display name.
		Name string `json:"name"`
		// Version is an optional semantic version string.
		Version string `json:"version,omitempty"`
		// Description is optional human-readable documentation.
		Description string `json:"description,omitempty"`

		// Integrations names the data-source integrations the plugin
		// contributes, in declaration order.
		Integrations []string `json:"integrations,omitempty"`

		// Auth is set when the plugin claims the authentication slot.
		Auth *AuthDecl `json:"auth,omitempty"`

		// Permissions maps permission slugs to their rules. Rules use the
		// same condition-tree shape the runtime descriptor carries.
		Permissions map[string]plugin.Rule `json:"permissions,omitempty"`

		// Roles maps role names to granted permission slugs.
		Roles map[string][]string `json:"roles,omitempty"`

		// Actions maps action names to their declarations.
		Actions map[string]ActionDecl `json:"actions,omitempty"`

		// Middleware names the middleware the plugin contributes, in
		// declaration order.
		Middleware []string `json:"middleware,omitempty"`

		// Routes maps route keys ("METHOD path") to their declarations.
		Routes map[string]RouteDecl `json:"routes,omitempty"`

		// Hooks flags the lifecycle hooks the plugin provides.
		Hooks HooksDecl `json:"hooks,omitempty"`

		// FilePath is where the manifest was loaded from (set by Parse,
		// empty for ParseBytes callers that pass no filename).
		FilePath string `json:"-"`
	}
)

// ContributionCount returns how many individual contributions the manifest
// declares across all categories. Used by listing output.
func (m *Manifest) ContributionCount() int {
	n := len(m.Integrations) + len(m.Permissions) + len(m.Actions) + len(m.Middleware) + len(m.Routes)
	for _, grants := range m.Roles {
		n += len(grants)
	}
	if m.Auth != nil {
		n++
	}
	for _, set := range []bool{m.Hooks.OnInit, m.Hooks.OnRequest, m.Hooks.OnError, m.Hooks.OnShutdown} {
		if set {
			n++
		}
	}
	return n
}
