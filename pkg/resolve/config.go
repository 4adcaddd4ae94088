// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"github.com/superapp-labs/superapp/pkg/plugin"
	"github.com/superapp-labs/superapp/pkg/types"
)

type (
	// Hooks holds the lifecycle callbacks collected from every plugin,
	// one ordered list per phase, in composition order.
	Hooks struct {
		OnInit     []plugin.InitHook
		OnRequest  []plugin.RequestHook
		OnError    []plugin.ErrorHook
		OnShutdown []plugin.ShutdownHook
	}

	// Config is the consolidated configuration produced by one resolution
	// run. It is fully populated by the time Resolve returns — mapping and
	// sequence fields are never nil, only Auth may be absent — and is not
	// mutated afterwards: the host runtime consumes it as a read-only
	// snapshot.
	Config struct {
		// Integrations is the concatenation of every plugin's integrations
		// in composition order, then intra-plugin declaration order.
		Integrations []plugin.Integration

		// Auth is the single authentication provider, or nil when no
		// plugin contributed one.
		Auth plugin.AuthProvider

		// Permissions maps each permission slug to its rule. Every slug is
		// traceable to exactly one plugin.
		Permissions map[types.PermissionSlug]plugin.Rule

		// Roles maps each role to the union of slugs granted to it across
		// all plugins, in first-seen order with duplicates suppressed.
		Roles map[types.RoleName][]types.PermissionSlug

		// Actions maps each action name to its implementation. Every name
		// is traceable to exactly one plugin.
		Actions map[types.ActionName]plugin.ActionFunc

		// Middleware is the concatenation of every plugin's middleware in
		// composition order; the first plugin's first entry is outermost.
		Middleware []plugin.Middleware

		// Routes maps each route key to its handler. Every key is
		// traceable to exactly one plugin.
		Routes map[types.RouteKey]plugin.RouteHandler

		// Hooks are the collected lifecycle callbacks.
		Hooks Hooks
	}
)

// newConfig returns an empty accumulator with all mapping and sequence
// fields allocated, so an empty composition still yields non-nil fields.
func newConfig() *Config {
	return &Config{
		Integrations: []plugin.Integration{},
		Permissions:  map[types.PermissionSlug]plugin.Rule{},
		Roles:        map[types.RoleName][]types.PermissionSlug{},
		Actions:      map[types.ActionName]plugin.ActionFunc{},
		Middleware:   []plugin.Middleware{},
		Routes:       map[types.RouteKey]plugin.RouteHandler{},
		Hooks: Hooks{
			OnInit:     []plugin.InitHook{},
			OnRequest:  []plugin.RequestHook{},
			OnError:    []plugin.ErrorHook{},
			OnShutdown: []plugin.ShutdownHook{},
		},
	}
}
