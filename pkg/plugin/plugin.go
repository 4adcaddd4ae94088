// SPDX-License-Identifier: MPL-2.0

package plugin

import (
	"github.com/superapp-labs/superapp/pkg/types"
)

// Plugin is one independently authored contribution bundle. All fields
// except Name are optional; zero values mean "contributes nothing in this
// category".
//
// A Plugin is immutable once handed to the composition engine: the engine
// reads it but never writes to it, so the same descriptor value can be
// resolved any number of times.
type Plugin struct {
	// Name is the display name used in conflict diagnostics and listings.
	// The engine does not enforce uniqueness; duplicate names degrade
	// ownership diagnostics but not merge correctness.
	Name types.PluginName

	// Integrations are contributed in declaration order and concatenated
	// across plugins in composition order.
	Integrations []Integration

	// Auth is the authentication provider. At most one plugin per
	// composition may set it.
	Auth AuthProvider

	// Permissions maps each contributed permission slug to its rule. Each
	// slug may be claimed by exactly one plugin.
	Permissions map[types.PermissionSlug]Rule

	// Roles grants permission slugs to roles. Roles merge by
	// order-preserving union, so any number of plugins may extend the same
	// role.
	Roles map[types.RoleName][]types.PermissionSlug

	// Actions maps each contributed action name to its implementation.
	// Each name may be claimed by exactly one plugin.
	Actions map[types.ActionName]ActionFunc

	// Middleware is contributed in declaration order and concatenated
	// across plugins in composition order (outermost first).
	Middleware []Middleware

	// Routes maps each contributed route key ("METHOD path") to its
	// handler. Each key may be claimed by exactly one plugin.
	Routes map[types.RouteKey]RouteHandler

	// OnInit, OnRequest, OnError, and OnShutdown are optional lifecycle
	// hooks, collected per phase in composition order.
	OnInit     InitHook
	OnRequest  RequestHook
	OnError    ErrorHook
	OnShutdown ShutdownHook
}

// Define returns its argument unchanged. It exists so plugin authors get a
// single well-known entry point with compile-time shape checking at the call
// site:
//
//	var Blog = plugin.Define(plugin.Plugin{
//		Name: "blog",
//		Routes: map[types.RouteKey]plugin.RouteHandler{
//			"GET /posts": listPosts,
//		},
//	})
//
// No copy is made and no validation runs.
func Define(p Plugin) Plugin { return p }
