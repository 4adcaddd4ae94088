// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"context"
	"fmt"

	"github.com/superapp-labs/superapp/pkg/plugin"
	"github.com/superapp-labs/superapp/pkg/types"
)

type (
	// DeclaredIntegration is the static stand-in for an integration named
	// by a manifest. It satisfies plugin.Integration so a manifest-built
	// descriptor flows through pkg/resolve unchanged.
	DeclaredIntegration string

	// DeclaredAuthProvider is the static stand-in for the auth provider
	// named by a manifest.
	DeclaredAuthProvider string
)

// IntegrationName implements plugin.Integration.
func (d DeclaredIntegration) IntegrationName() string { return string(d) }

// ProviderName implements plugin.AuthProvider.
func (d DeclaredAuthProvider) ProviderName() string { return string(d) }

// declaredHandler returns a RouteHandler stand-in for a handler that exists
// only as a name. Manifest-built descriptors are composed for conflict
// analysis, never served, so invoking the stand-in is an error.
func declaredHandler(name string) plugin.RouteHandler {
	return func(context.Context) error {
		return fmt.Errorf("handler %q is declared by a manifest and is not executable", name)
	}
}

// ToPlugin converts the manifest into a runtime descriptor with declared
// stand-ins for everything that is code in a real plugin. The result carries
// exactly the same contribution keys, so resolving a set of manifest-built
// descriptors reports exactly the conflicts the real plugin set would.
func (m *Manifest) ToPlugin() plugin.Plugin {
	p := plugin.Plugin{Name: types.PluginName(m.Name)}

	for _, name := range m.Integrations {
		p.Integrations = append(p.Integrations, DeclaredIntegration(name))
	}

	if m.Auth != nil {
		p.Auth = DeclaredAuthProvider(m.Auth.Provider)
	}

	if len(m.Permissions) > 0 {
		p.Permissions = make(map[types.PermissionSlug]plugin.Rule, len(m.Permissions))
		for slug, rule := range m.Permissions {
			p.Permissions[types.PermissionSlug(slug)] = rule
		}
	}

	if len(m.Roles) > 0 {
		p.Roles = make(map[types.RoleName][]types.PermissionSlug, len(m.Roles))
		for role, grants := range m.Roles {
			slugs := make([]types.PermissionSlug, len(grants))
			for i, g := range grants {
				slugs[i] = types.PermissionSlug(g)
			}
			p.Roles[types.RoleName(role)] = slugs
		}
	}

	if len(m.Actions) > 0 {
		p.Actions = make(map[types.ActionName]plugin.ActionFunc, len(m.Actions))
		for name := range m.Actions {
			p.Actions[types.ActionName(name)] = func(context.Context, map[string]any) (any, error) {
				return nil, fmt.Errorf("action %q is declared by a manifest and is not executable", name)
			}
		}
	}

	for range m.Middleware {
		p.Middleware = append(p.Middleware, func(next plugin.RouteHandler) plugin.RouteHandler { return next })
	}

	if len(m.Routes) > 0 {
		p.Routes = make(map[types.RouteKey]plugin.RouteHandler, len(m.Routes))
		for key, decl := range m.Routes {
			p.Routes[types.RouteKey(key)] = declaredHandler(decl.Handler)
		}
	}

	if m.Hooks.OnInit {
		p.OnInit = func(context.Context) error { return nil }
	}
	if m.Hooks.OnRequest {
		p.OnRequest = func(context.Context) error { return nil }
	}
	if m.Hooks.OnError {
		p.OnError = func(_ context.Context, err error) error { return err }
	}
	if m.Hooks.OnShutdown {
		p.OnShutdown = func(context.Context) error { return nil }
	}

	return p
}
