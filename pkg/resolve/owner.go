// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"github.com/superapp-labs/superapp/pkg/plugin"
	"github.com/superapp-labs/superapp/pkg/types"
)

// HostOwner is the fallback owner reported when no plugin earlier in the
// composition claims a colliding key. Under fail-fast resolution the first
// collision is detected as it happens, so an earlier claimant always exists;
// the sentinel covers contributions seeded outside the plugin list.
const HostOwner types.PluginName = "host configuration"

// firstOwner scans plugins in composition order, stopping at (not including)
// the plugin named current, and returns the name of the first plugin whose
// contribution mapping of the given kind contains key. First-match-by-name is
// used for the cutoff, so duplicate plugin names degrade the trace, never the
// merge itself.
func firstOwner(plugins []plugin.Plugin, kind ConflictKind, key string, current types.PluginName) types.PluginName {
	for i := range plugins {
		p := &plugins[i]
		if p.Name == current {
			break
		}
		if ownsKey(p, kind, key) {
			return p.Name
		}
	}
	return HostOwner
}

// ownsKey reports whether p's contribution mapping for kind contains key.
func ownsKey(p *plugin.Plugin, kind ConflictKind, key string) bool {
	switch kind {
	case KindPermission:
		_, ok := p.Permissions[types.PermissionSlug(key)]
		return ok
	case KindAction:
		_, ok := p.Actions[types.ActionName(key)]
		return ok
	case KindRoute:
		_, ok := p.Routes[types.RouteKey(key)]
		return ok
	case KindAuth:
		return p.Auth != nil
	default:
		return false
	}
}
