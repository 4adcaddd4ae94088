// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"slices"

	"github.com/superapp-labs/superapp/pkg/plugin"
	"github.com/superapp-labs/superapp/pkg/types"
)

// Resolve merges plugins into one Config. Composition order is
// caller-significant: it fixes the order of integrations, middleware, and
// hooks, and decides which plugin owns a contested key.
//
// Resolution is fail-fast: the first exclusivity violation aborts the whole
// run with a *ConflictError and no partial Config is returned. Inputs are
// never mutated, so the same slice can be resolved again (and yields a
// structurally equal Config every time).
func Resolve(plugins []plugin.Plugin) (*Config, error) {
	cfg := newConfig()

	// authOwner remembers the first contributor of the auth slot so the
	// conflict report does not need a re-scan for that kind.
	var authOwner types.PluginName

	for i := range plugins {
		p := &plugins[i]

		cfg.Integrations = append(cfg.Integrations, p.Integrations...)

		if p.Auth != nil {
			if cfg.Auth != nil {
				return nil, &ConflictError{
					Kind:   KindAuth,
					Key:    "auth",
					OwnerA: authOwner,
					OwnerB: p.Name,
				}
			}
			cfg.Auth = p.Auth
			authOwner = p.Name
		}

		for _, slug := range sortedKeys(p.Permissions) {
			if _, exists := cfg.Permissions[slug]; exists {
				return nil, conflict(plugins, KindPermission, string(slug), p.Name)
			}
			cfg.Permissions[slug] = p.Permissions[slug]
		}

		for _, role := range sortedKeys(p.Roles) {
			granted := cfg.Roles[role]
			for _, slug := range p.Roles[role] {
				if !slices.Contains(granted, slug) {
					granted = append(granted, slug)
				}
			}
			cfg.Roles[role] = granted
		}

		for _, name := range sortedKeys(p.Actions) {
			if _, exists := cfg.Actions[name]; exists {
				return nil, conflict(plugins, KindAction, string(name), p.Name)
			}
			cfg.Actions[name] = p.Actions[name]
		}

		cfg.Middleware = append(cfg.Middleware, p.Middleware...)

		for _, key := range sortedKeys(p.Routes) {
			if _, exists := cfg.Routes[key]; exists {
				return nil, conflict(plugins, KindRoute, string(key), p.Name)
			}
			cfg.Routes[key] = p.Routes[key]
		}

		if p.OnInit != nil {
			cfg.Hooks.OnInit = append(cfg.Hooks.OnInit, p.OnInit)
		}
		if p.OnRequest != nil {
			cfg.Hooks.OnRequest = append(cfg.Hooks.OnRequest, p.OnRequest)
		}
		if p.OnError != nil {
			cfg.Hooks.OnError = append(cfg.Hooks.OnError, p.OnError)
		}
		if p.OnShutdown != nil {
			cfg.Hooks.OnShutdown = append(cfg.Hooks.OnShutdown, p.OnShutdown)
		}
	}

	return cfg, nil
}

// conflict builds the ConflictError for an exclusivity violation, tracing
// the first owner of the contested key among the plugins processed before
// the current one.
func conflict(plugins []plugin.Plugin, kind ConflictKind, key string, current types.PluginName) *ConflictError {
	return &ConflictError{
		Kind:   kind,
		Key:    key,
		OwnerA: firstOwner(plugins, kind, key, current),
		OwnerB: current,
	}
}

// sortedKeys returns the map's keys in sorted order. Go map iteration order
// is randomized; sorting keeps conflict selection deterministic when a
// single plugin carries more than one colliding key.
func sortedKeys[K ~string, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
