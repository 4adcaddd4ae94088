// SPDX-License-Identifier: MPL-2.0

// Package plugin defines the descriptor shape that plugin authors hand to
// the superapp host runtime, together with the capability contracts a plugin
// can contribute: data-source integrations, an authentication provider,
// permission rules, role grants, callable server actions, request middleware,
// route handlers, and lifecycle hooks.
//
// A Plugin is a passive data bundle. Nothing in this package (or in
// pkg/resolve, which merges descriptors) ever invokes a capability — the
// host runtime owns execution. Capability contracts are therefore minimal:
// just enough for the host to identify and call them at its boundary.
package plugin
