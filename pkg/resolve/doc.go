// SPDX-License-Identifier: MPL-2.0

// Package resolve merges an ordered list of plugin descriptors into the
// single configuration the superapp host runtime consumes at startup.
//
// Each contribution category has its own merge policy: integrations,
// middleware, and lifecycle hooks concatenate in composition order; roles
// merge by order-preserving union; auth, permissions, actions, and routes
// are exclusive — each key belongs to exactly one plugin, and a second
// claim aborts the whole resolution with a ConflictError naming both
// contributors.
//
// Resolution is a single synchronous pass with no I/O and no mutation of
// the input descriptors. It runs once at startup; concurrent calls with
// different plugin lists are independently safe because every call
// allocates its own accumulator.
package resolve
