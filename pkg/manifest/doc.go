// SPDX-License-Identifier: MPL-2.0

// Package manifest defines the schema and parsing for plugin.cue manifest
// files.
//
// A manifest is the declarative, dev-time form of a plugin descriptor:
// handlers, actions, middleware, and hooks are code, so a manifest declares
// their names and shapes rather than the callables themselves. That is
// enough for the superapp CLI to compose a plugin set with pkg/resolve and
// report ownership conflicts before the host runtime ever boots.
package manifest
