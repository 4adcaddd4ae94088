// SPDX-License-Identifier: MPL-2.0

// Package cueschema provides shared CUE parsing utilities for packages that
// embed a CUE schema and decode user-authored files against it (manifest,
// internal/config).
//
// The flow is always the same three steps:
//
//  1. Compile the embedded schema
//  2. Compile the user data and unify it with the schema definition
//  3. Validate (concrete) and decode into a Go struct
//
// Validation failures are reformatted so every message carries the file path
// and the JSON path of the offending value, e.g.
//
//	plugin.cue: routes[0].key: value does not match pattern
package cueschema
