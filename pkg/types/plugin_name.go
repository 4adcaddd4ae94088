// SPDX-License-Identifier: MPL-2.0

// Package types defines cross-cutting DDD Value Types used by multiple domain
// packages (plugin, resolve, manifest). These are foundation types that carry
// semantic meaning and validation but have no domain-specific dependencies.
//
// This package is a leaf dependency: it imports only the standard library.
// Domain packages import it; it never imports domain packages.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPluginName is the sentinel error wrapped by InvalidPluginNameError.
var ErrInvalidPluginName = errors.New("invalid plugin name")

type (
	// PluginName is the display name of a plugin. It is used for conflict
	// diagnostics and listing output only; the engine does not enforce
	// uniqueness (duplicate names degrade ownership diagnostics, not merge
	// correctness). A valid name is non-empty and not whitespace-only.
	PluginName string

	// InvalidPluginNameError is returned when a PluginName value is empty
	// or whitespace-only.
	InvalidPluginNameError struct {
		Value PluginName
	}
)

// String returns the string representation of the PluginName.
func (n PluginName) String() string { return string(n) }

// IsValid returns whether the PluginName is valid.
// A valid name must be non-empty and not whitespace-only.
func (n PluginName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidPluginNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPluginNameError.
func (e *InvalidPluginNameError) Error() string {
	return fmt.Sprintf("invalid plugin name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidPluginName for errors.Is() compatibility.
func (e *InvalidPluginNameError) Unwrap() error { return ErrInvalidPluginName }
