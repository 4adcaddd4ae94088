// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidPermissionSlug is the sentinel error wrapped by InvalidPermissionSlugError.
var ErrInvalidPermissionSlug = errors.New("invalid permission slug")

type (
	// PermissionSlug identifies a single permission rule (e.g., "posts.edit").
	// Each slug may be claimed by exactly one plugin in a composition.
	// A valid slug is non-empty and contains no whitespace.
	PermissionSlug string

	// InvalidPermissionSlugError is returned when a PermissionSlug value is
	// empty or contains whitespace.
	InvalidPermissionSlugError struct {
		Value PermissionSlug
	}
)

// String returns the string representation of the PermissionSlug.
func (s PermissionSlug) String() string { return string(s) }

// IsValid returns whether the PermissionSlug is valid.
// A valid slug must be non-empty and contain no whitespace.
func (s PermissionSlug) IsValid() (bool, []error) {
	if s == "" || strings.IndexFunc(string(s), unicode.IsSpace) >= 0 {
		return false, []error{&InvalidPermissionSlugError{Value: s}}
	}
	return true, nil
}

// Error implements the error interface for InvalidPermissionSlugError.
func (e *InvalidPermissionSlugError) Error() string {
	return fmt.Sprintf("invalid permission slug %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidPermissionSlug for errors.Is() compatibility.
func (e *InvalidPermissionSlugError) Unwrap() error { return ErrInvalidPermissionSlug }
