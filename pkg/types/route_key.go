// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRouteKey is the sentinel error wrapped by InvalidRouteKeyError.
var ErrInvalidRouteKey = errors.New("invalid route key")

type (
	// RouteKey identifies a route in "METHOD path" convention, e.g.
	// "GET /invites" or "POST /invites/accept". Each route key may be
	// claimed by exactly one plugin in a composition.
	RouteKey string

	// InvalidRouteKeyError is returned when a RouteKey value does not
	// follow the "METHOD path" convention.
	InvalidRouteKeyError struct {
		Value  RouteKey
		Reason string
	}
)

// String returns the string representation of the RouteKey.
func (k RouteKey) String() string { return string(k) }

// Method returns the HTTP method component of the RouteKey, or "" when the
// key does not follow the "METHOD path" convention.
func (k RouteKey) Method() string {
	method, _, ok := strings.Cut(string(k), " ")
	if !ok {
		return ""
	}
	return method
}

// Path returns the path component of the RouteKey, or "" when the key does
// not follow the "METHOD path" convention.
func (k RouteKey) Path() string {
	_, path, ok := strings.Cut(string(k), " ")
	if !ok {
		return ""
	}
	return path
}

// IsValid returns whether the RouteKey is valid.
// A valid key is "METHOD path" where METHOD is non-empty uppercase ASCII
// letters and path starts with "/".
func (k RouteKey) IsValid() (bool, []error) {
	method, path, ok := strings.Cut(string(k), " ")
	if !ok {
		return false, []error{&InvalidRouteKeyError{Value: k, Reason: `must be "METHOD path" separated by a single space`}}
	}
	if method == "" {
		return false, []error{&InvalidRouteKeyError{Value: k, Reason: "method must be non-empty"}}
	}
	for _, c := range method {
		if c < 'A' || c > 'Z' {
			return false, []error{&InvalidRouteKeyError{Value: k, Reason: "method must be uppercase ASCII letters"}}
		}
	}
	if !strings.HasPrefix(path, "/") {
		return false, []error{&InvalidRouteKeyError{Value: k, Reason: `path must start with "/"`}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRouteKeyError.
func (e *InvalidRouteKeyError) Error() string {
	return fmt.Sprintf("invalid route key %q: %s", e.Value, e.Reason)
}

// Unwrap returns ErrInvalidRouteKey for errors.Is() compatibility.
func (e *InvalidRouteKeyError) Unwrap() error { return ErrInvalidRouteKey }
