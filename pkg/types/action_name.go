// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrInvalidActionName is the sentinel error wrapped by InvalidActionNameError.
var ErrInvalidActionName = errors.New("invalid action name")

type (
	// ActionName identifies a callable server action (e.g., "sendInvite").
	// Each action name may be claimed by exactly one plugin in a composition.
	// A valid name is non-empty and contains no whitespace.
	ActionName string

	// InvalidActionNameError is returned when an ActionName value is empty
	// or contains whitespace.
	InvalidActionNameError struct {
		Value ActionName
	}
)

// String returns the string representation of the ActionName.
func (n ActionName) String() string { return string(n) }

// IsValid returns whether the ActionName is valid.
// A valid name must be non-empty and contain no whitespace.
func (n ActionName) IsValid() (bool, []error) {
	if n == "" || strings.IndexFunc(string(n), unicode.IsSpace) >= 0 {
		return false, []error{&InvalidActionNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidActionNameError.
func (e *InvalidActionNameError) Error() string {
	return fmt.Sprintf("invalid action name %q: must be non-empty and contain no whitespace", e.Value)
}

// Unwrap returns ErrInvalidActionName for errors.Is() compatibility.
func (e *InvalidActionNameError) Unwrap() error { return ErrInvalidActionName }
