// SPDX-License-Identifier: MPL-2.0

package types

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidRoleName is the sentinel error wrapped by InvalidRoleNameError.
var ErrInvalidRoleName = errors.New("invalid role name")

type (
	// RoleName identifies an access-control role (e.g., "editor"). Roles are
	// a union field: any number of plugins may contribute slugs to the same
	// role. A valid name is non-empty and not whitespace-only.
	RoleName string

	// InvalidRoleNameError is returned when a RoleName value is empty or
	// whitespace-only.
	InvalidRoleNameError struct {
		Value RoleName
	}
)

// String returns the string representation of the RoleName.
func (n RoleName) String() string { return string(n) }

// IsValid returns whether the RoleName is valid.
// A valid name must be non-empty and not whitespace-only.
func (n RoleName) IsValid() (bool, []error) {
	if strings.TrimSpace(string(n)) == "" {
		return false, []error{&InvalidRoleNameError{Value: n}}
	}
	return true, nil
}

// Error implements the error interface for InvalidRoleNameError.
func (e *InvalidRoleNameError) Error() string {
	return fmt.Sprintf("invalid role name %q: must be non-empty", e.Value)
}

// Unwrap returns ErrInvalidRoleName for errors.Is() compatibility.
func (e *InvalidRoleNameError) Unwrap() error { return ErrInvalidRoleName }
