// SPDX-License-Identifier: MPL-2.0

package resolve

import (
	"errors"
	"fmt"

	"github.com/superapp-labs/superapp/pkg/types"
)

// ErrConflict is the sentinel error wrapped by ConflictError.
var ErrConflict = errors.New("plugin conflict")

type (
	// ConflictKind is the contribution category an exclusivity conflict
	// occurred in.
	ConflictKind string

	// ConflictError is returned when two plugins claim the same exclusive
	// contribution key. It names both contributors so the author of a
	// plugin set can tell exactly which two plugins collided.
	ConflictError struct {
		// Kind is the contribution category.
		Kind ConflictKind
		// Key is the colliding key ("auth" for auth conflicts).
		Key string
		// OwnerA is the name of the plugin that registered the key first.
		OwnerA types.PluginName
		// OwnerB is the name of the plugin whose registration collided.
		OwnerB types.PluginName
	}
)

const (
	// KindAuth is a conflict over the single authentication provider slot.
	KindAuth ConflictKind = "auth"
	// KindPermission is a conflict over a permission slug.
	KindPermission ConflictKind = "permission"
	// KindAction is a conflict over an action name.
	KindAction ConflictKind = "action"
	// KindRoute is a conflict over a route key.
	KindRoute ConflictKind = "route"
)

// String returns the string representation of the ConflictKind.
func (k ConflictKind) String() string { return string(k) }

// Error implements the error interface.
func (e *ConflictError) Error() string {
	return fmt.Sprintf(
		"Plugin conflict: %s %q is defined by both %q and %q. Each %s must be provided by exactly one plugin.",
		e.Kind, e.Key, e.OwnerA, e.OwnerB, e.Kind)
}

// Unwrap returns ErrConflict for errors.Is() compatibility.
func (e *ConflictError) Unwrap() error { return ErrConflict }
