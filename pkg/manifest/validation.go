// SPDX-License-Identifier: MPL-2.0

package manifest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/superapp-labs/superapp/pkg/types"
)

type (
	// ValidationError represents a single issue found while validating a
	// parsed manifest.
	ValidationError struct {
		// Field is the manifest field path (e.g., `routes["get /x"]`).
		Field string
		// Message is the human-readable error message.
		Message string
	}

	// ValidationErrors is a collection of validation errors that implements
	// the error interface, so a validation pass can report every issue at
	// once.
	ValidationErrors []ValidationError
)

// Error implements the error interface for ValidationError.
func (e ValidationError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Error implements the error interface by joining all messages.
func (errs ValidationErrors) Error() string {
	switch len(errs) {
	case 0:
		return ""
	case 1:
		return errs[0].Error()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "manifest validation failed with %d errors:", len(errs))
	for _, err := range errs {
		b.WriteString("\n  - ")
		b.WriteString(err.Error())
	}
	return b.String()
}

// Validate checks the manifest's key conventions: the plugin name, every
// permission slug, role name, granted slug, action name, and route key.
// Structural typing is already guaranteed by the CUE schema. All violations
// are collected; an empty result means the manifest is valid.
func (m *Manifest) Validate() ValidationErrors {
	var errs ValidationErrors

	if ok, verrs := types.PluginName(m.Name).IsValid(); !ok {
		errs = appendIssues(errs, "name", verrs)
	}

	for _, slug := range sortedStrings(m.Permissions) {
		if ok, verrs := types.PermissionSlug(slug).IsValid(); !ok {
			errs = appendIssues(errs, fmt.Sprintf("permissions[%q]", slug), verrs)
		}
	}

	for _, role := range sortedStrings(m.Roles) {
		if ok, verrs := types.RoleName(role).IsValid(); !ok {
			errs = appendIssues(errs, fmt.Sprintf("roles[%q]", role), verrs)
		}
		for i, slug := range m.Roles[role] {
			if ok, verrs := types.PermissionSlug(slug).IsValid(); !ok {
				errs = appendIssues(errs, fmt.Sprintf("roles[%q][%d]", role, i), verrs)
			}
		}
	}

	for _, name := range sortedStrings(m.Actions) {
		if ok, verrs := types.ActionName(name).IsValid(); !ok {
			errs = appendIssues(errs, fmt.Sprintf("actions[%q]", name), verrs)
		}
	}

	for _, key := range sortedStrings(m.Routes) {
		if ok, verrs := types.RouteKey(key).IsValid(); !ok {
			errs = appendIssues(errs, fmt.Sprintf("routes[%q]", key), verrs)
		}
	}

	return errs
}

func appendIssues(errs ValidationErrors, field string, issues []error) ValidationErrors {
	for _, err := range issues {
		errs = append(errs, ValidationError{Field: field, Message: err.Error()})
	}
	return errs
}

// sortedStrings returns the map's keys sorted, for stable validation output.
func sortedStrings[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
