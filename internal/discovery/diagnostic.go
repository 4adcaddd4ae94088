// SPDX-License-Identifier: MPL-2.0

package discovery

const (
	// SeverityWarning indicates a recoverable discovery warning.
	SeverityWarning Severity = "warning"
	// SeverityError indicates a non-fatal discovery error diagnostic.
	SeverityError Severity = "error"
)

// Diagnostic codes emitted by this package.
const (
	// CodeManifestParseFailed flags a manifest that could not be parsed
	// and was skipped.
	CodeManifestParseFailed = "manifest_parse_failed"
	// CodeDuplicatePluginName flags two manifests sharing a display name,
	// which degrades conflict ownership diagnostics.
	CodeDuplicatePluginName = "duplicate_plugin_name"
	// CodeUserDirUnavailable flags an unresolvable user plugin directory.
	CodeUserDirUnavailable = "user_dir_unavailable"
)

type (
	// Severity represents discovery diagnostic severity.
	Severity string

	// Diagnostic represents a structured discovery diagnostic that is
	// returned to callers (rather than written to stderr) for consistent
	// rendering policy.
	Diagnostic struct {
		// Severity is the diagnostic level (warning or error).
		Severity Severity
		// Code is a machine-readable identifier.
		Code string
		// Message is the human-readable description.
		Message string
		// Path is the file path associated with this diagnostic (optional).
		Path string
		// Cause is the underlying error (optional, for programmatic inspection).
		Cause error
	}

	// Result bundles the ordered discovered manifests with the diagnostics
	// produced while loading them. Diagnostics include parse failures and
	// duplicate-name warnings; they never abort discovery.
	Result struct {
		Manifests   []*DiscoveredManifest
		Diagnostics []Diagnostic
	}
)
