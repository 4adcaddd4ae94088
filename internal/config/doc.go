// SPDX-License-Identifier: MPL-2.0

// Package config loads and validates the superapp CLI configuration.
//
// Configuration lives in config.cue under the platform config directory
// (XDG on Linux, Application Support on macOS, APPDATA on Windows) or in
// the current directory, and every value can be overridden through
// SUPERAPP_* environment variables. The file is validated against an
// embedded CUE schema before its values are merged.
package config
