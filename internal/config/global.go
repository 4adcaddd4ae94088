// SPDX-License-Identifier: MPL-2.0

package config

// configDirOverride allows tests to override the config directory.
// This is necessary because os.UserHomeDir() doesn't reliably respect
// the HOME environment variable on all platforms (e.g., macOS in CI).
var configDirOverride string

// configFilePathOverride holds the path set via the --config flag.
var configFilePathOverride string

// userPluginsDirOverride allows tests to override the user plugins directory.
var userPluginsDirOverride string

// Reset clears all overrides. Call from test cleanup to restore defaults.
func Reset() {
	configDirOverride = ""
	configFilePathOverride = ""
	userPluginsDirOverride = ""
}

// SetConfigDirOverride sets a custom config directory path, bypassing the
// platform lookup. Primarily intended for tests.
func SetConfigDirOverride(dir string) {
	configDirOverride = dir
}

// SetConfigFilePathOverride sets an explicit config file path (--config).
func SetConfigFilePathOverride(path string) {
	configFilePathOverride = path
}

// SetUserPluginsDirOverride sets a custom user plugins directory.
// Primarily intended for tests.
func SetUserPluginsDirOverride(dir string) {
	userPluginsDirOverride = dir
}
