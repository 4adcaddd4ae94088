// SPDX-License-Identifier: MPL-2.0

// Package discovery handles finding and loading plugin.cue manifests from
// the locations a superapp project composes plugins from: the project
// plugin directory, the user plugin directory (~/.superapp/plugins), and
// any configured search paths.
//
// Discovery order is composition order: it fixes which plugin owns a
// contested key when the discovered set is resolved.
package discovery
