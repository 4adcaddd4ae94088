// SPDX-License-Identifier: MPL-2.0

// superapp composes an application from plugin manifests.
package main

import cmd "github.com/superapp-labs/superapp/cmd/superapp"

func main() {
	cmd.Execute()
}
