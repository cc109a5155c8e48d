// SPDX-License-Identifier: MPL-2.0

// Package main is the entry point for the relhook binary.
package main

import cmd "relhook/cmd/relhook"

func main() {
	cmd.Execute()
}
