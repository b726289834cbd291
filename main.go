// SPDX-License-Identifier: MPL-2.0

// advent is an Advent of Code puzzle runner.
package main

import cmd "advent-cli/cmd/advent"

func main() {
	cmd.Execute()
}
