// SPDX-License-Identifier: MPL-2.0

package main

import cmd "portrait-cli/cmd/portrait"

func main() {
	cmd.Execute()
}
