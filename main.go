// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/textutils/cmd/textutils"

func main() {
	cmd.Execute()
}
