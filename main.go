// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/chef-tree/chef-tree/cmd/cheftree"

func main() {
	cmd.Execute()
}
