// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the chef-tree command line.
//
// The root command loads the config file, builds the cookbook locator and
// the tree walker, and prints the include tree of the starting cookbook or
// of the run-list entries given as arguments.
package cmd
