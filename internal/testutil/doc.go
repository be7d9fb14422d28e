// SPDX-License-Identifier: MPL-2.0

// Package testutil provides fixture helpers shared by the chef-tree tests:
// cookbook trees on a memory filesystem, files on disk and a per-test HOME.
package testutil
