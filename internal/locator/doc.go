// SPDX-License-Identifier: MPL-2.0

// Package locator finds cookbook directories on an ordered search path.
//
// Lookup is two-phased. The fast path checks <search path>/<name> for a
// metadata.rb. When no directory carries the cookbook's name, every immediate
// child of every search path is opened and its declared metadata name is
// compared, which covers cookbooks checked out under a different directory name.
package locator
