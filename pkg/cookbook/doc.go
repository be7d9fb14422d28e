// SPDX-License-Identifier: MPL-2.0

// Package cookbook reads the parts of a Chef cookbook that chef-tree needs.
//
// A cookbook is a directory containing a metadata.rb file and, optionally, a
// recipes/ directory with one Ruby file per recipe. Neither file is evaluated:
// both are scanned line by line with a small set of patterns that only cover
// the common literal-string forms:
//
//	name "apache2"
//	version "5.0.1"
//	depends "iptables"
//	depends "logrotate", ">= 1.9.0"
//	include_recipe "apache2::mod_ssl"
//	include_recipe "service"
//
// Lines using computed arguments (string interpolation, variables) do not
// match and are skipped.
//
// # Recipe references
//
// An include_recipe argument is either "cookbook::recipe" or a bare "recipe"
// that refers to a recipe of the including cookbook. See [ParseRecipeRef] and
// [ParseRunListEntry].
package cookbook
