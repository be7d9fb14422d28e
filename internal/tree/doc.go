// SPDX-License-Identifier: MPL-2.0

// Package tree walks the include_recipe graph of local cookbooks and prints
// one colored line per visited recipe.
//
// The walk is depth-first and follows recipes in declaration order. Each line
// shows the cookbook's declared name and version plus a version label telling
// how the including cookbook constrained it:
//
//	webapp::default (1.0.0 START)
//	    apache2::default (5.0.1 ~> 5.0)
//	        apache2::mod_ssl
//	    memcached::default (ANY)
//	    firewall::default (NOT FOUND)
//
// Same-cookbook includes carry no version information. Cookbooks that cannot
// be located are printed with the raw reference and are not expanded.
package tree
