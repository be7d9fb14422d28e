// SPDX-License-Identifier: MPL-2.0

// Package config loads chef-tree settings from a JSON file using Viper.
//
// The file defaults to ~/.chef-tree.json and is optional. Its content is
// checked against an embedded CUE schema (config_schema.cue) before being
// merged into Viper, so type mistakes such as a string where a list of paths
// is expected are reported with the offending field.
package config
