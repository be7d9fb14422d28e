// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/chef-tree/chef-tree/internal/config"

	"github.com/charmbracelet/log"
)

// newLogger returns the diagnostics logger writing to w. LogLevelNone
// discards everything.
func newLogger(w io.Writer, level config.LogLevel) *log.Logger {
	if level == config.LogLevelNone {
		return log.New(io.Discard)
	}

	lvl, err := log.ParseLevel(string(level))
	if err != nil {
		lvl = log.WarnLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: config.AppName,
		Level:  lvl,
	})
}
