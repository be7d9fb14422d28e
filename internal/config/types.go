// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

const (
	// LogLevelDebug logs everything, including lookup details.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs every processed recipe.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs soft misses such as missing recipes or cookbooks.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs errors only.
	LogLevelError LogLevel = "error"
	// LogLevelFatal logs only conditions that abort the run.
	LogLevelFatal LogLevel = "fatal"
	// LogLevelNone disables logging.
	LogLevelNone LogLevel = "none"
)

// ErrInvalidCookbookPath is returned when a cookbook_paths entry is blank.
var ErrInvalidCookbookPath = errors.New("invalid cookbook path")

type (
	// LogLevel is a log verbosity name as accepted by --log.
	LogLevel string

	// InvalidCookbookPathError is returned when a cookbook_paths entry is blank.
	// It wraps ErrInvalidCookbookPath for errors.Is() compatibility.
	InvalidCookbookPathError struct {
		Index int
	}

	// Config holds the application configuration.
	Config struct {
		// CookbookPaths lists the directories searched for cookbooks, in order.
		CookbookPaths []string `json:"cookbook_paths" mapstructure:"cookbook_paths"`
		// LogLevel is the default log level; the --log flag overrides it.
		LogLevel LogLevel `json:"log_level" mapstructure:"log_level"`
		// NoColor disables colored tree output.
		NoColor bool `json:"no_color" mapstructure:"no_color"`
	}
)

// ParseLogLevel normalizes a level name. Unknown names map to LogLevelNone,
// which silences logging.
func ParseLogLevel(s string) LogLevel {
	switch l := LogLevel(strings.ToLower(strings.TrimSpace(s))); l {
	case LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError, LogLevelFatal:
		return l
	default:
		return LogLevelNone
	}
}

// String returns the level name.
func (l LogLevel) String() string { return string(l) }

// Error implements the error interface for InvalidCookbookPathError.
func (e *InvalidCookbookPathError) Error() string {
	return fmt.Sprintf("cookbook_paths[%d]: path must not be empty", e.Index)
}

// Unwrap returns ErrInvalidCookbookPath for errors.Is() compatibility.
func (e *InvalidCookbookPathError) Unwrap() error { return ErrInvalidCookbookPath }

// Validate checks fields the schema cannot express.
func (c *Config) Validate() error {
	var errs []error
	for i, p := range c.CookbookPaths {
		if strings.TrimSpace(p) == "" {
			errs = append(errs, &InvalidCookbookPathError{Index: i})
		}
	}
	return errors.Join(errs...)
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		CookbookPaths: []string{},
		LogLevel:      LogLevelWarn,
	}
}

// SearchPaths returns CookbookPaths with "~" expanded and relative entries
// resolved against base, the starting directory.
func (c *Config) SearchPaths(base string) []string {
	paths := make([]string, 0, len(c.CookbookPaths))
	for _, p := range c.CookbookPaths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if expanded, err := expandHome(p); err == nil {
			p = expanded
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(base, p)
		}
		paths = append(paths, filepath.Clean(p))
	}
	return paths
}
