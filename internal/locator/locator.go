// SPDX-License-Identifier: MPL-2.0

package locator

import (
	"io"
	"path/filepath"
	"slices"

	"github.com/chef-tree/chef-tree/pkg/cookbook"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

type (
	// Strategy records which phase located a cookbook.
	Strategy int

	// Result describes a successful lookup.
	Result struct {
		// Dir is the cookbook directory.
		Dir string
		// Strategy is the phase that found it.
		Strategy Strategy
	}

	// Locator resolves cookbook names to directories. It never changes the
	// process working directory.
	Locator struct {
		fs     afero.Fs
		paths  []string
		logger *log.Logger
	}

	// Option configures a Locator.
	Option func(*Locator)
)

const (
	// StrategyDirName means <search path>/<name> held the cookbook.
	StrategyDirName Strategy = iota + 1
	// StrategyMetadataScan means a sibling directory declared the name.
	StrategyMetadataScan
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case StrategyDirName:
		return "directory name"
	case StrategyMetadataScan:
		return "metadata scan"
	default:
		return "unknown"
	}
}

// WithLogger sets the logger used for lookup diagnostics.
func WithLogger(logger *log.Logger) Option {
	return func(l *Locator) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithFs sets the filesystem the locator reads from (default: the OS filesystem).
func WithFs(fsys afero.Fs) Option {
	return func(l *Locator) {
		if fsys != nil {
			l.fs = fsys
		}
	}
}

// New creates a Locator over the given search paths, searched in order.
func New(paths []string, opts ...Option) *Locator {
	l := &Locator{
		fs:     afero.NewOsFs(),
		paths:  slices.Clone(paths),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Paths returns a copy of the configured search paths.
func (l *Locator) Paths() []string {
	return slices.Clone(l.paths)
}

// Locate returns the directory of the named cookbook.
func (l *Locator) Locate(name string) (Result, bool) {
	if name == "" {
		return Result{}, false
	}

	if dir, ok := l.byDirName(name); ok {
		return Result{Dir: dir, Strategy: StrategyDirName}, true
	}

	l.logger.Debug("Having to use aggressive search", "cookbook", name)
	if dir, ok := l.byMetadataScan(name); ok {
		return Result{Dir: dir, Strategy: StrategyMetadataScan}, true
	}

	l.logger.Warn("Could not find cookbook, assuming not local", "cookbook", name)
	return Result{}, false
}

func (l *Locator) byDirName(name string) (string, bool) {
	for _, path := range l.paths {
		l.logger.Debug("Looking for cookbook", "cookbook", name, "path", path)
		dir := filepath.Join(path, name)
		if isDir(l.fs, dir) && cookbook.HasMetadata(l.fs, dir) {
			l.logger.Debug("Found it", "cookbook", name, "dir", dir)
			return dir, true
		}
	}
	return "", false
}

func (l *Locator) byMetadataScan(name string) (string, bool) {
	for _, path := range l.paths {
		entries, err := afero.ReadDir(l.fs, path)
		if err != nil {
			l.logger.Debug("Skipping unreadable search path", "path", path, "error", err)
			continue
		}

		for _, entry := range entries {
			if !entry.IsDir() {
				continue
			}
			child := filepath.Join(path, entry.Name())
			l.logger.Debug("Looking for cookbook", "cookbook", name, "path", child)

			if !cookbook.HasMetadata(l.fs, child) {
				l.logger.Debug("Skipping directory without metadata", "path", child)
				continue
			}
			md, err := cookbook.ReadMetadata(l.fs, child)
			if err != nil {
				l.logger.Debug("Skipping unreadable metadata", "path", child, "error", err)
				continue
			}
			if md.Name == name {
				l.logger.Debug("Found it", "cookbook", name, "dir", child)
				return child, true
			}
		}
	}
	return "", false
}

func isDir(fsys afero.Fs, path string) bool {
	ok, err := afero.IsDir(fsys, path)
	return err == nil && ok
}
