// SPDX-License-Identifier: MPL-2.0

package cookbook

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/spf13/afero"
)

// MetadataFileName is the file every cookbook directory must contain.
const MetadataFileName = "metadata.rb"

var (
	// ErrMetadataNotFound is the sentinel error wrapped by MetadataNotFoundError.
	ErrMetadataNotFound = errors.New("metadata not found")

	metadataNamePattern    = regexp.MustCompile(`^\s*name\s+['"](.+?)['"]$`)
	metadataVersionPattern = regexp.MustCompile(`^\s*version\s+['"](.+?)['"]$`)
	metadataDependsPattern = regexp.MustCompile(`^\s*depends\s*\(?\s*['"](.+?)['"](?:,\s*['"](.+?)['"])?\)?\s*$`)
)

type (
	// Constraint is the version requirement attached to a depends declaration.
	// Set is false for `depends "foo"`, which accepts any version.
	Constraint struct {
		Value string
		Set   bool
	}

	// Metadata is what chef-tree extracts from a metadata.rb file.
	Metadata struct {
		// Name is the declared cookbook name. Empty when metadata.rb has no name line.
		Name string
		// Version is the declared cookbook version. Empty when absent.
		Version string
		// Depends maps a cookbook name to its declared constraint.
		Depends map[string]Constraint
	}

	// MetadataNotFoundError is returned when a directory has no readable metadata.rb.
	// It wraps ErrMetadataNotFound for errors.Is() compatibility.
	MetadataNotFoundError struct {
		Path string
		Err  error
	}
)

// Any returns a constraint that accepts every version.
func Any() Constraint { return Constraint{} }

// Exactly returns a constraint with the given requirement string.
func Exactly(value string) Constraint { return Constraint{Value: value, Set: true} }

// String returns the constraint as it appears in a tree line.
func (c Constraint) String() string {
	if !c.Set {
		return "ANY"
	}
	return c.Value
}

// Error implements the error interface for MetadataNotFoundError.
func (e *MetadataNotFoundError) Error() string {
	if e.Err != nil && !errors.Is(e.Err, fs.ErrNotExist) {
		return fmt.Sprintf("could not read metadata %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("could not read metadata %s", e.Path)
}

// Unwrap returns ErrMetadataNotFound for errors.Is() compatibility.
func (e *MetadataNotFoundError) Unwrap() error { return ErrMetadataNotFound }

// Dependency returns the constraint declared for name and whether it is declared at all.
func (m *Metadata) Dependency(name string) (Constraint, bool) {
	c, ok := m.Depends[name]
	return c, ok
}

// HasMetadata reports whether dir contains a metadata.rb regular file.
func HasMetadata(fsys afero.Fs, dir string) bool {
	info, err := fsys.Stat(filepath.Join(dir, MetadataFileName))
	return err == nil && !info.IsDir()
}

// ReadMetadata reads and parses dir/metadata.rb.
func ReadMetadata(fsys afero.Fs, dir string) (*Metadata, error) {
	path := filepath.Join(dir, MetadataFileName)
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &MetadataNotFoundError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }() // Read-only file; close error non-critical

	md, err := ParseMetadata(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return md, nil
}

// ParseMetadata scans metadata.rb content. Lines are matched independently of
// their order; the last name and version lines win and every depends line
// inserts or overwrites one entry.
func ParseMetadata(r io.Reader) (*Metadata, error) {
	md := &Metadata{Depends: make(map[string]Constraint)}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if m := metadataNamePattern.FindStringSubmatch(line); m != nil {
			md.Name = m[1]
		}
		if m := metadataVersionPattern.FindStringSubmatch(line); m != nil {
			md.Version = m[1]
		}
		if m := metadataDependsPattern.FindStringSubmatch(line); m != nil {
			if m[2] != "" {
				md.Depends[m[1]] = Exactly(m[2])
			} else {
				md.Depends[m[1]] = Any()
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return md, nil
}
