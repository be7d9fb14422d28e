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

const (
	// RecipesDirName is the cookbook subdirectory holding recipe files.
	RecipesDirName = "recipes"
	// DefaultRecipe is the recipe used when a run-list entry names only a cookbook.
	DefaultRecipe = "default"

	refSeparator = "::"
)

var (
	// ErrRecipeNotFound is returned when a recipe file does not exist. Recipe
	// names computed at converge time cannot be resolved statically, so callers
	// treat this as a soft miss.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrInvalidRunListEntry is returned for a run-list entry without a cookbook name.
	ErrInvalidRunListEntry = errors.New("invalid run-list entry")

	includeRecipePattern = regexp.MustCompile(`^\s*include_recipe\s*\(?\s*['"](.+?)['"]\s*\)?\s*$`)
)

// RecipeRef is a parsed include_recipe argument.
type RecipeRef struct {
	// Cookbook is empty when the reference points into the including cookbook.
	Cookbook string
	Recipe   string
}

// String returns the reference in cookbook::recipe form.
func (r RecipeRef) String() string {
	if r.Cookbook == "" {
		return r.Recipe
	}
	return r.Cookbook + refSeparator + r.Recipe
}

// ParseRecipeRef splits an include_recipe argument. "a::b" yields {a, b};
// "b" yields {"", b}, meaning recipe b of the current cookbook. Segments
// after the second are ignored: "a::b::c" yields {a, b}.
func ParseRecipeRef(ref string) RecipeRef {
	parts := strings.Split(ref, refSeparator)
	if len(parts) == 1 {
		return RecipeRef{Recipe: ref}
	}
	return RecipeRef{Cookbook: parts[0], Recipe: parts[1]}
}

// ParseRunListEntry parses a top-level entry, where a bare name is a cookbook
// and the recipe defaults to "default". An entry without a cookbook name,
// such as "" or "::x", is rejected with ErrInvalidRunListEntry.
func ParseRunListEntry(entry string) (RecipeRef, error) {
	ref := ParseRecipeRef(entry)
	if ref.Cookbook == "" {
		if !strings.Contains(entry, refSeparator) && ref.Recipe != "" {
			return RecipeRef{Cookbook: ref.Recipe, Recipe: DefaultRecipe}, nil
		}
		return RecipeRef{}, fmt.Errorf("%w: %q", ErrInvalidRunListEntry, entry)
	}
	if ref.Recipe == "" {
		ref.Recipe = DefaultRecipe
	}
	return ref, nil
}

// RecipePath returns the path of the named recipe inside a cookbook directory.
func RecipePath(dir, name string) string {
	return filepath.Join(dir, RecipesDirName, name+".rb")
}

// ReadRecipe returns the include_recipe arguments of dir/recipes/<name>.rb in
// file order, duplicates included.
func ReadRecipe(fsys afero.Fs, dir, name string) ([]string, error) {
	path := RecipePath(dir, name)
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrRecipeNotFound, path)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }() // Read-only file; close error non-critical

	includes, err := ParseRecipe(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return includes, nil
}

// ParseRecipe extracts include_recipe arguments from recipe content.
func ParseRecipe(r io.Reader) ([]string, error) {
	var includes []string

	scanner := newLineScanner(r)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if m := includeRecipePattern.FindStringSubmatch(line); m != nil {
			includes = append(includes, m[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return includes, nil
}
