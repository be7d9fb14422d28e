// SPDX-License-Identifier: MPL-2.0

package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// Files maps a path to file content.
type Files map[string]string

// NewMemFs returns a memory filesystem holding files. Parent directories
// are created implicitly.
func NewMemFs(t testing.TB, files Files) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	MustWriteFiles(t, fsys, files)
	return fsys
}

// MustWriteFiles writes files into fsys, creating parent directories.
// The test fails immediately if a write fails.
func MustWriteFiles(t testing.TB, fsys afero.Fs, files Files) {
	t.Helper()
	for path, content := range files {
		if err := fsys.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := afero.WriteFile(fsys, path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// MustWriteTree writes files below dir on the OS filesystem. Paths in files
// are relative to dir.
func MustWriteTree(t testing.TB, dir string, files Files) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("failed to create directory %s: %v", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", path, err)
		}
	}
}

// MustWriteFile writes content to a fresh temp file named name and returns
// its path.
func MustWriteFile(t testing.TB, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}
