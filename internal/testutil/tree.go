// Package testutil provides reusable test fixtures: directory trees of README
// files and Atuin-schema history databases.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestTree represents a temporary directory tree for scanner tests.
type TestTree struct {
	Path  string
	t     *testing.T
	files map[string]string
}

// NewTestTree creates a new tree builder.
// Call Build() to create the actual directory.
func NewTestTree(t *testing.T) *TestTree {
	t.Helper()
	return &TestTree{
		t:     t,
		files: make(map[string]string),
	}
}

// WithFile adds a file to the tree.
// The path is relative to the tree root.
func (tr *TestTree) WithFile(path, content string) *TestTree {
	tr.files[path] = content
	return tr
}

// WithReadme adds dir/README.md with name/purpose front matter.
// Empty values are left out of the front matter.
func (tr *TestTree) WithReadme(dir, name, purpose string) *TestTree {
	var sb strings.Builder
	sb.WriteString("---\n")
	if name != "" {
		fmt.Fprintf(&sb, "name: %s\n", name)
	}
	if purpose != "" {
		fmt.Fprintf(&sb, "purpose: %s\n", purpose)
	}
	sb.WriteString("---\n\n# ")
	sb.WriteString(name)
	sb.WriteString("\n")
	return tr.WithFile(filepath.Join(dir, "README.md"), sb.String())
}

// Build creates the directory and all configured files.
// Returns the TestTree for method chaining.
func (tr *TestTree) Build() *TestTree {
	tr.t.Helper()

	tr.Path = tr.t.TempDir()
	for path, content := range tr.files {
		tr.writeFile(path, content)
	}
	return tr
}

// writeFile writes a file, creating directories as needed.
func (tr *TestTree) writeFile(relPath, content string) {
	tr.t.Helper()
	fullPath := filepath.Join(tr.Path, relPath)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		tr.t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
		tr.t.Fatalf("failed to write file %s: %v", relPath, err)
	}
}

// ReadFile reads a file relative to the tree root.
func (tr *TestTree) ReadFile(relPath string) string {
	tr.t.Helper()
	data, err := os.ReadFile(filepath.Join(tr.Path, relPath))
	if err != nil {
		tr.t.Fatalf("failed to read file %s: %v", relPath, err)
	}
	return string(data)
}
