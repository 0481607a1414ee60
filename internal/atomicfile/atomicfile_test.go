package atomicfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileReplacesContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "TOOLS.md")
	if err := os.WriteFile(path, []byte("old"), 0600); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := WriteFile(path, []byte("new"), 0); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "new" {
		t.Errorf("content = %q, want %q", got, "new")
	}

	st, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if st.Mode().Perm() != 0600 {
		t.Errorf("mode = %v, want 0600 preserved", st.Mode().Perm())
	}
}

func TestWriteFileAllCreatesParents(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs", "generated", "justfile")

	if err := WriteFileAll(path, []byte("default:\n"), 0644); err != nil {
		t.Fatalf("WriteFileAll() error = %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file: %v", err)
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected no temp files left behind, got %d entries", len(entries))
	}
}
