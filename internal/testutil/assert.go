package testutil

import (
	"os"
	"path/filepath"
	"strings"
)

// AssertFileExists fails the test if the file does not exist.
func (tr *TestTree) AssertFileExists(relPath string) {
	tr.t.Helper()
	fullPath := filepath.Join(tr.Path, relPath)
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		tr.t.Errorf("expected file to exist: %s", relPath)
	}
}

// AssertFileNotExists fails the test if the file exists.
func (tr *TestTree) AssertFileNotExists(relPath string) {
	tr.t.Helper()
	fullPath := filepath.Join(tr.Path, relPath)
	if _, err := os.Stat(fullPath); err == nil {
		tr.t.Errorf("expected file to not exist: %s", relPath)
	}
}

// AssertFileContains fails the test if the file does not contain the substring.
func (tr *TestTree) AssertFileContains(relPath, substr string) {
	tr.t.Helper()
	content := tr.ReadFile(relPath)
	if !strings.Contains(content, substr) {
		tr.t.Errorf("expected file %s to contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertFileNotContains fails the test if the file contains the substring.
func (tr *TestTree) AssertFileNotContains(relPath, substr string) {
	tr.t.Helper()
	content := tr.ReadFile(relPath)
	if strings.Contains(content, substr) {
		tr.t.Errorf("expected file %s to not contain %q, got:\n%s", relPath, substr, content)
	}
}

// AssertCwdCount fails the test if the number of live records with exactly cwd differs.
func (h *HistoryDB) AssertCwdCount(cwd string, want int) {
	h.t.Helper()
	got := h.CountWhere("deleted_at IS NULL AND cwd = ?", cwd)
	if got != want {
		h.t.Errorf("expected %d records at %s, got %d", want, cwd, got)
	}
}

// AssertTotal fails the test if the table row count (including deleted rows) differs.
func (h *HistoryDB) AssertTotal(want int) {
	h.t.Helper()
	if got := h.CountWhere("1 = 1"); got != want {
		h.t.Errorf("expected %d total rows, got %d", want, got)
	}
}
