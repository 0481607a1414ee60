// Package paths provides canonical helpers for the filesystem paths the tools
// work with:
// - user-supplied directory arguments (tilde expansion, absolute + clean form)
// - recorded working directories (exact vs. nested matching, prefix remapping)
// - scan-relative paths (dependency-directory segment checks)
package paths

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrNoHome is returned when a "~" path needs expanding but no home directory is known.
var ErrNoHome = errors.New("cannot determine home directory")

// ExpandHome expands a leading "~" or "~/" using home.
//
// Paths that do not start with "~" are returned unchanged. "~user" forms are
// not supported and are returned unchanged as well.
func ExpandHome(p, home string) (string, error) {
	if p != "~" && !strings.HasPrefix(p, "~/") && !strings.HasPrefix(p, `~\`) {
		return p, nil
	}
	if home == "" {
		return "", fmt.Errorf("expand %q: %w", p, ErrNoHome)
	}
	if p == "~" {
		return home, nil
	}
	return filepath.Join(home, p[2:]), nil
}

// Normalize expands "~" and resolves p to an absolute, cleaned path.
//
// Symlinks are not resolved: destination directories usually do not exist yet,
// and recorded working directories are stored as the shell saw them.
func Normalize(p, home string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", errors.New("path cannot be empty")
	}

	expanded, err := ExpandHome(p, home)
	if err != nil {
		return "", err
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve absolute path: %w", err)
	}
	return abs, nil
}

// DirPrefix returns the string every path nested under dir starts with.
//
// Examples:
// - "/a/b" -> "/a/b/"
// - "/"    -> "/"
func DirPrefix(dir string) string {
	if strings.HasSuffix(dir, "/") {
		return dir
	}
	return dir + "/"
}

// IsWithin reports whether cwd is dir itself or nested under it.
// The comparison is literal: "/a/bc" is not within "/a/b".
func IsWithin(cwd, dir string) bool {
	return cwd == dir || strings.HasPrefix(cwd, DirPrefix(dir))
}

// Remap rewrites cwd from the from-root to the to-root.
//
// An exact match maps to `to` verbatim. A nested path keeps everything after
// the from-root, so "/a/b/sub" moved from "/a/b" to "/x/y" becomes "/x/y/sub".
// Paths outside from are returned unchanged.
func Remap(cwd, from, to string) string {
	if cwd == from {
		return to
	}
	if !IsWithin(cwd, from) {
		return cwd
	}
	return DirPrefix(to) + cwd[len(DirPrefix(from)):]
}

// HasSegment reports whether any "/"-separated component of rel equals one of names.
func HasSegment(rel string, names ...string) bool {
	if len(names) == 0 {
		return false
	}
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		for _, name := range names {
			if part == name {
				return true
			}
		}
	}
	return false
}

// TopSegment returns the first component of a "/"-separated relative path.
// "." and "" yield "".
func TopSegment(rel string) string {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	rel = strings.Trim(rel, "/")
	if rel == "" || rel == "." {
		return ""
	}
	if i := strings.Index(rel, "/"); i >= 0 {
		return rel[:i]
	}
	return rel
}
