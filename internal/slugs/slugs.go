// Package slugs turns directory and tool names into identifiers that are safe
// to use as task-runner recipe names.
package slugs

import (
	"strings"

	goslug "github.com/gosimple/slug"
)

// ComponentSlug converts a single path component to a URL-safe slug.
func ComponentSlug(s string) string {
	s = strings.TrimSpace(s)
	slugged := goslug.Make(s)
	if slugged == "" {
		slugged = strings.ToLower(strings.ReplaceAll(s, " ", "-"))
	}
	return slugged
}

// RecipeName returns "<prefix>-<slug>" for a directory name, e.g.
// RecipeName("install", "My Tool") -> "install-my-tool".
// An unsluggable name falls back to "<prefix>-tool".
func RecipeName(prefix, name string) string {
	s := strings.Trim(ComponentSlug(name), "-")
	if s == "" {
		s = "tool"
	}
	if prefix == "" {
		return s
	}
	return prefix + "-" + s
}
