// Package parser extracts YAML front matter from markdown documents.
package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Frontmatter represents parsed frontmatter data.
type Frontmatter struct {
	// Fields are all top-level keys.
	Fields map[string]interface{}
}

// FrontmatterBounds returns the opening and closing frontmatter line indices.
// It only detects frontmatter when the first line is '---'.
// If frontmatter is present but unclosed, endLine is -1.
func FrontmatterBounds(lines []string) (startLine int, endLine int, ok bool) {
	if len(lines) == 0 || strings.TrimSpace(strings.TrimPrefix(lines[0], "\ufeff")) != "---" {
		return 0, -1, false
	}

	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			return 0, i, true
		}
	}

	return 0, -1, true
}

// ParseFrontmatter parses YAML frontmatter from markdown content.
// Returns nil if no frontmatter is found.
func ParseFrontmatter(content string) (*Frontmatter, error) {
	lines := strings.Split(content, "\n")

	_, endLine, ok := FrontmatterBounds(lines)
	if !ok {
		return nil, nil
	}
	if endLine == -1 {
		return nil, nil // No closing ---
	}

	frontmatterContent := strings.Join(lines[1:endLine], "\n")

	var yamlData map[string]interface{}
	if err := yaml.Unmarshal([]byte(frontmatterContent), &yamlData); err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter as YAML: %w", err)
	}

	// An empty document (or comments only) decodes into a nil map.
	if yamlData == nil {
		yamlData = map[string]interface{}{}
	}

	return &Frontmatter{Fields: yamlData}, nil
}

// String returns a trimmed string field, or "" when missing or not a scalar.
func (fm *Frontmatter) String(key string) string {
	if fm == nil {
		return ""
	}
	switch v := fm.Fields[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	case int, int64, float64, bool:
		return strings.TrimSpace(fmt.Sprint(v))
	default:
		return ""
	}
}
