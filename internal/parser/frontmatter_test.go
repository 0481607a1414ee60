package parser

import "testing"

func TestParseFrontmatter(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantNil     bool
		wantName    string
		wantPurpose string
	}{
		{
			name: "basic frontmatter",
			content: `---
name: atuin-mv
purpose: Move shell history between directories
---

# atuin-mv

Some content`,
			wantName:    "atuin-mv",
			wantPurpose: "Move shell history between directories",
		},
		{
			name:    "no frontmatter",
			content: "# Just a heading\n\nSome content",
			wantNil: true,
		},
		{
			name:    "unclosed frontmatter",
			content: "---\nname: x\n\n# Heading",
			wantNil: true,
		},
		{
			name: "empty frontmatter still counts as frontmatter",
			content: `---
---

# Title`,
		},
		{
			name:        "crlf line endings",
			content:     "---\r\nname: win\r\npurpose: tool\r\n---\r\nbody",
			wantName:    "win",
			wantPurpose: "tool",
		},
		{
			name:        "numeric name",
			content:     "---\nname: 42\npurpose: answer\n---\n",
			wantName:    "42",
			wantPurpose: "answer",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, err := ParseFrontmatter(tt.content)
			if err != nil {
				t.Fatalf("ParseFrontmatter() error = %v", err)
			}
			if tt.wantNil {
				if fm != nil {
					t.Fatalf("expected nil frontmatter, got %+v", fm)
				}
				return
			}
			if fm == nil {
				t.Fatal("expected frontmatter, got nil")
			}
			if got := fm.String("name"); got != tt.wantName {
				t.Errorf("name = %q, want %q", got, tt.wantName)
			}
			if got := fm.String("purpose"); got != tt.wantPurpose {
				t.Errorf("purpose = %q, want %q", got, tt.wantPurpose)
			}
		})
	}
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	_, err := ParseFrontmatter("---\nname: [unclosed\n---\n")
	if err == nil {
		t.Fatal("expected YAML error")
	}
}
