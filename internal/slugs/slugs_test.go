package slugs

import "testing"

func TestComponentSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"atuin-mv", "atuin-mv"},
		{"My Awesome Tool", "my-awesome-tool"},
		{"UPPER CASE", "upper-case"},
		{"Special: Characters!", "special-characters"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ComponentSlug(tt.in); got != tt.want {
				t.Fatalf("ComponentSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRecipeName(t *testing.T) {
	tests := []struct {
		prefix, name string
		want         string
	}{
		{"install", "tools-index", "install-tools-index"},
		{"install", "Fancy CLI", "install-fancy-cli"},
		{"install", "", "install-tool"},
		{"", "ui", "ui"},
	}

	for _, tt := range tests {
		if got := RecipeName(tt.prefix, tt.name); got != tt.want {
			t.Errorf("RecipeName(%q, %q) = %q, want %q", tt.prefix, tt.name, got, tt.want)
		}
	}
}
