package paths

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	tests := []struct {
		name string
		in   string
		home string
		want string
	}{
		{name: "bare tilde", in: "~", home: "/home/u", want: "/home/u"},
		{name: "tilde slash", in: "~/code/app", home: "/home/u", want: "/home/u/code/app"},
		{name: "absolute untouched", in: "/srv/app", home: "/home/u", want: "/srv/app"},
		{name: "relative untouched", in: "code/app", home: "", want: "code/app"},
		{name: "tilde user untouched", in: "~other/x", home: "", want: "~other/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandHome(tt.in, tt.home)
			if err != nil {
				t.Fatalf("ExpandHome(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExpandHomeWithoutHome(t *testing.T) {
	_, err := ExpandHome("~/x", "")
	if !errors.Is(err, ErrNoHome) {
		t.Fatalf("expected ErrNoHome, got %v", err)
	}
}

func TestNormalize(t *testing.T) {
	got, err := Normalize("~/a/../b/", "/home/u")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if got != "/home/u/b" {
		t.Errorf("Normalize() = %q, want %q", got, "/home/u/b")
	}

	rel, err := Normalize("sub", "")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if !filepath.IsAbs(rel) {
		t.Errorf("expected absolute path, got %q", rel)
	}

	if _, err := Normalize("  ", "/home/u"); err == nil {
		t.Error("expected error for empty path")
	}
}

func TestIsWithin(t *testing.T) {
	tests := []struct {
		cwd, dir string
		want     bool
	}{
		{"/a/b", "/a/b", true},
		{"/a/b/c", "/a/b", true},
		{"/a/bc", "/a/b", false},
		{"/a", "/a/b", false},
		{"/anything", "/", true},
	}
	for _, tt := range tests {
		if got := IsWithin(tt.cwd, tt.dir); got != tt.want {
			t.Errorf("IsWithin(%q, %q) = %v, want %v", tt.cwd, tt.dir, got, tt.want)
		}
	}
}

func TestRemap(t *testing.T) {
	tests := []struct {
		name          string
		cwd, from, to string
		want          string
	}{
		{name: "exact", cwd: "/a/b", from: "/a/b", to: "/x/y", want: "/x/y"},
		{name: "nested", cwd: "/a/b/sub", from: "/a/b", to: "/x/y", want: "/x/y/sub"},
		{name: "deep", cwd: "/a/b/sub/deeper", from: "/a/b", to: "/x", want: "/x/sub/deeper"},
		{name: "sibling untouched", cwd: "/a/bc", from: "/a/b", to: "/x", want: "/a/bc"},
		{name: "to root", cwd: "/a/b/sub", from: "/a/b", to: "/", want: "/sub"},
		{name: "from root", cwd: "/etc", from: "/", to: "/chroot", want: "/chroot/etc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remap(tt.cwd, tt.from, tt.to); got != tt.want {
				t.Errorf("Remap(%q, %q, %q) = %q, want %q", tt.cwd, tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestHasSegment(t *testing.T) {
	if !HasSegment("tools/node_modules/pkg/README.md", "node_modules") {
		t.Error("expected node_modules segment to match")
	}
	if HasSegment("tools/node_modules_backup/README.md", "node_modules") {
		t.Error("partial segment must not match")
	}
	if HasSegment("tools/README.md") {
		t.Error("no names should never match")
	}
}

func TestTopSegment(t *testing.T) {
	tests := map[string]string{
		"":            "",
		".":           "",
		"cli":         "cli",
		"cli/sub/dir": "cli",
		"./cli/sub":   "cli",
	}
	for in, want := range tests {
		if got := TopSegment(in); got != want {
			t.Errorf("TopSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
