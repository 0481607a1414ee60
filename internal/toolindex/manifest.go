package toolindex

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/aidanlsb/shelltools/internal/atomicfile"
	"github.com/aidanlsb/shelltools/internal/paths"
	"github.com/aidanlsb/shelltools/internal/shellquote"
	"github.com/aidanlsb/shelltools/internal/slugs"
)

// ManifestOptions configures the generated justfile.
type ManifestOptions struct {
	// Lang selects which tools get an install recipe. Defaults to "bun".
	Lang string

	// RootDir is the scan root, relative to the manifest directory.
	RootDir string

	// OutputFile is the index output file, relative to the manifest directory.
	// Empty when the index is printed to stdout.
	OutputFile string

	// Command is the index generator binary. Defaults to "tools-index".
	Command string
}

type installRecipe struct {
	Name  string
	Dir   string
	Tools string
}

type manifestData struct {
	Command  string
	RootDir  string
	IndexCmd string
	Recipes  []installRecipe
}

var manifestTemplate = template.Must(template.New("justfile").Parse(`# Generated by {{.Command}}. Changes are overwritten on the next run.

# Show available recipes
default:
    @just --list

# Print the tools table
list:
    {{.Command}} {{.RootDir}}

# Regenerate the tools index and this file
index:
    {{.IndexCmd}}
{{- if .Recipes}}

# Install every tool
install:{{range .Recipes}} {{.Name}}{{end}}
{{- end}}
{{- range .Recipes}}

# Install {{.Tools}}
{{.Name}}:
    cd {{.Dir}} && bun install
{{- end}}
`))

// Manifest renders a justfile with one install recipe per top-level directory
// holding tools tagged opts.Lang, plus the static default/list/index recipes.
func Manifest(tools []Tool, opts ManifestOptions) (string, error) {
	if opts.Lang == "" {
		opts.Lang = "bun"
	}
	if opts.Command == "" {
		opts.Command = "tools-index"
	}
	if opts.RootDir == "" {
		opts.RootDir = "."
	}

	sorted := make([]Tool, len(tools))
	copy(sorted, tools)
	Sort(sorted)

	bySegment := map[string][]string{}
	var segments []string
	for _, t := range sorted {
		if t.Lang != opts.Lang {
			continue
		}
		seg := paths.TopSegment(t.Dir)
		if seg == "" {
			continue
		}
		if _, seen := bySegment[seg]; !seen {
			segments = append(segments, seg)
		}
		bySegment[seg] = append(bySegment[seg], t.Name)
	}
	sort.Strings(segments)

	data := manifestData{
		Command: opts.Command,
		RootDir: shellquote.QuoteIfNeeded(opts.RootDir),
	}

	index := []string{opts.Command, shellquote.QuoteIfNeeded(opts.RootDir)}
	if opts.OutputFile != "" {
		index = append(index, shellquote.QuoteIfNeeded(opts.OutputFile))
	}
	index = append(index, "--just")
	data.IndexCmd = strings.Join(index, " ")

	used := map[string]bool{}
	for _, seg := range segments {
		name := slugs.RecipeName("install", seg)
		for base, n := name, 2; used[name]; n++ {
			name = fmt.Sprintf("%s-%d", base, n)
		}
		used[name] = true

		data.Recipes = append(data.Recipes, installRecipe{
			Name:  name,
			Dir:   shellquote.QuoteIfNeeded(filepath.ToSlash(filepath.Join(opts.RootDir, seg))),
			Tools: strings.Join(bySegment[seg], ", "),
		})
	}

	var sb strings.Builder
	if err := manifestTemplate.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render manifest: %w", err)
	}
	return sb.String(), nil
}

// WriteManifest renders the manifest and writes it as outputDir/name.
// Returns the written path.
func WriteManifest(tools []Tool, outputDir, name string, opts ManifestOptions) (string, error) {
	content, err := Manifest(tools, opts)
	if err != nil {
		return "", err
	}

	dest := filepath.Join(outputDir, name)
	if err := atomicfile.WriteFileAll(dest, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write manifest %s: %w", dest, err)
	}
	return dest, nil
}
