package toolindex

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/aidanlsb/shelltools/internal/logger"
	"github.com/aidanlsb/shelltools/internal/parser"
	"github.com/aidanlsb/shelltools/internal/paths"
)

var log *logrus.Entry

func init() {
	log = logger.WithName("toolindex")
}

// ScanOptions configures Scan.
type ScanOptions struct {
	// SkipDirs are directory names that are never descended into.
	SkipDirs []string

	// LangMarkers maps a lock-file name to the runtime tag it implies.
	LangMarkers map[string]string

	// OnReadme is called with each candidate README path before it is read.
	OnReadme func(path string)
}

// Scan walks root and returns one Tool per README.md with both a name and a
// purpose in its front matter. The result is in walk order, not sorted.
//
// READMEs under a SkipDirs segment are ignored. Unreadable files and malformed
// front matter are logged and skipped. Only a missing or unreadable root fails
// the scan.
func Scan(root string, opts ScanOptions) ([]Tool, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("cannot scan %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("cannot scan %s: not a directory", root)
	}

	var tools []Tool
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			log.WithField("path", path).WithError(err).Warn("skipping unreadable path")
			return nil
		}

		if d.IsDir() {
			if path != root && paths.HasSegment(d.Name(), opts.SkipDirs...) {
				return filepath.SkipDir
			}
			return nil
		}

		if d.Name() != ReadmeName {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil
		}
		if paths.HasSegment(rel, opts.SkipDirs...) {
			return nil
		}

		if opts.OnReadme != nil {
			opts.OnReadme(path)
		}

		tool, ok := readTool(path, rel, opts)
		if ok {
			tools = append(tools, tool)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	return tools, nil
}

func readTool(path, rel string, opts ScanOptions) (Tool, bool) {
	entry := log.WithField("path", path)

	content, err := os.ReadFile(path)
	if err != nil {
		entry.WithError(err).Warn("skipping unreadable README")
		return Tool{}, false
	}

	fm, err := parser.ParseFrontmatter(string(content))
	if err != nil {
		entry.WithError(err).Warn("skipping README with invalid front matter")
		return Tool{}, false
	}

	name, purpose := fm.String("name"), fm.String("purpose")
	if name == "" || purpose == "" {
		entry.Debug("README has no name/purpose front matter")
		return Tool{}, false
	}

	dir := filepath.ToSlash(filepath.Dir(rel))
	link := "."
	if dir != "." {
		link = "./" + dir
	}

	return Tool{
		Name:    name,
		Purpose: purpose,
		Link:    link,
		Path:    path,
		Dir:     dir,
		Lang:    detectLang(filepath.Dir(path), opts.LangMarkers),
	}, true
}

// detectLang returns the tag of the first marker file (by name) present in dir.
func detectLang(dir string, markers map[string]string) string {
	names := make([]string, 0, len(markers))
	for name := range markers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return markers[name]
		}
	}
	return ""
}
