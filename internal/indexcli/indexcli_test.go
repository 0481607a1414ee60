package indexcli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aidanlsb/shelltools/internal/config"
	"github.com/aidanlsb/shelltools/internal/testutil"
)

type runResult struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, args ...string) runResult {
	t.Helper()
	home := t.TempDir()
	env := config.Env{Home: home, ConfigHome: filepath.Join(home, ".config")}

	var stdout, stderr bytes.Buffer
	err := newApp(env, &stdout, &stderr).execute(args)
	return runResult{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func toolTree(t *testing.T) *testutil.TestTree {
	return testutil.NewTestTree(t).
		WithReadme("zeta", "zeta", "Last").
		WithReadme("apps/Alpha", "Alpha", "First").
		WithFile("apps/Alpha/bun.lock", "").
		WithReadme("apps/Alpha/node_modules/dep", "dep", "Dependency").
		WithFile("docs/README.md", "# Docs\n").
		Build()
}

func TestPrintsTableToStdout(t *testing.T) {
	tree := toolTree(t)

	res := run(t, tree.Path)
	require.NoError(t, res.err, res.stderr)

	want := "| Name | Purpose |\n" +
		"| --- | --- |\n" +
		"| [Alpha](./apps/Alpha) | First |\n" +
		"| [zeta](./zeta) | Last |\n"
	assert.Equal(t, want, res.stdout)
	assert.Contains(t, res.stderr, "Found 2 tools")
	assert.Contains(t, res.stderr, "3 READMEs checked")
	tree.AssertFileNotExists("justfile")
}

func TestWritesOutputFile(t *testing.T) {
	tree := toolTree(t)
	dest := filepath.Join(tree.Path, "docs", "TOOLS.md")

	res := run(t, tree.Path, dest)
	require.NoError(t, res.err, res.stderr)
	assert.Empty(t, res.stdout)
	assert.Contains(t, res.stderr, "Wrote "+dest)

	tree.AssertFileContains("docs/TOOLS.md", "| [Alpha](./apps/Alpha) | First |")
}

func TestWritesHTMLOutput(t *testing.T) {
	tree := toolTree(t)
	dest := filepath.Join(t.TempDir(), "tools.html")

	res := run(t, tree.Path, dest)
	require.NoError(t, res.err, res.stderr)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<table>")
	assert.Contains(t, string(data), `<a href="./zeta">zeta</a>`)
}

func TestJustWritesManifestBesideOutput(t *testing.T) {
	tree := toolTree(t)
	dest := filepath.Join(tree.Path, "TOOLS.md")

	res := run(t, tree.Path, dest, "--just")
	require.NoError(t, res.err, res.stderr)

	tree.AssertFileContains("justfile", "index:\n    tools-index . TOOLS.md --just\n")
	tree.AssertFileContains("justfile", "install-apps:\n    cd apps && bun install\n")
	tree.AssertFileNotContains("justfile", "install-zeta")
}

func TestJustWithStdoutWritesManifestIntoRoot(t *testing.T) {
	tree := toolTree(t)

	res := run(t, tree.Path, "--just")
	require.NoError(t, res.err, res.stderr)
	assert.True(t, strings.HasPrefix(res.stdout, "| Name | Purpose |"))

	tree.AssertFileContains("justfile", "list:\n    tools-index .\n")
	tree.AssertFileContains("justfile", "index:\n    tools-index . --just\n")
}

func TestManifestOptionsAreRelativeToManifestDir(t *testing.T) {
	opts := manifestOptions("/repo/tools", "/repo/docs/TOOLS.md", "/repo/docs")
	assert.Equal(t, "../tools", opts.RootDir)
	assert.Equal(t, "TOOLS.md", opts.OutputFile)

	opts = manifestOptions("/repo", "", "/repo")
	assert.Equal(t, ".", opts.RootDir)
	assert.Empty(t, opts.OutputFile)
}

func TestPrettyRendersForTerminal(t *testing.T) {
	tree := toolTree(t)

	res := run(t, tree.Path, "--pretty")
	require.NoError(t, res.err, res.stderr)
	assert.NotContains(t, res.stdout, "| --- |")
	assert.NotContains(t, res.stdout, "\x1b[")
	assert.Contains(t, res.stdout, "Alpha")
	assert.Contains(t, res.stdout, "./apps/Alpha")
}

func TestMissingDirectoryArgument(t *testing.T) {
	res := run(t)
	require.ErrorIs(t, res.err, errMissingDirectory)
	assert.Contains(t, res.stderr, "missing required argument <directory>")
	assert.Contains(t, res.stderr, "Usage:")
}

func TestNonexistentDirectory(t *testing.T) {
	res := run(t, filepath.Join(t.TempDir(), "absent"))
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "cannot scan")
	assert.NotContains(t, res.stderr, "Usage:")
}

func TestTooManyArguments(t *testing.T) {
	res := run(t, "a", "b", "c")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Usage:")
}

func TestConfigSkipDirs(t *testing.T) {
	tree := toolTree(t)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[index]\nskip_dirs = [\"node_modules\", \"apps\"]\n"), 0644))

	res := run(t, tree.Path, "--config", cfgPath)
	require.NoError(t, res.err, res.stderr)
	assert.NotContains(t, res.stdout, "Alpha")
	assert.Contains(t, res.stdout, "zeta")
}
