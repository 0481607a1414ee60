// Package indexcli implements the tools-index command line.
package indexcli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/shelltools/internal/buildinfo"
	"github.com/aidanlsb/shelltools/internal/config"
	"github.com/aidanlsb/shelltools/internal/logger"
	"github.com/aidanlsb/shelltools/internal/paths"
	"github.com/aidanlsb/shelltools/internal/toolindex"
	"github.com/aidanlsb/shelltools/internal/ui"
)

var errMissingDirectory = errors.New("missing required argument <directory>")

type app struct {
	env    config.Env
	stdout io.Writer
	stderr io.Writer

	// Flags
	just       bool
	pretty     bool
	configPath string
	verbose    bool

	started bool
}

func newApp(env config.Env, stdout, stderr io.Writer) *app {
	return &app{env: env, stdout: stdout, stderr: stderr}
}

// Execute runs tools-index with the process arguments and environment.
func Execute() error {
	return newApp(config.EnvFromOS(), os.Stdout, os.Stderr).execute(os.Args[1:])
}

func (a *app) execute(args []string) error {
	cmd := a.rootCmd()
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(a.stderr, ui.Error(err.Error()))
		if !a.started {
			fmt.Fprint(a.stderr, cmd.UsageString())
		}
		return err
	}
	return nil
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools-index <directory> [output-file]",
		Short: "Generate a Markdown index of tools from README front matter",
		Long: `tools-index walks <directory> for README.md files whose front matter sets
both name and purpose, and renders them as a Markdown table sorted by name.

The table is printed to stdout, or written to [output-file]. An output file
ending in .html gets the table rendered as HTML. Progress and diagnostics go
to stderr.

With --just, a justfile is written next to the output file (or into
<directory> when printing to stdout) with an install recipe for each
top-level directory holding bun tools.

Example front matter:
  ---
  name: fmt
  purpose: Formats the repository
  ---`,
		Args:          indexArgs,
		Version:       buildinfo.Current().String(),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          a.run,
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	f := cmd.Flags()
	f.BoolVar(&a.just, "just", false, "Also write a justfile with install recipes")
	f.BoolVar(&a.pretty, "pretty", false, "Render the table for the terminal when printing to stdout")
	f.StringVar(&a.configPath, "config", "", "Path to config file")
	f.BoolVarP(&a.verbose, "verbose", "V", false, "Log debug diagnostics to stderr")
	return cmd
}

func indexArgs(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return errMissingDirectory
	}
	return cobra.RangeArgs(1, 2)(cmd, args)
}

func (a *app) run(cmd *cobra.Command, args []string) error {
	a.started = true
	log := logger.WithName("tools-index")

	if a.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.LoadWithPath(a.configPath, a.env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	ui.ConfigureTheme(cfg.UI.Accent)

	root, err := paths.Normalize(args[0], a.env.Home)
	if err != nil {
		return err
	}
	var output string
	if len(args) == 2 {
		if output, err = paths.Normalize(args[1], a.env.Home); err != nil {
			return err
		}
	}

	progress := ui.NewProgress(a.stderr, "Scanning", 0)
	tools, err := toolindex.Scan(root, toolindex.ScanOptions{
		SkipDirs:    cfg.GetSkipDirs(),
		LangMarkers: cfg.GetLangMarkers(),
		OnReadme:    func(string) { progress.Increment() },
	})
	if err != nil {
		progress.Done()
		return err
	}
	progress.DoneWithMessage(ui.Infof("Found %s in %s (%s checked)",
		ui.Count(len(tools), "tool", "tools"), ui.FilePath(root), ui.Count(progress.Current(), "README", "READMEs")))
	log.WithField("tools", len(tools)).Debug("scan complete")

	text := toolindex.Render(tools)
	switch {
	case output != "" && strings.EqualFold(filepath.Ext(output), ".html"):
		if text, err = toolindex.RenderHTML(text); err != nil {
			return err
		}
	case output == "" && a.pretty:
		display := ui.NewDisplayContext(a.stdout)
		if text, err = ui.RenderMarkdown(text, display.TermWidth, display.IsTTY); err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}
	}

	if err := toolindex.Emit(a.stdout, text, output); err != nil {
		return err
	}
	if output != "" {
		fmt.Fprintln(a.stderr, ui.Successf("Wrote %s", ui.FilePath(output)))
	}

	if !a.just {
		return nil
	}

	outputDir := root
	if output != "" {
		outputDir = filepath.Dir(output)
	}
	manifest, err := toolindex.WriteManifest(tools, outputDir, cfg.GetManifestName(), manifestOptions(root, output, outputDir))
	if err != nil {
		return err
	}
	fmt.Fprintln(a.stderr, ui.Successf("Wrote %s", ui.FilePath(manifest)))
	return nil
}

// manifestOptions expresses root and output relative to the manifest
// directory, where just runs recipes from.
func manifestOptions(root, output, outputDir string) toolindex.ManifestOptions {
	opts := toolindex.ManifestOptions{RootDir: root, OutputFile: output}
	if rel, err := filepath.Rel(outputDir, root); err == nil {
		opts.RootDir = filepath.ToSlash(rel)
	}
	if output != "" {
		if rel, err := filepath.Rel(outputDir, output); err == nil {
			opts.OutputFile = filepath.ToSlash(rel)
		}
	}
	return opts
}
