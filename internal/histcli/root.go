// Package histcli implements the atuin-mv command line.
package histcli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aidanlsb/shelltools/internal/buildinfo"
	"github.com/aidanlsb/shelltools/internal/config"
	"github.com/aidanlsb/shelltools/internal/history"
	"github.com/aidanlsb/shelltools/internal/logger"
	"github.com/aidanlsb/shelltools/internal/paths"
	"github.com/aidanlsb/shelltools/internal/ui"
)

var errMissingCommand = errors.New("missing command")

// app holds one invocation's flags, environment and resolved settings.
type app struct {
	env    config.Env
	stdout io.Writer
	stderr io.Writer

	// Global flags
	dbPathFlag string
	configPath string
	jsonOutput bool
	verbose    bool
	recursive  bool

	// Command flags
	dryRun bool

	// Resolved values
	cfg     *config.Config
	dbPath  string
	started bool

	// newID overrides generated record IDs (tests).
	newID func() string
}

func newApp(env config.Env, stdout, stderr io.Writer) *app {
	return &app{env: env, stdout: stdout, stderr: stderr}
}

// Execute runs atuin-mv with the process arguments and environment.
func Execute() error {
	return newApp(config.EnvFromOS(), os.Stdout, os.Stderr).execute(os.Args[1:])
}

func (a *app) execute(args []string) error {
	root := a.rootCmd()
	// cobra reads os.Args when given nil.
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err == nil {
		return nil
	}

	if !isReported(err) {
		fmt.Fprintln(a.stderr, ui.Error(err.Error()))
	}
	// Errors raised before any command ran are usage errors.
	if !a.started {
		fmt.Fprint(a.stderr, cmd.UsageString())
	}
	return err
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "atuin-mv",
		Short: "Move or copy Atuin shell history between directories",
		Long: `atuin-mv rewrites the working directory recorded on Atuin shell history
entries, so history follows a project when it is renamed or moved.

Only live records are touched; soft-deleted entries are ignored.

The history database is located with, in order: --db, $ATUIN_DB_PATH,
history.db_path in the config file, then $XDG_DATA_HOME/atuin/history.db
(~/.local/share/atuin/history.db when XDG_DATA_HOME is unset).`,
		Version:           buildinfo.Current().String(),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.resolve,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errMissingCommand
		},
	}
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.dbPathFlag, "db", "", "Path to the Atuin history database")
	pf.StringVar(&a.configPath, "config", "", "Path to config file")
	pf.BoolVar(&a.jsonOutput, "json", false, "Output in JSON format (for script use)")
	pf.BoolVarP(&a.verbose, "verbose", "V", false, "Log debug diagnostics to stderr")
	pf.BoolVarP(&a.recursive, "recursive", "r", false, "Also match records in subdirectories")

	root.AddCommand(a.moveCmd(), a.copyCmd(), a.listCmd(), a.countCmd())
	return root
}

// resolve loads config and locates the history database once per invocation.
func (a *app) resolve(cmd *cobra.Command, args []string) error {
	if !needsHistory(cmd) {
		return nil
	}
	a.started = true

	if a.verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.LoadWithPath(a.configPath, a.env)
	if err != nil {
		return a.fail(ErrConfigInvalid, fmt.Errorf("failed to load config: %w", err), "")
	}
	a.cfg = cfg
	ui.ConfigureTheme(cfg.UI.Accent)

	dbPath, err := config.ResolveDBPath(a.dbPathFlag, a.env, cfg)
	if err != nil {
		if errors.Is(err, paths.ErrNoHome) {
			return a.fail(ErrHomeNotFound, err, "Set HOME, or pass --db /path/to/history.db")
		}
		return a.fail(ErrInvalidPath, err, "")
	}
	a.dbPath = dbPath

	logger.WithName("atuin-mv").WithField("db", dbPath).Debug("resolved history database")
	return nil
}

// needsHistory reports whether cmd works on the history database. The bare
// root and cobra's help and completion commands do not.
func needsHistory(cmd *cobra.Command) bool {
	if !cmd.HasParent() || cmd.Name() == "help" {
		return false
	}
	if parent := cmd.Parent(); parent.HasParent() && parent.Name() == "completion" {
		return false
	}
	return true
}

// openStore opens the resolved database. Callers must Close the store.
func (a *app) openStore() (*history.Store, error) {
	store, err := history.Open(a.dbPath)
	if err != nil {
		switch {
		case errors.Is(err, history.ErrDatabaseNotFound):
			return nil, a.fail(ErrDatabaseNotFound, err, "Pass --db or set ATUIN_DB_PATH")
		case errors.Is(err, history.ErrNotHistoryDatabase):
			return nil, a.fail(ErrNotHistoryDatabase, err, "")
		default:
			return nil, a.fail(ErrDatabaseError, err, "")
		}
	}
	if a.newID != nil {
		store.NewID = a.newID
	}
	return store, nil
}

// normalizeDir makes a directory argument absolute, expanding ~.
func (a *app) normalizeDir(arg string) (string, error) {
	dir, err := paths.Normalize(arg, a.env.Home)
	if err != nil {
		if errors.Is(err, paths.ErrNoHome) {
			return "", a.fail(ErrHomeNotFound, err, "Set HOME or pass an absolute path")
		}
		return "", a.fail(ErrInvalidPath, err, "")
	}
	return dir, nil
}

func (a *app) println(s string) {
	fmt.Fprintln(a.stdout, s)
}
