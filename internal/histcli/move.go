package histcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shelltools/internal/history"
	"github.com/aidanlsb/shelltools/internal/ui"
)

type moveResult struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Recursive bool   `json:"recursive"`
	DryRun    bool   `json:"dry_run"`
	Moved     int    `json:"moved"`
}

type copyFailure struct {
	ID    string `json:"id"`
	Cwd   string `json:"cwd"`
	Error string `json:"error"`
}

type copyResult struct {
	From      string        `json:"from"`
	To        string        `json:"to"`
	Recursive bool          `json:"recursive"`
	DryRun    bool          `json:"dry_run"`
	Matched   int           `json:"matched"`
	Copied    int           `json:"copied"`
	Failures  []copyFailure `json:"failures,omitempty"`
}

func (a *app) moveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Rewrite the directory of matching history records",
		Long: `Rewrite the recorded working directory of every live history record in
<from> to <to>.

With --recursive, records in subdirectories of <from> move too and keep their
relative suffix: /a/b/sub becomes /x/y/sub.

The update is a single statement: if any rewritten record would collide with
an existing one, nothing is changed.

Examples:
  atuin-mv move ~/code/old ~/code/new
  atuin-mv move -r ~/code/old ~/code/new --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: a.runMove,
	}
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Report how many records would change without writing")
	return cmd
}

func (a *app) runMove(cmd *cobra.Command, args []string) error {
	from, err := a.normalizeDir(args[0])
	if err != nil {
		return err
	}
	to, err := a.normalizeDir(args[1])
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Move(cmd.Context(), from, to, history.MoveOptions{
		DryRun:    a.dryRun,
		Recursive: a.recursive,
	})
	if err != nil {
		return a.fail(ErrDatabaseError, err, "")
	}

	if a.jsonOutput {
		a.outputSuccess(moveResult{
			From:      from,
			To:        to,
			Recursive: a.recursive,
			DryRun:    a.dryRun,
			Moved:     n,
		}, nil, nil)
		return nil
	}

	switch {
	case n == 0:
		a.println(ui.Warningf("No records found in %s", ui.FilePath(from)))
	case a.dryRun:
		a.println(ui.Infof("Would move %s from %s to %s", ui.Records(n), ui.FilePath(from), ui.FilePath(to)))
	default:
		a.println(ui.Successf("Moved %s from %s to %s", ui.Records(n), ui.FilePath(from), ui.FilePath(to)))
	}
	return nil
}

func (a *app) copyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy <from> <to>",
		Short: "Duplicate matching history records under another directory",
		Long: `Insert a copy of every live history record in <from> with its working
directory rewritten to <to>. Each copy gets a new ID; every other field is
kept. The originals are left in place.

Records that cannot be inserted (for example because an identical record
already exists in <to>) are reported and skipped; the rest are still copied.

Examples:
  atuin-mv copy ~/code/template ~/code/new-project
  atuin-mv copy -r ~/code/template ~/code/new-project --dry-run`,
		Args: cobra.ExactArgs(2),
		RunE: a.runCopy,
	}
	cmd.Flags().BoolVar(&a.dryRun, "dry-run", false, "Report how many records would be copied without writing")
	return cmd
}

func (a *app) runCopy(cmd *cobra.Command, args []string) error {
	from, err := a.normalizeDir(args[0])
	if err != nil {
		return err
	}
	to, err := a.normalizeDir(args[1])
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := store.Copy(cmd.Context(), from, to, history.CopyOptions{
		DryRun:    a.dryRun,
		Recursive: a.recursive,
	})
	if err != nil {
		return a.fail(ErrDatabaseError, err, "")
	}

	if a.jsonOutput {
		out := copyResult{
			From:      from,
			To:        to,
			Recursive: a.recursive,
			DryRun:    res.DryRun,
			Matched:   res.Matched,
			Copied:    res.Copied,
		}
		var warnings []Warning
		for _, f := range res.Failures {
			out.Failures = append(out.Failures, copyFailure{ID: f.Record.ID, Cwd: f.Record.Cwd, Error: f.Err.Error()})
			warnings = append(warnings, Warning{
				Code:    ErrCopyFailed,
				Message: fmt.Sprintf("failed to copy record: %v", f.Err),
				ID:      f.Record.ID,
			})
		}
		a.outputSuccess(out, warnings, nil)
		return nil
	}

	switch {
	case res.Matched == 0:
		a.println(ui.Warningf("No records found in %s", ui.FilePath(from)))
		return nil
	case res.DryRun:
		a.println(ui.Infof("Would copy %s from %s to %s", ui.Records(res.Matched), ui.FilePath(from), ui.FilePath(to)))
		return nil
	}

	a.println(ui.Successf("Copied %s from %s to %s", ui.Records(res.Copied), ui.FilePath(from), ui.FilePath(to)))
	if len(res.Failures) > 0 {
		list := ui.NewList()
		for _, f := range res.Failures {
			list.Add(fmt.Sprintf("%s %s %s", f.Record.ID, ui.FilePath(f.Record.Cwd), ui.Hint(f.Err.Error())))
		}
		a.println(ui.Warningf("%s could not be copied:", ui.Records(len(res.Failures))))
		fmt.Fprint(a.stdout, list.String())
	}
	return nil
}
