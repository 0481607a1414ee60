package histcli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidanlsb/shelltools/internal/history"
	"github.com/aidanlsb/shelltools/internal/ui"
)

type listResult struct {
	Dir       string           `json:"dir"`
	Recursive bool             `json:"recursive"`
	Limit     int              `json:"limit"`
	Records   []history.Record `json:"records"`
}

type countResult struct {
	Dir       string `json:"dir"`
	Recursive bool   `json:"recursive"`
	Count     int    `json:"count"`
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list <dir> [limit]",
		Short: "Show the newest history records for a directory",
		Long: `Show the newest live history records recorded in <dir>, newest first.

The limit defaults to history.list_limit from the config file, or 10.`,
		Args: listArgs,
		RunE: a.runList,
	}
}

func listArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.RangeArgs(1, 2)(cmd, args); err != nil {
		return err
	}
	if len(args) == 2 {
		if _, err := parseLimit(args[1]); err != nil {
			return err
		}
	}
	return nil
}

func parseLimit(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q: must be a positive integer", s)
	}
	return n, nil
}

func (a *app) runList(cmd *cobra.Command, args []string) error {
	dir, err := a.normalizeDir(args[0])
	if err != nil {
		return err
	}

	limit := a.cfg.GetListLimit()
	if len(args) == 2 {
		limit, _ = parseLimit(args[1])
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.List(cmd.Context(), dir, limit, a.recursive)
	if err != nil {
		return a.fail(ErrDatabaseError, err, "")
	}

	if a.jsonOutput {
		if records == nil {
			records = []history.Record{}
		}
		a.outputSuccess(listResult{
			Dir:       dir,
			Recursive: a.recursive,
			Limit:     limit,
			Records:   records,
		}, nil, &Meta{Count: len(records)})
		return nil
	}

	if len(records) == 0 {
		a.println(ui.Warningf("No records found in %s", ui.FilePath(dir)))
		return nil
	}

	table := ui.NewTable(5)
	for _, r := range records {
		table.AddRow(
			ui.Hint(r.Time().Format("2006-01-02 15:04:05")),
			strconv.FormatInt(r.Exit, 10),
			r.Elapsed().Round(time.Millisecond).String(),
			ui.FilePath(r.Cwd),
			r.Command,
		)
	}
	fmt.Fprint(a.stdout, table.String())
	return nil
}

func (a *app) countCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "count <dir>",
		Short: "Count live history records for a directory",
		Args:  cobra.ExactArgs(1),
		RunE:  a.runCount,
	}
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	dir, err := a.normalizeDir(args[0])
	if err != nil {
		return err
	}

	store, err := a.openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	n, err := store.Count(cmd.Context(), dir, a.recursive)
	if err != nil {
		return a.fail(ErrDatabaseError, err, "")
	}

	if a.jsonOutput {
		a.outputSuccess(countResult{Dir: dir, Recursive: a.recursive, Count: n}, nil, nil)
		return nil
	}

	a.println(ui.Infof("%s in %s", ui.Records(n), ui.FilePath(dir)))
	return nil
}
