package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quadkit/ctrlkit/internal/config"
	"github.com/quadkit/ctrlkit/internal/store"
)

// HistoryResult lists recorded snapshots, newest first.
type HistoryResult struct {
	Snapshots []store.SnapshotRecord `json:"snapshots"`
}

// String renders the text form of the result.
func (r HistoryResult) String() string {
	if len(r.Snapshots) == 0 {
		return "no snapshots recorded"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d snapshot(s)", len(r.Snapshots))
	for _, s := range r.Snapshots {
		fmt.Fprintf(&b, "\n  %s  %-20s %s", s.CreatedAt, s.Profile, s.ID)
	}
	return b.String()
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var dbPath string
	var limit int

	cmd := &cobra.Command{
		Use:           "history",
		Short:         "List recorded snapshots",
		Long:          "List snapshots recorded in the history database, newest first.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(rootOpts, dbPath, limit, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default: <config dir>/history.db)")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of snapshots to list (0 for all)")

	return cmd
}

func runHistory(opts *RootOptions, dbPath string, limit int, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if dbPath == "" {
		dir, err := config.Dir()
		if err != nil {
			formatter.Error(ErrCodeStore, err.Error(), nil)
			return WrapExitError(ExitCommandError, "resolve config dir", err)
		}
		dbPath = filepath.Join(dir, historyDBName)
	}
	formatter.VerboseLog("reading history from %s", dbPath)

	s, err := store.Open(dbPath)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "open history db", err)
	}
	defer s.Close()

	recs, err := s.ListSnapshots(cmd.Context(), limit)
	if err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "list snapshots", err)
	}

	return formatter.Success(HistoryResult{Snapshots: recs})
}
