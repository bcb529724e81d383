package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quadkit/ctrlkit/internal/config"
	"github.com/quadkit/ctrlkit/internal/store"
)

// historyDBName is the default snapshot history database file name,
// resolved under the output directory.
const historyDBName = "history.db"

// snapshotOutput wraps a snapshot result with a text rendering.
type snapshotOutput struct {
	config.SnapshotResult
}

func (o snapshotOutput) String() string {
	return fmt.Sprintf("snapshot %s of profile %q written to %s (sha256 %s)",
		o.ID, o.Profile, o.Path, o.Checksum)
}

// NewSnapshotCommand creates the snapshot command.
func NewSnapshotCommand(rootOpts *RootOptions) *cobra.Command {
	var outDir, dbPath string

	cmd := &cobra.Command{
		Use:   "snapshot <profile.yaml>",
		Short: "Export a snapshot of a gain profile",
		Long: `Validate a gain profile and export a normalized snapshot of it.

The snapshot is written to the output directory (default: the resolved
configuration directory) and recorded in the snapshot history database.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(rootOpts, args[0], outDir, dbPath, cmd)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "output directory (default: config directory)")
	cmd.Flags().StringVar(&dbPath, "db", "", "history database path (default: <out>/history.db)")

	return cmd
}

func runSnapshot(opts *RootOptions, profilePath, outDir, dbPath string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	p, err := config.LoadProfile(profilePath)
	if err != nil {
		formatter.Error(ErrCodeLoad, err.Error(), nil)
		return WrapExitError(ExitCommandError, "load failed", err)
	}

	if errs := p.Validate(); len(errs) > 0 {
		formatter.Error(ErrCodeInvalid, fmt.Sprintf("profile has %d validation error(s)", len(errs)), errs)
		return NewExitError(ExitFailure, "profile invalid")
	}

	if outDir == "" {
		outDir, err = config.Dir()
		if err != nil {
			formatter.Error(ErrCodeExport, err.Error(), nil)
			return WrapExitError(ExitCommandError, "resolve output dir", err)
		}
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		formatter.Error(ErrCodeExport, err.Error(), nil)
		return WrapExitError(ExitCommandError, "create output dir", err)
	}
	formatter.VerboseLog("exporting snapshot to %s", outDir)

	res, err := config.ExportSnapshot(p, outDir, config.SystemClock{}, config.UUIDv7Generator{})
	if err != nil {
		formatter.Error(ErrCodeExport, err.Error(), nil)
		return WrapExitError(ExitCommandError, "export failed", err)
	}

	if dbPath == "" {
		dbPath = filepath.Join(outDir, historyDBName)
	}
	if err := recordSnapshot(cmd.Context(), dbPath, res); err != nil {
		formatter.Error(ErrCodeStore, err.Error(), nil)
		return WrapExitError(ExitCommandError, "record failed", err)
	}
	formatter.VerboseLog("recorded snapshot %s in %s", res.ID, dbPath)

	return formatter.Success(snapshotOutput{*res})
}

func recordSnapshot(ctx context.Context, dbPath string, res *config.SnapshotResult) error {
	s, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	return s.RecordSnapshot(ctx, store.SnapshotRecord{
		ID:        res.ID,
		Profile:   res.Profile,
		Path:      res.Path,
		Checksum:  res.Checksum,
		CreatedAt: res.CreatedAt,
	})
}
