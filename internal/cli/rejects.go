package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/finite/internal/audit"
)

// NewRejectsCommand creates the rejects command.
func NewRejectsCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		dbPath   string
		runToken string
	)

	cmd := &cobra.Command{
		Use:   "rejects",
		Short: "List recorded rejects from an audit database",
		Long: `List samples rejected by previous check runs.

With --run, only the rejects of that run are shown; otherwise all recorded
rejects, in creation order (UUIDv7 ids sort by time).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRejects(rootOpts, dbPath, runToken, cmd)
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "audit database path (required)")
	cmd.Flags().StringVar(&runToken, "run", "", "only list rejects for this run token")
	cmd.MarkFlagRequired("db")

	return cmd
}

func runRejects(opts *RootOptions, dbPath, runToken string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	if _, err := os.Stat(dbPath); err != nil {
		formatter.Error("E105", fmt.Sprintf("audit database not found: %s", dbPath), nil)
		return WrapExitError(ExitCommandError, "opening audit database", err)
	}

	store, err := audit.Open(dbPath)
	if err != nil {
		formatter.Error("E105", err.Error(), nil)
		return WrapExitError(ExitCommandError, "opening audit database", err)
	}
	defer store.Close()

	rejects, err := store.ListRejects(cmd.Context(), runToken)
	if err != nil {
		formatter.Error("E105", err.Error(), nil)
		return WrapExitError(ExitCommandError, "reading audit database", err)
	}

	if formatter.JSON() {
		return formatter.Success(map[string]any{"rejects": rejects})
	}

	if len(rejects) == 0 {
		fmt.Fprintln(formatter.Writer, "no rejects recorded")
		return nil
	}
	for _, r := range rejects {
		fmt.Fprintf(formatter.Writer, "%s %s %s[%d] = %s (%s)\n", r.CreatedAt, r.Manifest, r.Series, r.SampleIdx, r.Value, r.Code)
	}
	fmt.Fprintf(formatter.Writer, "%d rejects\n", len(rejects))
	return nil
}
