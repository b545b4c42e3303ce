package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lumen-lang/lumen/internal/store"
)

// HistoryResult holds run history for JSON output.
type HistoryResult struct {
	Runs   []store.Run       `json:"runs,omitempty"`
	Events []store.PassEvent `json:"events,omitempty"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	var snapshotHash string

	cmd := &cobra.Command{
		Use:   "history <db> [token]",
		Short: "Inspect recorded runs",
		Long: `List recorded runs, or show the pass trace of a single run.

With --snapshot, print the canonical document stored under a hash instead.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 2 {
				token = args[1]
			}
			return runHistory(rootOpts, args[0], token, snapshotHash, cmd)
		},
	}

	cmd.Flags().StringVar(&snapshotHash, "snapshot", "", "print the document stored under this hash")

	return cmd
}

func runHistory(opts *RootOptions, dbPath, token, snapshotHash string, cmd *cobra.Command) error {
	formatter := &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}

	if _, err := os.Stat(dbPath); err != nil {
		_ = formatter.Error(ErrCodeNotFound, fmt.Sprintf("database not found: %s", dbPath), nil)
		return NewExitError(ExitCommandError, fmt.Sprintf("database not found: %s", dbPath))
	}

	s, err := store.Open(dbPath)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}
	defer s.Close()

	ctx := cmd.Context()

	if snapshotHash != "" {
		document, err := s.ReadSnapshot(ctx, snapshotHash)
		if err != nil {
			code := ErrCodeStoreFailed
			if errors.Is(err, store.ErrNotFound) {
				code = ErrCodeNotFound
			}
			_ = formatter.Error(code, err.Error(), nil)
			return NewExitError(ExitCommandError, err.Error())
		}
		fmt.Fprintln(formatter.Writer, string(document))
		return nil
	}

	if token != "" {
		return showRun(ctx, formatter, s, token)
	}
	return listRuns(ctx, formatter, s)
}

func listRuns(ctx context.Context, formatter *OutputFormatter, s *store.Store) error {
	runs, err := s.ListRuns(ctx)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(HistoryResult{Runs: runs})
	}

	if len(runs) == 0 {
		fmt.Fprintln(formatter.Writer, "no runs recorded")
		return nil
	}
	for _, run := range runs {
		fmt.Fprintf(formatter.Writer, "%s  %-7s  %s\n", run.Token, run.Status, run.Source)
	}
	return nil
}

func showRun(ctx context.Context, formatter *OutputFormatter, s *store.Store, token string) error {
	run, err := s.ReadRun(ctx, token)
	if err != nil {
		code := ErrCodeStoreFailed
		if errors.Is(err, store.ErrNotFound) {
			code = ErrCodeNotFound
		}
		_ = formatter.Error(code, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	events, err := s.ListPassEvents(ctx, token)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return NewExitError(ExitCommandError, err.Error())
	}

	if formatter.Format == "json" {
		return formatter.Success(HistoryResult{Runs: []store.Run{run}, Events: events})
	}

	fmt.Fprintf(formatter.Writer, "run %s (%s)\n", run.Token, run.Status)
	fmt.Fprintf(formatter.Writer, "  source: %s\n", run.Source)
	fmt.Fprintf(formatter.Writer, "  input:  %s\n", run.InputHash)
	if run.OutputHash != "" {
		fmt.Fprintf(formatter.Writer, "  output: %s\n", run.OutputHash)
	}
	if run.Error != "" {
		fmt.Fprintf(formatter.Writer, "  error:  %s\n", run.Error)
	}
	for _, ev := range events {
		fmt.Fprintf(formatter.Writer, "  %2d. %-20s %s -> %s\n", ev.Seq, ev.Pass, short(ev.InputHash), short(ev.OutputHash))
	}
	return nil
}

// short truncates a hash for text display.
func short(hash string) string {
	if len(hash) > 12 {
		return hash[:12]
	}
	return hash
}
