package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/digerati-red/dev-smoked-salmon/internal/fileutil"
	"github.com/digerati-red/dev-smoked-salmon/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show past check runs and their per-file failures",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("run history is disabled in the configuration")
			}

			store, err := history.Open(cfg.History.Path)
			if err != nil {
				return fmt.Errorf("open history database: %w", err)
			}
			defer store.Close()

			if len(args) == 1 {
				return renderFailures(cmd, store, args[0])
			}
			return renderRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}

func renderRuns(cmd *cobra.Command, store *history.Store, limit int) error {
	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No recorded runs.")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Format("2006-01-02 15:04"),
			fileutil.ShortenPath(run.Path, 3),
			runMode(run),
			strconv.Itoa(run.Checked),
			strconv.Itoa(run.Failed),
			strconv.Itoa(run.Sanitized),
			runOutcome(run),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Run", "Started", "Path", "Mode", "Checked", "Failed", "Sanitized", "Outcome"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
	return nil
}

func renderFailures(cmd *cobra.Command, store *history.Store, runID string) error {
	failures, err := store.Failures(cmd.Context(), runID)
	if err != nil {
		return fmt.Errorf("list failures for run %s: %w", runID, err)
	}

	out := cmd.OutOrStdout()
	if len(failures) == 0 {
		fmt.Fprintf(out, "No recorded failures for run %s.\n", runID)
		return nil
	}
	for _, failure := range failures {
		fmt.Fprintln(out, failure.Path)
		for _, message := range failure.Messages {
			fmt.Fprintf(out, "  - %s\n", message)
		}
	}
	return nil
}

func runMode(run history.Run) string {
	if run.MD5Only {
		return "md5-only"
	}
	return "full"
}

func runOutcome(run history.Run) string {
	switch {
	case run.Aborted:
		return "aborted"
	case run.SanitizeFailed > 0:
		return "partial"
	case run.Failed > 0:
		return "sanitized"
	default:
		return "clean"
	}
}
