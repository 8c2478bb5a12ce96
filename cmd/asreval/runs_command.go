package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"asreval/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect saved evaluation runs",
	}
	cmd.AddCommand(newRunsListCommand(ctx))
	cmd.AddCommand(newRunsShowCommand(ctx))
	return cmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved runs, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, runs)
			}
			if len(runs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved runs.")
				return nil
			}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Format("2006-01-02 15:04:05"),
					run.RefPath,
					run.HypPath,
					formatPercent(run.Metrics.WER),
					strconv.Itoa(run.Metrics.Sentences),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Created", "Reference", "Hypothesis", "WER", "Sentences"},
				rows, 4, 5))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to list (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit runs as JSON")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show RUN_ID",
		Short: "Show one saved run in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, run)
			}
			writeRunDetail(cmd, run)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run as JSON")
	return cmd
}

func writeRunDetail(cmd *cobra.Command, run *runstore.Run) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run:        %s\n", run.ID)
	fmt.Fprintf(out, "Created:    %s\n", run.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Reference:  %s\n", run.RefPath)
	fmt.Fprintf(out, "Hypothesis: %s\n", run.HypPath)
	fmt.Fprintf(out, "ID mode:    %s\n", run.Options.IDMode)
	fmt.Fprintf(out, "Case-insensitive: %t, remove empty refs: %t\n",
		run.Options.CaseInsensitive, run.Options.RemoveEmptyRefs)
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Sentences:  %d (with errors: %d)\n", run.Metrics.Sentences, run.Metrics.ErrSentences)
	fmt.Fprintf(out, "Ref tokens: %d (matched: %d, errors: %d)\n",
		run.Metrics.RefTokens, run.Metrics.Matches, run.Metrics.Errors)
	fmt.Fprintf(out, "WER: %s  WRR: %s  SER: %s\n",
		formatPercent(run.Metrics.WER), formatPercent(run.Metrics.WRR), formatPercent(run.Metrics.SER))
}

func formatPercent(rate float64) string {
	return fmt.Sprintf("%.3f%%", rate*100)
}
