package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"asreval/internal/config"
	"asreval/internal/diff"
	"asreval/internal/logging"
	"asreval/internal/report"
	"asreval/internal/runstore"
	"asreval/internal/scoring"
)

type evalFlags struct {
	printInstances  bool
	printErrors     bool
	caseInsensitive bool
	removeEmptyRefs bool
	headIDs         bool
	tailIDs         bool
	confusions      bool
	minWordCount    int
	werVsLength     bool
	jsonOutput      bool
	noColor         bool
	save            bool
}

func newEvalCommand(ctx *commandContext) *cobra.Command {
	var flags evalFlags

	cmd := &cobra.Command{
		Use:     "eval REF_FILE HYP_FILE",
		Aliases: []string{"evaluate"},
		Short:   "Align a hypothesis transcript against its reference and report WER/WRR/SER",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return runEval(cmd, cfg, flags, args[0], args[1])
		},
	}

	cmd.Flags().BoolVarP(&flags.printInstances, "print-instances", "i", false, "Print every aligned line pair")
	cmd.Flags().BoolVar(&flags.printErrors, "print-errors", false, "Print only line pairs containing errors")
	cmd.Flags().BoolVar(&flags.caseInsensitive, "case-insensitive", false, "Fold tokens to lowercase before comparison")
	cmd.Flags().BoolVar(&flags.removeEmptyRefs, "remove-empty-refs", false, "Skip line pairs whose reference is empty")
	cmd.Flags().BoolVar(&flags.headIDs, "head-ids", false, "Strip a leading utterance ID from each line (Kaldi style)")
	cmd.Flags().BoolVar(&flags.tailIDs, "tail-ids", false, "Strip a trailing utterance ID from each line (Sphinx style)")
	cmd.Flags().BoolVar(&flags.confusions, "confusions", false, "Report insertion/deletion/substitution confusion tables")
	cmd.Flags().IntVar(&flags.minWordCount, "min-word-count", 0, "Minimum count for a confusion table row")
	cmd.Flags().BoolVar(&flags.werVsLength, "wer-vs-length", false, "Report mean WER by sentence length")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Emit results as JSON")
	cmd.Flags().BoolVar(&flags.noColor, "no-color", false, "Disable colorized diff output")
	cmd.Flags().BoolVar(&flags.save, "save", false, "Persist this run to the history store")

	return cmd
}

// evalReport is the machine-readable shape of a finished run.
type evalReport struct {
	Metrics       scoring.MetricsResult       `json:"metrics"`
	Insertions    []scoring.ConfusionEntry    `json:"insertions,omitempty"`
	Deletions     []scoring.ConfusionEntry    `json:"deletions,omitempty"`
	Substitutions []scoring.SubstitutionEntry `json:"substitutions,omitempty"`
	WERByLength   []scoring.LengthReportRow   `json:"wer_by_length,omitempty"`
}

func runEval(cmd *cobra.Command, cfg *config.Config, flags evalFlags, refPath, hypPath string) error {
	opts, err := mergeOptions(cmd, cfg, flags)
	if err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	refFile, err := os.Open(refPath)
	if err != nil {
		return fmt.Errorf("open reference file: %w", err)
	}
	defer refFile.Close()

	hypFile, err := os.Open(hypPath)
	if err != nil {
		return fmt.Errorf("open hypothesis file: %w", err)
	}
	defer hypFile.Close()

	out := cmd.OutOrStdout()
	var highlight func(string) string
	if f, ok := out.(*os.File); ok {
		highlight = diff.ErrorHighlighter(f, flags.noColor || !cfg.Output.Color)
	}

	printInstances := flags.printInstances || cfg.Output.PrintInstances
	printErrors := flags.printErrors || cfg.Output.PrintErrors
	var visit scoring.LineVisitor
	if (printInstances || printErrors) && !flags.jsonOutput {
		visit = func(seq int, res scoring.LineResult) error {
			if !printInstances && res.Errors == 0 {
				return nil
			}
			return report.WriteInstance(out, seq, res, highlight)
		}
	}

	result, err := scoring.NewEvaluator(opts, logger).Run(refFile, hypFile, visit)
	if err != nil {
		return err
	}

	if flags.jsonOutput {
		if err := writeEvalJSON(cmd, opts, result); err != nil {
			return err
		}
	} else if err := writeEvalText(cmd, cfg, flags, opts, result); err != nil {
		return err
	}

	if flags.save || cfg.History.Enabled {
		if err := saveRun(cmd, cfg, opts, result, refPath, hypPath); err != nil {
			return err
		}
	}
	return nil
}

// mergeOptions layers explicit CLI flags over config file defaults.
func mergeOptions(cmd *cobra.Command, cfg *config.Config, flags evalFlags) (scoring.Options, error) {
	idMode, err := scoring.ParseIDMode(cfg.Evaluate.IDMode)
	if err != nil {
		return scoring.Options{}, err
	}
	opts := scoring.Options{
		CaseInsensitive:   cfg.Evaluate.CaseInsensitive,
		RemoveEmptyRefs:   cfg.Evaluate.RemoveEmptyRefs,
		IDMode:            idMode,
		TrackConfusions:   cfg.Evaluate.TrackConfusions,
		TrackLengthBins:   cfg.Evaluate.TrackLengthBins,
		MinConfusionCount: cfg.Evaluate.MinConfusionCount,
	}

	if flags.caseInsensitive {
		opts.CaseInsensitive = true
	}
	if flags.removeEmptyRefs {
		opts.RemoveEmptyRefs = true
	}
	if flags.headIDs && flags.tailIDs {
		return scoring.Options{}, fmt.Errorf("--head-ids and --tail-ids are mutually exclusive")
	}
	if flags.headIDs {
		opts.IDMode = scoring.IDModeHead
	}
	if flags.tailIDs {
		opts.IDMode = scoring.IDModeTail
	}
	if flags.confusions {
		opts.TrackConfusions = true
	}
	if cmd.Flags().Changed("min-word-count") {
		opts.MinConfusionCount = flags.minWordCount
	}
	if cmd.Flags().Changed("wer-vs-length") && flags.werVsLength {
		opts.TrackLengthBins = true
	}
	return opts, nil
}

func writeEvalJSON(cmd *cobra.Command, opts scoring.Options, result scoring.RunResult) error {
	rep := evalReport{Metrics: result.Metrics}
	if result.Confusions != nil {
		rep.Insertions = scoring.RankConfusions(result.Confusions.Insertions, opts.MinConfusionCount)
		rep.Deletions = scoring.RankConfusions(result.Confusions.Deletions, opts.MinConfusionCount)
		rep.Substitutions = scoring.RankSubstitutions(result.Confusions.Substitutions, opts.MinConfusionCount)
	}
	if result.LengthBins != nil {
		rep.WERByLength = scoring.LengthVsErrorReport(result.LengthBins)
	}
	return writeJSON(cmd, rep)
}

func writeEvalText(cmd *cobra.Command, cfg *config.Config, flags evalFlags, opts scoring.Options, result scoring.RunResult) error {
	out := cmd.OutOrStdout()

	if opts.TrackConfusions {
		if err := report.WriteConfusions(out, result.Confusions, opts.MinConfusionCount); err != nil {
			return err
		}
	}
	showLengths := cfg.Output.WERVsLength
	if cmd.Flags().Changed("wer-vs-length") {
		showLengths = flags.werVsLength
	}
	if showLengths && result.LengthBins != nil {
		if err := report.WriteLengthReport(out, result.LengthBins); err != nil {
			return err
		}
	}
	return report.WriteSummary(out, result.Metrics)
}

func saveRun(cmd *cobra.Command, cfg *config.Config, opts scoring.Options, result scoring.RunResult, refPath, hypPath string) error {
	store, err := runstore.Open(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	run := &runstore.Run{
		RefPath: refPath,
		HypPath: hypPath,
		Options: opts,
		Metrics: result.Metrics,
	}
	if err := store.SaveRun(cmd.Context(), run); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved run %s\n", run.ID)
	return nil
}
