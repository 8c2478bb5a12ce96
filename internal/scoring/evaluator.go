package scoring

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
)

// LineVisitor observes each processed line in input order. seq is the 1-based
// ordinal among processed lines. Returning an error aborts the run.
type LineVisitor func(seq int, res LineResult) error

// RunResult bundles everything a finished evaluation produced. Confusions and
// LengthBins are nil unless the corresponding tracking option was enabled.
type RunResult struct {
	Metrics    MetricsResult
	Confusions *ConfusionTables
	LengthBins LengthBins
}

// Evaluator streams reference and hypothesis lines pairwise through
// ProcessLinePair and an Accumulator. It holds no state between runs beyond
// its options and logger, so one Evaluator value can serve several sequential
// runs; each Run call builds a fresh Accumulator.
type Evaluator struct {
	opts   Options
	logger *slog.Logger
}

// NewEvaluator builds an evaluator. A nil logger disables logging.
func NewEvaluator(opts Options, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Evaluator{opts: opts, logger: logger.With("component", "evaluator")}
}

// Run consumes the two streams pairwise until the shorter one is exhausted,
// which mirrors how misaligned transcript files are conventionally handled:
// trailing unpaired lines are ignored without error. visit may be nil.
//
// Memory use scales with the number of distinct tokens and lengths seen, not
// with the number of lines, so arbitrarily long streams are fine.
func (e *Evaluator) Run(ref, hyp io.Reader, visit LineVisitor) (RunResult, error) {
	acc := NewAccumulator(e.opts)

	refScanner := bufio.NewScanner(ref)
	refScanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	hypScanner := bufio.NewScanner(hyp)
	hypScanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	lineNum := 0
	processed := 0
	for refScanner.Scan() {
		if !hypScanner.Scan() {
			break
		}
		lineNum++

		res, err := ProcessLinePair(refScanner.Text(), hypScanner.Text(), e.opts)
		if err != nil {
			return RunResult{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
		if !res.Processed {
			e.logger.Debug("skipped empty reference", "line", lineNum)
			continue
		}

		processed++
		acc.Add(res)
		if visit != nil {
			if err := visit(processed, res); err != nil {
				return RunResult{}, err
			}
		}
	}
	if err := refScanner.Err(); err != nil {
		return RunResult{}, fmt.Errorf("read reference stream: %w", err)
	}
	if err := hypScanner.Err(); err != nil {
		return RunResult{}, fmt.Errorf("read hypothesis stream: %w", err)
	}

	result := RunResult{
		Metrics:    Finalize(acc.Totals()),
		Confusions: acc.Confusions(),
		LengthBins: acc.LengthBins(),
	}
	e.logger.Debug("run complete",
		"sentences", result.Metrics.Sentences,
		"ref_tokens", result.Metrics.RefTokens,
		"wer", result.Metrics.WER,
	)
	return result, nil
}

// maxLineBytes bounds a single transcript line. Alignment is quadratic in
// line length, so anything near this limit is already pathological input.
const maxLineBytes = 4 * 1024 * 1024
