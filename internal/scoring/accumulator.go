package scoring

import "math"

// Accumulator folds per-line results into corpus totals and, when enabled by
// its Options, confusion tables and length-stratified error-rate bins.
//
// An Accumulator belongs to exactly one evaluation run. Create a fresh one
// per run; it is not safe for concurrent use within a run.
type Accumulator struct {
	opts       Options
	totals     CorpusTotals
	confusions *ConfusionTables
	lengthBins LengthBins
}

// CorpusTotals holds the running corpus-wide counts.
type CorpusTotals struct {
	Sentences    int `json:"sentence_count"`
	RefTokens    int `json:"ref_token_count"`
	Matches      int `json:"match_count"`
	Errors       int `json:"error_count"`
	ErrSentences int `json:"sent_error_count"`
}

// NewAccumulator returns an empty accumulator for one evaluation run.
func NewAccumulator(opts Options) *Accumulator {
	acc := &Accumulator{opts: opts}
	if opts.TrackConfusions {
		acc.confusions = NewConfusionTables()
	}
	if opts.TrackLengthBins {
		acc.lengthBins = make(LengthBins)
	}
	return acc
}

// Add folds one line result into the running state. Call it exactly once per
// input pair, in input order. Unprocessed results are ignored entirely.
func (a *Accumulator) Add(res LineResult) {
	if !res.Processed {
		return
	}

	a.totals.Sentences++
	a.totals.RefTokens += res.RefLength
	a.totals.Matches += res.Matches
	a.totals.Errors += res.Errors
	if res.Errors != 0 {
		a.totals.ErrSentences++
	}

	if a.confusions != nil {
		a.confusions.record(res)
	}
	if a.lengthBins != nil {
		rate := math.Inf(1)
		if res.RefLength > 0 {
			rate = float64(res.Errors) / float64(res.RefLength)
		}
		a.lengthBins[res.RefLength] = append(a.lengthBins[res.RefLength], rate)
	}
}

// Totals returns a snapshot of the running counts.
func (a *Accumulator) Totals() CorpusTotals {
	return a.totals
}

// Confusions returns the confusion tables, or nil when tracking is disabled.
func (a *Accumulator) Confusions() *ConfusionTables {
	return a.confusions
}

// LengthBins returns the per-length error-rate bins, or nil when tracking is
// disabled.
func (a *Accumulator) LengthBins() LengthBins {
	return a.lengthBins
}
