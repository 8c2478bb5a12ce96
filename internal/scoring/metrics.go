package scoring

// MetricsResult is the immutable end-of-run snapshot. The raw counts it was
// derived from ride along so callers can tell a genuine zero rate from a
// zero-denominator degenerate case.
type MetricsResult struct {
	Sentences    int     `json:"sentence_count"`
	RefTokens    int     `json:"ref_token_count"`
	Matches      int     `json:"match_count"`
	Errors       int     `json:"error_count"`
	ErrSentences int     `json:"sent_error_count"`
	WER          float64 `json:"wer"`
	WRR          float64 `json:"wrr"`
	SER          float64 `json:"ser"`
}

// Finalize derives WER, WRR, and SER from accumulated totals. Zero
// denominators yield 0.0 rather than a division fault; inspect the raw counts
// to detect that case. No rounding is applied here.
func Finalize(totals CorpusTotals) MetricsResult {
	result := MetricsResult{
		Sentences:    totals.Sentences,
		RefTokens:    totals.RefTokens,
		Matches:      totals.Matches,
		Errors:       totals.Errors,
		ErrSentences: totals.ErrSentences,
	}
	if totals.RefTokens > 0 {
		result.WER = float64(totals.Errors) / float64(totals.RefTokens)
		result.WRR = float64(totals.Matches) / float64(totals.RefTokens)
	}
	if totals.Sentences > 0 {
		result.SER = float64(totals.ErrSentences) / float64(totals.Sentences)
	}
	return result
}
