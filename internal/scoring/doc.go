// Package scoring turns aligned reference/hypothesis line pairs into
// recognition accuracy statistics.
//
// ProcessLinePair normalizes a single line pair (ID stripping, case folding,
// empty-reference policy), aligns it, and returns per-line counts. An
// Accumulator folds those results into corpus totals plus optional confusion
// tables and length-stratified error-rate bins. Finalize derives WER, WRR, and
// SER from the totals.
//
// All accumulation state is owned by the Accumulator created for one run;
// nothing in this package is process-wide, so independent runs can execute
// concurrently. Options is an immutable value threaded through every call.
package scoring
