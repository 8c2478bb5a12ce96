// Package align computes minimum-edit-distance alignments between token
// sequences.
//
// An alignment is an ordered list of operations (equal, insert, delete,
// replace) whose half-open ranges partition both input sequences with no gaps
// or overlaps. Alongside the operations it reports the total edit distance and
// the number of matched tokens, which downstream scoring code cross-checks
// against the equal ranges.
//
// The implementation is a classic word-level Levenshtein dynamic program with
// a full backtrace, so it is deterministic for a given input pair.
package align
