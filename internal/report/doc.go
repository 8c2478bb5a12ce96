// Package report renders evaluation output for humans: the final summary
// block, per-line instance blocks, ranked confusion tables, and the
// length-vs-WER table.
//
// Everything writes plain text to an io.Writer; tables go through go-pretty
// so they match the rest of the CLI's output. Percentage formatting lives
// here, not in scoring, which only ever deals in raw rates and counts.
package report
