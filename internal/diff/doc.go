// Package diff renders an alignment as a Sphinx-style two-line comparison of
// reference and hypothesis tokens.
//
// Render is pure: it maps an alignment plus the original token sequences to
// parallel segment lists where each segment carries the text to display and a
// flag marking it as an error site. Format joins segments into the two output
// lines; styling (ANSI color for highlighted segments) is applied by whatever
// highlighter the caller supplies, keeping terminal concerns out of the
// rendering itself.
package diff
