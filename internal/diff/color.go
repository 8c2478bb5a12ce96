package diff

import (
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

// ErrorHighlighter returns a function wrapping error segments in red, or nil
// when color output is disabled or the writer is not a terminal.
func ErrorHighlighter(f *os.File, noColor bool) func(string) string {
	if noColor || f == nil {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	red := text.Colors{text.FgRed}
	return func(s string) string { return red.Sprint(s) }
}
