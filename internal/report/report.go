package report

import (
	"fmt"
	"io"
	"math"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"asreval/internal/diff"
	"asreval/internal/scoring"
)

// WriteSummary prints the end-of-run metrics block: sentence count and the
// three rates, each with its raw numerator and denominator.
func WriteSummary(w io.Writer, m scoring.MetricsResult) error {
	if _, err := fmt.Fprintf(w, "Sentence count: %d\n", m.Sentences); err != nil {
		return err
	}
	rows := []struct {
		label string
		rate  float64
		num   int
		den   int
	}{
		{"WER", m.WER, m.Errors, m.RefTokens},
		{"WRR", m.WRR, m.Matches, m.RefTokens},
		{"SER", m.SER, m.ErrSentences, m.Sentences},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(w, "%s: %9.3f%% (%10d / %10d)\n", row.label, row.rate*100, row.num, row.den); err != nil {
			return err
		}
	}
	return nil
}

// WriteInstance prints one aligned line pair: the two-line diff, the sentence
// header, and the per-line correct/error rates. seq is the 1-based ordinal of
// the line among processed lines. highlight may be nil for plain output.
func WriteInstance(w io.Writer, seq int, res scoring.LineResult, highlight func(string) string) error {
	pair := diff.Render(res.Alignment, res.Ref, res.Hyp)
	refLine, hypLine := diff.Format(pair, diff.FormatOptions{
		RefPrefix: "REF:",
		HypPrefix: "HYP:",
		Highlight: highlight,
	})
	if _, err := fmt.Fprintln(w, refLine); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, hypLine); err != nil {
		return err
	}

	if res.ID != "" {
		if _, err := fmt.Fprintf(w, "SENTENCE %d  %s\n", seq, res.ID); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(w, "SENTENCE %d\n", seq); err != nil {
			return err
		}
	}

	correctRate, errorRate := instanceRates(res)
	if _, err := fmt.Fprintf(w, "Correct          = %6.1f%%  %3d   (%6d)\n", correctRate*100, res.Matches, res.RefLength); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Errors           = %6.1f%%  %3d   (%6d)\n", errorRate*100, res.Alignment.Distance, res.RefLength)
	return err
}

// instanceRates handles the empty-reference edge without dividing by zero: a
// hypothesis that also matched nothing counts as fully correct.
func instanceRates(res scoring.LineResult) (correct, errors float64) {
	if res.RefLength > 0 {
		return float64(res.Matches) / float64(res.RefLength),
			float64(res.Alignment.Distance) / float64(res.RefLength)
	}
	if res.Matches == 0 {
		return 1.0, 0.0
	}
	return 0.0, float64(res.Matches)
}

// WriteConfusions prints the ranked insertion, deletion, and substitution
// tables. Sections whose underlying table is empty are omitted; rows below
// minCount are filtered out.
func WriteConfusions(w io.Writer, tables *scoring.ConfusionTables, minCount int) error {
	if tables == nil {
		return nil
	}

	if len(tables.Insertions) > 0 {
		if err := writeTokenTable(w, "INSERTIONS", scoring.RankConfusions(tables.Insertions, minCount)); err != nil {
			return err
		}
	}
	if len(tables.Deletions) > 0 {
		if err := writeTokenTable(w, "DELETIONS", scoring.RankConfusions(tables.Deletions, minCount)); err != nil {
			return err
		}
	}
	if len(tables.Substitutions) > 0 {
		if _, err := fmt.Fprintln(w, "SUBSTITUTIONS:"); err != nil {
			return err
		}
		tw := table.NewWriter()
		tw.SetStyle(table.StyleRounded)
		tw.AppendHeader(table.Row{"REF", "HYP", "COUNT"})
		for _, entry := range scoring.RankSubstitutions(tables.Substitutions, minCount) {
			tw.AppendRow(table.Row{entry.Ref, entry.Hyp, entry.Count})
		}
		tw.SetColumnConfigs([]table.ColumnConfig{
			{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		})
		if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
			return err
		}
	}
	return nil
}

func writeTokenTable(w io.Writer, title string, entries []scoring.ConfusionEntry) error {
	if _, err := fmt.Fprintf(w, "%s:\n", title); err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"TOKEN", "COUNT"})
	for _, entry := range entries {
		tw.AppendRow(table.Row{entry.Token, entry.Count})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

// WriteLengthReport prints the mean error rate per reference length, best
// lengths first.
func WriteLengthReport(w io.Writer, bins scoring.LengthBins) error {
	if bins == nil {
		return nil
	}
	if _, err := fmt.Fprintln(w, "WER BY SENTENCE LENGTH:"); err != nil {
		return err
	}
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"LENGTH", "MEAN WER", "LINES"})
	for _, row := range scoring.LengthVsErrorReport(bins) {
		tw.AppendRow(table.Row{row.Length, formatRate(row.MeanErrorRate), row.Lines})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	_, err := fmt.Fprintln(w, tw.Render())
	return err
}

func formatRate(rate float64) string {
	switch {
	case math.IsNaN(rate):
		return "n/a"
	case math.IsInf(rate, 1):
		return "inf"
	default:
		return fmt.Sprintf("%.6f", rate)
	}
}
