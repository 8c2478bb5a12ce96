package diff

import (
	"strings"
	"unicode/utf8"

	"asreval/internal/align"
)

// Segment is one display token. Highlight marks segments produced by
// non-equal alignment ops.
type Segment struct {
	Text      string
	Highlight bool
}

// Pair holds the parallel segment lists for the reference and hypothesis
// views of one aligned line.
type Pair struct {
	Ref []Segment
	Hyp []Segment
}

// Render maps an alignment and its token sequences to display segments.
//
// Equal tokens render lowercase. A deleted reference token renders uppercase
// with an asterisk filler of the same width on the hypothesis side; insertions
// are symmetric. Replaced token groups are padded to the same slot count, each
// slot's shorter token padded with trailing spaces so the columns line up, and
// a missing token renders as an asterisk filler sized to its counterpart.
func Render(al align.Alignment, ref, hyp []string) Pair {
	var pair Pair
	for _, op := range al.Ops {
		switch op.Kind {
		case align.OpEqual:
			for _, token := range ref[op.RefStart:op.RefEnd] {
				pair.Ref = append(pair.Ref, Segment{Text: strings.ToLower(token)})
			}
			for _, token := range hyp[op.HypStart:op.HypEnd] {
				pair.Hyp = append(pair.Hyp, Segment{Text: strings.ToLower(token)})
			}
		case align.OpDelete:
			for _, token := range ref[op.RefStart:op.RefEnd] {
				pair.Ref = append(pair.Ref, Segment{Text: strings.ToUpper(token), Highlight: true})
				pair.Hyp = append(pair.Hyp, Segment{Text: filler(utf8.RuneCountInString(token)), Highlight: true})
			}
		case align.OpInsert:
			for _, token := range hyp[op.HypStart:op.HypEnd] {
				pair.Ref = append(pair.Ref, Segment{Text: filler(utf8.RuneCountInString(token)), Highlight: true})
				pair.Hyp = append(pair.Hyp, Segment{Text: strings.ToUpper(token), Highlight: true})
			}
		case align.OpReplace:
			refSegs, hypSegs := renderReplace(ref[op.RefStart:op.RefEnd], hyp[op.HypStart:op.HypEnd])
			pair.Ref = append(pair.Ref, refSegs...)
			pair.Hyp = append(pair.Hyp, hypSegs...)
		}
	}
	return pair
}

func renderReplace(refGroup, hypGroup []string) ([]Segment, []Segment) {
	slots := len(refGroup)
	if len(hypGroup) > slots {
		slots = len(hypGroup)
	}

	refSegs := make([]Segment, 0, slots)
	hypSegs := make([]Segment, 0, slots)
	for i := 0; i < slots; i++ {
		var refToken, hypToken string
		if i < len(refGroup) {
			refToken = strings.ToUpper(refGroup[i])
		}
		if i < len(hypGroup) {
			hypToken = strings.ToUpper(hypGroup[i])
		}
		// Widths count runes, not bytes, so non-ASCII tokens keep the
		// two columns aligned.
		refWidth := utf8.RuneCountInString(refToken)
		hypWidth := utf8.RuneCountInString(hypToken)
		switch {
		case refToken == "":
			refToken = filler(hypWidth)
		case hypToken == "":
			hypToken = filler(refWidth)
		case refWidth < hypWidth:
			refToken += strings.Repeat(" ", hypWidth-refWidth)
		case hypWidth < refWidth:
			hypToken += strings.Repeat(" ", refWidth-hypWidth)
		}
		refSegs = append(refSegs, Segment{Text: refToken, Highlight: true})
		hypSegs = append(hypSegs, Segment{Text: hypToken, Highlight: true})
	}
	return refSegs, hypSegs
}

func filler(width int) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat("*", width)
}

// FormatOptions controls how a rendered pair is joined into display lines.
// Highlight, when set, wraps highlighted segments (typically with ANSI
// color); nil leaves them plain.
type FormatOptions struct {
	RefPrefix string
	HypPrefix string
	RefSuffix string
	HypSuffix string
	Highlight func(string) string
}

// Format joins the segment lists into the reference and hypothesis display
// lines, space separated, with optional prefixes and suffixes.
func Format(pair Pair, opts FormatOptions) (string, string) {
	return formatLine(pair.Ref, opts.RefPrefix, opts.RefSuffix, opts.Highlight),
		formatLine(pair.Hyp, opts.HypPrefix, opts.HypSuffix, opts.Highlight)
}

func formatLine(segments []Segment, prefix, suffix string, highlight func(string) string) string {
	parts := make([]string, 0, len(segments)+2)
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for _, segment := range segments {
		text := segment.Text
		if segment.Highlight && highlight != nil {
			text = highlight(text)
		}
		parts = append(parts, text)
	}
	if suffix != "" {
		parts = append(parts, suffix)
	}
	return strings.Join(parts, " ")
}
