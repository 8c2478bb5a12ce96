package scoring

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"asreval/internal/align"
)

// LineResult carries everything derived from one reference/hypothesis pair.
// Processed reports whether the pair counts toward aggregates; a skipped pair
// (empty reference under Options.RemoveEmptyRefs) contributes to nothing.
type LineResult struct {
	Processed bool
	ID        string
	RefLength int
	Matches   int
	Errors    int

	// Ref and Hyp hold the post-strip, post-fold token sequences the
	// alignment was computed over, for confusion tracking and diff output.
	Ref       []string
	Hyp       []string
	Alignment align.Alignment
}

// ProcessLinePair tokenizes, normalizes, and aligns a single line pair.
//
// It returns an *IDMismatchError when an ID mode is configured and the
// extracted IDs differ; that error is fatal to the whole run. Any other error
// indicates an internal invariant violation.
func ProcessLinePair(refLine, hypLine string, opts Options) (LineResult, error) {
	ref := strings.Fields(refLine)
	hyp := strings.Fields(hypLine)

	var id string
	switch opts.IDMode {
	case IDModeHead, IDModeTail:
		var err error
		if ref, hyp, id, err = stripID(ref, hyp, opts.IDMode); err != nil {
			return LineResult{}, err
		}
	}

	if opts.CaseInsensitive {
		ref = foldTokens(ref)
		hyp = foldTokens(hyp)
	}

	if opts.RemoveEmptyRefs && len(ref) == 0 {
		return LineResult{ID: id}, nil
	}

	al := align.Sequences(ref, hyp)

	matches := 0
	errors := 0
	for _, op := range al.Ops {
		if op.Kind == align.OpEqual {
			matches += op.RefLen()
			continue
		}
		span := op.RefLen()
		if hypSpan := op.HypLen(); hypSpan > span {
			span = hypSpan
		}
		errors += span
	}

	// The aligner reports its own match count; the equal ranges must agree
	// with it. Neither figure is trusted alone.
	if matches != al.Matches {
		return LineResult{}, fmt.Errorf("match count mismatch: equal ops cover %d tokens, aligner reported %d", matches, al.Matches)
	}

	return LineResult{
		Processed: true,
		ID:        id,
		RefLength: len(ref),
		Matches:   matches,
		Errors:    errors,
		Ref:       ref,
		Hyp:       hyp,
		Alignment: al,
	}, nil
}

func stripID(ref, hyp []string, mode IDMode) ([]string, []string, string, error) {
	if len(ref) == 0 || len(hyp) == 0 {
		return nil, nil, "", fmt.Errorf("%s id: line has no tokens to extract an ID from", mode)
	}
	refIdx, hypIdx := 0, 0
	if mode == IDModeTail {
		refIdx, hypIdx = len(ref)-1, len(hyp)-1
	}
	refID, hypID := ref[refIdx], hyp[hypIdx]
	if refID != hypID {
		return nil, nil, "", &IDMismatchError{Ref: refID, Hyp: hypID}
	}
	if mode == IDModeHead {
		return ref[1:], hyp[1:], refID, nil
	}
	return ref[:len(ref)-1], hyp[:len(hyp)-1], refID, nil
}

// foldTokens lowercases tokens with Unicode-aware casing so case-insensitive
// comparison is not limited to ASCII.
func foldTokens(tokens []string) []string {
	if len(tokens) == 0 {
		return tokens
	}
	caser := cases.Lower(language.Und)
	folded := make([]string, len(tokens))
	for i, token := range tokens {
		folded[i] = caser.String(token)
	}
	return folded
}
