package scoring

import (
	"math"
	"testing"

	"asreval/internal/align"
)

func mustProcess(t *testing.T, refLine, hypLine string, opts Options) LineResult {
	t.Helper()
	res, err := ProcessLinePair(refLine, hypLine, opts)
	if err != nil {
		t.Fatalf("ProcessLinePair(%q, %q): %v", refLine, hypLine, err)
	}
	return res
}

func TestAccumulatorTotals(t *testing.T) {
	acc := NewAccumulator(Options{})
	acc.Add(mustProcess(t, "the cat sat", "the cat sat", Options{}))
	acc.Add(mustProcess(t, "the cat sat", "the dog sat", Options{}))

	totals := acc.Totals()
	if totals.Sentences != 2 {
		t.Errorf("Sentences = %d, want 2", totals.Sentences)
	}
	if totals.RefTokens != 6 {
		t.Errorf("RefTokens = %d, want 6", totals.RefTokens)
	}
	if totals.Matches != 5 {
		t.Errorf("Matches = %d, want 5", totals.Matches)
	}
	if totals.Errors != 1 {
		t.Errorf("Errors = %d, want 1", totals.Errors)
	}
	if totals.ErrSentences != 1 {
		t.Errorf("ErrSentences = %d, want 1", totals.ErrSentences)
	}
}

func TestAccumulatorIgnoresSkippedLines(t *testing.T) {
	opts := Options{RemoveEmptyRefs: true}
	acc := NewAccumulator(opts)
	acc.Add(mustProcess(t, "", "hello", opts))

	totals := acc.Totals()
	if totals != (CorpusTotals{}) {
		t.Errorf("totals changed by skipped line: %+v", totals)
	}
}

func TestAccumulatorConfusionTracking(t *testing.T) {
	opts := Options{TrackConfusions: true}
	acc := NewAccumulator(opts)
	acc.Add(mustProcess(t, "the cat sat", "the dog sat", opts))
	acc.Add(mustProcess(t, "a b", "a b c", opts))
	acc.Add(mustProcess(t, "x y z", "y z", opts))

	tables := acc.Confusions()
	if tables == nil {
		t.Fatal("Confusions() = nil with tracking enabled")
	}
	if got := tables.Substitutions[SubstitutionKey{Ref: "cat", Hyp: "dog"}]; got != 1 {
		t.Errorf("substitution cat->dog = %d, want 1", got)
	}
	if got := tables.Insertions["c"]; got != 1 {
		t.Errorf("insertion c = %d, want 1", got)
	}
	if got := tables.Deletions["x"]; got != 1 {
		t.Errorf("deletion x = %d, want 1", got)
	}
}

func TestAccumulatorSubstitutionCrossProduct(t *testing.T) {
	// A replace of ["a","b"] against ["x","y","z"] must produce all six
	// pairs, each counted once.
	res := LineResult{
		Processed: true,
		RefLength: 2,
		Errors:    3,
		Ref:       []string{"a", "b"},
		Hyp:       []string{"x", "y", "z"},
		Alignment: align.Alignment{
			Ops: []align.Op{
				{Kind: align.OpReplace, RefStart: 0, RefEnd: 2, HypStart: 0, HypEnd: 3},
			},
			Distance: 3,
		},
	}

	opts := Options{TrackConfusions: true}
	acc := NewAccumulator(opts)
	acc.Add(res)

	tables := acc.Confusions()
	if len(tables.Substitutions) != 6 {
		t.Fatalf("substitution entries = %d, want 6", len(tables.Substitutions))
	}
	for _, ref := range []string{"a", "b"} {
		for _, hyp := range []string{"x", "y", "z"} {
			if got := tables.Substitutions[SubstitutionKey{Ref: ref, Hyp: hyp}]; got != 1 {
				t.Errorf("substitution %s->%s = %d, want 1", ref, hyp, got)
			}
		}
	}
}

func TestAccumulatorConfusionsNilWhenDisabled(t *testing.T) {
	acc := NewAccumulator(Options{})
	acc.Add(mustProcess(t, "a", "b", Options{}))
	if acc.Confusions() != nil {
		t.Error("Confusions() != nil with tracking disabled")
	}
	if acc.LengthBins() != nil {
		t.Error("LengthBins() != nil with tracking disabled")
	}
}

func TestAccumulatorLengthBins(t *testing.T) {
	opts := Options{TrackLengthBins: true}
	acc := NewAccumulator(opts)
	acc.Add(mustProcess(t, "the cat sat", "the dog sat", opts))
	acc.Add(mustProcess(t, "the cat sat", "the cat sat", opts))
	acc.Add(mustProcess(t, "hi", "hi", opts))

	bins := acc.LengthBins()
	if len(bins[3]) != 2 {
		t.Fatalf("bin 3 has %d rates, want 2", len(bins[3]))
	}
	if got := bins[3][0]; math.Abs(got-1.0/3.0) > 1e-12 {
		t.Errorf("bin 3 first rate = %v, want 1/3", got)
	}
	if got := bins[3][1]; got != 0 {
		t.Errorf("bin 3 second rate = %v, want 0", got)
	}
	if len(bins[1]) != 1 || bins[1][0] != 0 {
		t.Errorf("bin 1 = %v, want [0]", bins[1])
	}
}

func TestAccumulatorLengthBinEmptyRefIsInf(t *testing.T) {
	opts := Options{TrackLengthBins: true}
	acc := NewAccumulator(opts)
	acc.Add(mustProcess(t, "", "hello", opts))

	bins := acc.LengthBins()
	if len(bins[0]) != 1 || !math.IsInf(bins[0][0], 1) {
		t.Errorf("bin 0 = %v, want [+Inf]", bins[0])
	}
}

func TestAccumulatorsIndependent(t *testing.T) {
	opts := Options{TrackConfusions: true}
	first := NewAccumulator(opts)
	second := NewAccumulator(opts)

	first.Add(mustProcess(t, "a", "b", opts))

	if second.Totals().Sentences != 0 {
		t.Error("second accumulator saw the first accumulator's line")
	}
	if len(second.Confusions().Substitutions) != 0 {
		t.Error("second accumulator's tables are not empty")
	}
}
