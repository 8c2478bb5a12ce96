package scoring

import (
	"math"
	"testing"
)

func TestFinalizeSingleSubstitutionLine(t *testing.T) {
	acc := NewAccumulator(Options{})
	acc.Add(mustProcess(t, "the cat sat", "the dog sat", Options{}))

	m := Finalize(acc.Totals())
	if math.Abs(m.WER-1.0/3.0) > 1e-12 {
		t.Errorf("WER = %v, want 1/3", m.WER)
	}
	if math.Abs(m.WRR-2.0/3.0) > 1e-12 {
		t.Errorf("WRR = %v, want 2/3", m.WRR)
	}
	if m.SER != 1.0 {
		t.Errorf("SER = %v, want 1.0", m.SER)
	}
	if m.Sentences != 1 || m.RefTokens != 3 || m.Matches != 2 || m.Errors != 1 {
		t.Errorf("raw counts wrong: %+v", m)
	}
}

func TestFinalizeZeroDenominators(t *testing.T) {
	m := Finalize(CorpusTotals{})
	if m.WER != 0.0 || m.WRR != 0.0 || m.SER != 0.0 {
		t.Errorf("zero totals: wer=%v wrr=%v ser=%v, want all 0.0", m.WER, m.WRR, m.SER)
	}
	// The raw counts expose the degenerate denominators.
	if m.RefTokens != 0 || m.Sentences != 0 {
		t.Errorf("raw counts = %+v, want zeros", m)
	}
}

func TestFinalizeRatesInUnitInterval(t *testing.T) {
	totals := []CorpusTotals{
		{Sentences: 4, RefTokens: 20, Matches: 15, Errors: 5, ErrSentences: 3},
		{Sentences: 1, RefTokens: 3, Matches: 3, Errors: 0, ErrSentences: 0},
		{Sentences: 2, RefTokens: 5, Matches: 0, Errors: 5, ErrSentences: 2},
	}
	for _, tc := range totals {
		m := Finalize(tc)
		for name, rate := range map[string]float64{"wer": m.WER, "wrr": m.WRR, "ser": m.SER} {
			if rate < 0 || rate > 1 {
				t.Errorf("%s = %v for totals %+v, want within [0, 1]", name, rate, tc)
			}
		}
	}
}

func TestFinalizeIdempotent(t *testing.T) {
	totals := CorpusTotals{Sentences: 7, RefTokens: 31, Matches: 24, Errors: 9, ErrSentences: 5}
	first := Finalize(totals)
	for i := 0; i < 3; i++ {
		if again := Finalize(totals); again != first {
			t.Fatalf("Finalize not idempotent: %+v vs %+v", again, first)
		}
	}
}
