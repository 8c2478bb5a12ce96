package report

import (
	"strings"
	"testing"

	"asreval/internal/scoring"
)

func TestWriteSummary(t *testing.T) {
	m := scoring.Finalize(scoring.CorpusTotals{
		Sentences:    2,
		RefTokens:    6,
		Matches:      5,
		Errors:       1,
		ErrSentences: 1,
	})

	var buf strings.Builder
	if err := WriteSummary(&buf, m); err != nil {
		t.Fatalf("WriteSummary: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Sentence count: 2",
		"WER:",
		"WRR:",
		"SER:",
		"16.667%",
		"83.333%",
		"50.000%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestWriteInstance(t *testing.T) {
	res, err := scoring.ProcessLinePair("the cat sat", "the dog sat", scoring.Options{})
	if err != nil {
		t.Fatalf("ProcessLinePair: %v", err)
	}

	var buf strings.Builder
	if err := WriteInstance(&buf, 3, res, nil); err != nil {
		t.Fatalf("WriteInstance: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"REF: the CAT sat",
		"HYP: the DOG sat",
		"SENTENCE 3",
		"Correct",
		"Errors",
		"66.7%",
		"33.3%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("instance output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteInstanceWithID(t *testing.T) {
	res, err := scoring.ProcessLinePair("U1 a b", "U1 a b", scoring.Options{IDMode: scoring.IDModeHead})
	if err != nil {
		t.Fatalf("ProcessLinePair: %v", err)
	}

	var buf strings.Builder
	if err := WriteInstance(&buf, 1, res, nil); err != nil {
		t.Fatalf("WriteInstance: %v", err)
	}
	if !strings.Contains(buf.String(), "SENTENCE 1  U1") {
		t.Errorf("output missing sentence ID:\n%s", buf.String())
	}
}

func TestWriteInstanceEmptyReference(t *testing.T) {
	res, err := scoring.ProcessLinePair("", "", scoring.Options{})
	if err != nil {
		t.Fatalf("ProcessLinePair: %v", err)
	}

	var buf strings.Builder
	if err := WriteInstance(&buf, 1, res, nil); err != nil {
		t.Fatalf("WriteInstance: %v", err)
	}
	if !strings.Contains(buf.String(), "Correct          =  100.0%") {
		t.Errorf("empty ref should report 100%% correct:\n%s", buf.String())
	}
}

func TestWriteConfusions(t *testing.T) {
	tables := scoring.NewConfusionTables()
	tables.Insertions["uh"] = 3
	tables.Deletions["the"] = 2
	tables.Substitutions[scoring.SubstitutionKey{Ref: "cat", Hyp: "hat"}] = 4

	var buf strings.Builder
	if err := WriteConfusions(&buf, tables, 1); err != nil {
		t.Fatalf("WriteConfusions: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"INSERTIONS:", "DELETIONS:", "SUBSTITUTIONS:", "uh", "the", "cat", "hat"} {
		if !strings.Contains(out, want) {
			t.Errorf("confusion output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteConfusionsSkipsEmptySections(t *testing.T) {
	tables := scoring.NewConfusionTables()
	tables.Insertions["uh"] = 1

	var buf strings.Builder
	if err := WriteConfusions(&buf, tables, 1); err != nil {
		t.Fatalf("WriteConfusions: %v", err)
	}
	out := buf.String()
	if strings.Contains(out, "DELETIONS:") || strings.Contains(out, "SUBSTITUTIONS:") {
		t.Errorf("empty sections should be omitted:\n%s", out)
	}
}

func TestWriteConfusionsNilTables(t *testing.T) {
	var buf strings.Builder
	if err := WriteConfusions(&buf, nil, 0); err != nil {
		t.Fatalf("WriteConfusions(nil): %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("nil tables produced output: %q", buf.String())
	}
}

func TestWriteLengthReport(t *testing.T) {
	bins := scoring.LengthBins{
		3: {0.0, 1.0 / 3.0},
		5: {0.2},
	}

	var buf strings.Builder
	if err := WriteLengthReport(&buf, bins); err != nil {
		t.Fatalf("WriteLengthReport: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "WER BY SENTENCE LENGTH:") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "0.166667") {
		t.Errorf("missing mean for length 3:\n%s", out)
	}
	if !strings.Contains(out, "0.200000") {
		t.Errorf("missing mean for length 5:\n%s", out)
	}
}
