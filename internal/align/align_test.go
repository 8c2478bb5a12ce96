package align

import (
	"strings"
	"testing"
)

func checkPartition(t *testing.T, al Alignment, refLen, hypLen int) {
	t.Helper()

	refNext, hypNext := 0, 0
	for i, op := range al.Ops {
		if op.RefStart != refNext {
			t.Errorf("op %d: ref range starts at %d, want %d", i, op.RefStart, refNext)
		}
		if op.HypStart != hypNext {
			t.Errorf("op %d: hyp range starts at %d, want %d", i, op.HypStart, hypNext)
		}
		if op.RefEnd < op.RefStart || op.HypEnd < op.HypStart {
			t.Errorf("op %d: inverted range %+v", i, op)
		}
		refNext = op.RefEnd
		hypNext = op.HypEnd
	}
	if refNext != refLen {
		t.Errorf("ref ranges cover %d tokens, want %d", refNext, refLen)
	}
	if hypNext != hypLen {
		t.Errorf("hyp ranges cover %d tokens, want %d", hypNext, hypLen)
	}
}

func TestSequencesPartitionInvariant(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		hyp  string
	}{
		{"identical", "the cat sat", "the cat sat"},
		{"substitution", "the cat sat", "the dog sat"},
		{"insertion", "a b c", "a b x c"},
		{"deletion", "a b x c", "a b c"},
		{"disjoint", "one two three", "four five"},
		{"empty ref", "", "hello world"},
		{"empty hyp", "hello world", ""},
		{"both empty", "", ""},
		{"mixed edits", "a b c d e f", "a x c e f g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := strings.Fields(tt.ref)
			hyp := strings.Fields(tt.hyp)
			al := Sequences(ref, hyp)
			checkPartition(t, al, len(ref), len(hyp))
		})
	}
}

func TestSequencesIdentical(t *testing.T) {
	ref := strings.Fields("the quick brown fox")
	al := Sequences(ref, ref)

	if al.Distance != 0 {
		t.Errorf("Distance = %d, want 0", al.Distance)
	}
	if al.Matches != len(ref) {
		t.Errorf("Matches = %d, want %d", al.Matches, len(ref))
	}
	if len(al.Ops) != 1 || al.Ops[0].Kind != OpEqual {
		t.Fatalf("Ops = %+v, want single equal op", al.Ops)
	}
}

func TestSequencesSubstitution(t *testing.T) {
	al := Sequences(strings.Fields("the cat sat"), strings.Fields("the dog sat"))

	if al.Distance != 1 {
		t.Errorf("Distance = %d, want 1", al.Distance)
	}
	if al.Matches != 2 {
		t.Errorf("Matches = %d, want 2", al.Matches)
	}

	var replaces []Op
	for _, op := range al.Ops {
		if op.Kind == OpReplace {
			replaces = append(replaces, op)
		}
	}
	if len(replaces) != 1 {
		t.Fatalf("want exactly one replace op, got %+v", al.Ops)
	}
	op := replaces[0]
	if op.RefStart != 1 || op.RefEnd != 2 || op.HypStart != 1 || op.HypEnd != 2 {
		t.Errorf("replace op ranges = %+v, want [1,2) on both sides", op)
	}
}

func TestSequencesEmptyReference(t *testing.T) {
	hyp := strings.Fields("hello there")
	al := Sequences(nil, hyp)

	if al.Distance != 2 {
		t.Errorf("Distance = %d, want 2", al.Distance)
	}
	if al.Matches != 0 {
		t.Errorf("Matches = %d, want 0", al.Matches)
	}
	if len(al.Ops) != 1 || al.Ops[0].Kind != OpInsert {
		t.Fatalf("Ops = %+v, want single insert op", al.Ops)
	}
	if al.Ops[0].HypLen() != 2 || al.Ops[0].RefLen() != 0 {
		t.Errorf("insert op spans = %+v", al.Ops[0])
	}
}

func TestSequencesEmptyHypothesis(t *testing.T) {
	ref := strings.Fields("hello there friend")
	al := Sequences(ref, nil)

	if al.Distance != 3 {
		t.Errorf("Distance = %d, want 3", al.Distance)
	}
	if len(al.Ops) != 1 || al.Ops[0].Kind != OpDelete {
		t.Fatalf("Ops = %+v, want single delete op", al.Ops)
	}
}

func TestSequencesMergesRuns(t *testing.T) {
	// Two adjacent substitutions should collapse into one ranged replace.
	al := Sequences(strings.Fields("a b c d"), strings.Fields("a x y d"))

	if al.Distance != 2 {
		t.Errorf("Distance = %d, want 2", al.Distance)
	}
	want := []OpKind{OpEqual, OpReplace, OpEqual}
	if len(al.Ops) != len(want) {
		t.Fatalf("Ops = %+v, want kinds %v", al.Ops, want)
	}
	for i, kind := range want {
		if al.Ops[i].Kind != kind {
			t.Errorf("op %d kind = %s, want %s", i, al.Ops[i].Kind, kind)
		}
	}
	if al.Ops[1].RefLen() != 2 || al.Ops[1].HypLen() != 2 {
		t.Errorf("replace op = %+v, want 2x2 span", al.Ops[1])
	}
}

func TestSequencesMatchesEqualOpCoverage(t *testing.T) {
	tests := []struct {
		ref string
		hyp string
	}{
		{"the cat sat on the mat", "the cat sat on the mat"},
		{"the cat sat", "the dog sat"},
		{"a b c d e", "b c d"},
		{"x", "a b c x d"},
		{"", ""},
	}

	for _, tt := range tests {
		al := Sequences(strings.Fields(tt.ref), strings.Fields(tt.hyp))
		covered := 0
		for _, op := range al.Ops {
			if op.Kind == OpEqual {
				covered += op.RefLen()
			}
		}
		if covered != al.Matches {
			t.Errorf("Sequences(%q, %q): equal ops cover %d, Matches = %d",
				tt.ref, tt.hyp, covered, al.Matches)
		}
	}
}

func TestSequencesDeterministic(t *testing.T) {
	ref := strings.Fields("a b c d e f g")
	hyp := strings.Fields("a c x e g h")

	first := Sequences(ref, hyp)
	for run := 0; run < 5; run++ {
		again := Sequences(ref, hyp)
		if len(again.Ops) != len(first.Ops) {
			t.Fatalf("run %d: op count changed: %d vs %d", run, len(again.Ops), len(first.Ops))
		}
		for i := range again.Ops {
			if again.Ops[i] != first.Ops[i] {
				t.Fatalf("run %d: op %d changed: %+v vs %+v", run, i, again.Ops[i], first.Ops[i])
			}
		}
	}
}
