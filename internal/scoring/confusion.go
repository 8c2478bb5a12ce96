package scoring

import (
	"sort"

	"asreval/internal/align"
)

// SubstitutionKey identifies one (reference token, hypothesis token) pair in
// the substitution table.
type SubstitutionKey struct {
	Ref string
	Hyp string
}

// ConfusionTables tracks how often individual tokens are inserted or deleted
// and which token pairs get substituted for one another. Counts accumulate
// monotonically over a run; they are never reset.
type ConfusionTables struct {
	Insertions    map[string]int
	Deletions     map[string]int
	Substitutions map[SubstitutionKey]int
}

// NewConfusionTables returns empty tables.
func NewConfusionTables() *ConfusionTables {
	return &ConfusionTables{
		Insertions:    make(map[string]int),
		Deletions:     make(map[string]int),
		Substitutions: make(map[SubstitutionKey]int),
	}
}

// record walks the line's alignment ops and bumps the relevant counters.
// A replace spanning M reference tokens and N hypothesis tokens contributes
// the full MxN cross product of pairs, not a positional pairing.
func (t *ConfusionTables) record(res LineResult) {
	for _, op := range res.Alignment.Ops {
		switch op.Kind {
		case align.OpInsert:
			for _, token := range res.Hyp[op.HypStart:op.HypEnd] {
				t.Insertions[token]++
			}
		case align.OpDelete:
			for _, token := range res.Ref[op.RefStart:op.RefEnd] {
				t.Deletions[token]++
			}
		case align.OpReplace:
			for _, refToken := range res.Ref[op.RefStart:op.RefEnd] {
				for _, hypToken := range res.Hyp[op.HypStart:op.HypEnd] {
					t.Substitutions[SubstitutionKey{Ref: refToken, Hyp: hypToken}]++
				}
			}
		}
	}
}

// ConfusionEntry is one ranked row of an insertion or deletion table.
type ConfusionEntry struct {
	Token string `json:"token"`
	Count int    `json:"count"`
}

// SubstitutionEntry is one ranked row of the substitution table.
type SubstitutionEntry struct {
	Ref   string `json:"ref"`
	Hyp   string `json:"hyp"`
	Count int    `json:"count"`
}

// RankConfusions filters entries below minCount and sorts the rest by count
// descending, breaking ties by token so the order is deterministic.
func RankConfusions(table map[string]int, minCount int) []ConfusionEntry {
	entries := make([]ConfusionEntry, 0, len(table))
	for token, count := range table {
		if count >= minCount {
			entries = append(entries, ConfusionEntry{Token: token, Count: count})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})
	return entries
}

// RankSubstitutions filters and sorts the substitution table by count
// descending, with lexicographic (ref, hyp) tie-breaking.
func RankSubstitutions(table map[SubstitutionKey]int, minCount int) []SubstitutionEntry {
	entries := make([]SubstitutionEntry, 0, len(table))
	for key, count := range table {
		if count >= minCount {
			entries = append(entries, SubstitutionEntry{Ref: key.Ref, Hyp: key.Hyp, Count: count})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		if entries[i].Ref != entries[j].Ref {
			return entries[i].Ref < entries[j].Ref
		}
		return entries[i].Hyp < entries[j].Hyp
	})
	return entries
}
