package align

// OpKind identifies a single alignment operation.
type OpKind string

const (
	OpEqual   OpKind = "equal"
	OpInsert  OpKind = "insert"
	OpDelete  OpKind = "delete"
	OpReplace OpKind = "replace"
)

// Op covers a half-open range of the reference sequence [RefStart, RefEnd)
// and of the hypothesis sequence [HypStart, HypEnd). Insert ops have an empty
// reference range; delete ops have an empty hypothesis range.
type Op struct {
	Kind     OpKind
	RefStart int
	RefEnd   int
	HypStart int
	HypEnd   int
}

// RefLen returns the number of reference tokens covered by the op.
func (o Op) RefLen() int { return o.RefEnd - o.RefStart }

// HypLen returns the number of hypothesis tokens covered by the op.
func (o Op) HypLen() int { return o.HypEnd - o.HypStart }

// Alignment is the result of aligning a reference sequence against a
// hypothesis sequence. Ops partition both sequences in order.
type Alignment struct {
	Ops      []Op
	Distance int
	Matches  int
}

// Sequences aligns ref against hyp and returns the resulting operations,
// edit distance, and match count. Consecutive operations of the same kind
// are merged into a single ranged op.
func Sequences(ref, hyp []string) Alignment {
	n, m := len(ref), len(hyp)

	// Full DP matrix so the backtrace can recover every operation.
	dist := make([][]int, n+1)
	for i := range dist {
		dist[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		dist[i][0] = i
	}
	for j := 1; j <= m; j++ {
		dist[0][j] = j
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := 1
			if ref[i-1] == hyp[j-1] {
				cost = 0
			}
			best := dist[i-1][j-1] + cost
			if del := dist[i-1][j] + 1; del < best {
				best = del
			}
			if ins := dist[i][j-1] + 1; ins < best {
				best = ins
			}
			dist[i][j] = best
		}
	}

	steps := backtrace(dist, ref, hyp)

	al := Alignment{Distance: dist[n][m]}
	for _, step := range steps {
		if step.kind == OpEqual {
			al.Matches++
		}
		last := len(al.Ops) - 1
		if last >= 0 && al.Ops[last].Kind == step.kind {
			al.Ops[last].RefEnd = step.refEnd
			al.Ops[last].HypEnd = step.hypEnd
			continue
		}
		al.Ops = append(al.Ops, Op{
			Kind:     step.kind,
			RefStart: step.refEnd - step.refSpan(),
			RefEnd:   step.refEnd,
			HypStart: step.hypEnd - step.hypSpan(),
			HypEnd:   step.hypEnd,
		})
	}
	return al
}

type step struct {
	kind   OpKind
	refEnd int
	hypEnd int
}

func (s step) refSpan() int {
	if s.kind == OpInsert {
		return 0
	}
	return 1
}

func (s step) hypSpan() int {
	if s.kind == OpDelete {
		return 0
	}
	return 1
}

// backtrace walks the DP matrix from the bottom-right corner and returns
// single-token steps in forward order. Ties prefer the diagonal move, then
// deletion, then insertion, which keeps op order deterministic.
func backtrace(dist [][]int, ref, hyp []string) []step {
	i, j := len(ref), len(hyp)
	steps := make([]step, 0, i+j)
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && ref[i-1] == hyp[j-1] && dist[i][j] == dist[i-1][j-1]:
			steps = append(steps, step{OpEqual, i, j})
			i, j = i-1, j-1
		case i > 0 && j > 0 && dist[i][j] == dist[i-1][j-1]+1:
			steps = append(steps, step{OpReplace, i, j})
			i, j = i-1, j-1
		case i > 0 && dist[i][j] == dist[i-1][j]+1:
			steps = append(steps, step{OpDelete, i, j})
			i--
		default:
			steps = append(steps, step{OpInsert, i, j})
			j--
		}
	}
	for lo, hi := 0, len(steps)-1; lo < hi; lo, hi = lo+1, hi-1 {
		steps[lo], steps[hi] = steps[hi], steps[lo]
	}
	return steps
}
