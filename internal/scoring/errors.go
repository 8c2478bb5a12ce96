package scoring

import "fmt"

// IDMismatchError reports that a line's extracted reference and hypothesis
// IDs disagree. It indicates the two input files are out of step, so the run
// is aborted rather than continued with misaligned pairs.
type IDMismatchError struct {
	Ref string
	Hyp string
}

func (e *IDMismatchError) Error() string {
	return fmt.Sprintf("reference and hypothesis IDs do not match: ref=%q hyp=%q; hyp file lines should match those in the ref file", e.Ref, e.Hyp)
}
