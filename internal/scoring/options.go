package scoring

import "fmt"

// IDMode selects where a per-line utterance ID sits in the token stream.
type IDMode string

const (
	// IDModeNone disables ID extraction.
	IDModeNone IDMode = "none"
	// IDModeHead strips the first token of each line as the ID (Kaldi style).
	IDModeHead IDMode = "head"
	// IDModeTail strips the last token of each line as the ID (Sphinx style).
	IDModeTail IDMode = "tail"
)

// ParseIDMode converts a configuration string into an IDMode. The empty
// string maps to IDModeNone.
func ParseIDMode(value string) (IDMode, error) {
	switch IDMode(value) {
	case IDModeNone, IDMode(""):
		return IDModeNone, nil
	case IDModeHead:
		return IDModeHead, nil
	case IDModeTail:
		return IDModeTail, nil
	default:
		return IDModeNone, fmt.Errorf("id mode: unsupported value %q", value)
	}
}

// Options controls how line pairs are normalized and which auxiliary
// statistics an Accumulator maintains. The zero value disables everything
// optional.
type Options struct {
	CaseInsensitive   bool
	RemoveEmptyRefs   bool
	IDMode            IDMode
	TrackConfusions   bool
	TrackLengthBins   bool
	MinConfusionCount int
}
