package scoring

import (
	"encoding/json"
	"math"
	"sort"
)

// LengthBins maps a reference length to every per-line error rate observed at
// that length. Lines with an empty reference record +Inf (only reachable when
// empty references are not being removed).
type LengthBins map[int][]float64

// LengthReportRow is one row of the length-vs-error-rate report.
type LengthReportRow struct {
	Length        int     `json:"length"`
	MeanErrorRate float64 `json:"mean_error_rate"`
	Lines         int     `json:"lines"`
}

// MarshalJSON handles the non-finite means encoding/json cannot represent as
// numbers: an infinite mean (empty reference with errors) encodes as the
// string "inf", the NaN empty-bin sentinel as null.
func (r LengthReportRow) MarshalJSON() ([]byte, error) {
	mean := json.RawMessage("null")
	switch {
	case math.IsInf(r.MeanErrorRate, 0):
		mean = json.RawMessage(`"inf"`)
	case !math.IsNaN(r.MeanErrorRate):
		encoded, err := json.Marshal(r.MeanErrorRate)
		if err != nil {
			return nil, err
		}
		mean = encoded
	}
	type row struct {
		Length        int             `json:"length"`
		MeanErrorRate json.RawMessage `json:"mean_error_rate"`
		Lines         int             `json:"lines"`
	}
	return json.Marshal(row{Length: r.Length, MeanErrorRate: mean, Lines: r.Lines})
}

// LengthVsErrorReport averages each bin and returns rows sorted by
// (mean error rate, length) ascending. An empty bin yields NaN; NaN rows sort
// after every finite and infinite mean so the order stays deterministic.
func LengthVsErrorReport(bins LengthBins) []LengthReportRow {
	rows := make([]LengthReportRow, 0, len(bins))
	for length, rates := range bins {
		rows = append(rows, LengthReportRow{
			Length:        length,
			MeanErrorRate: mean(rates),
			Lines:         len(rates),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		mi, mj := rows[i].MeanErrorRate, rows[j].MeanErrorRate
		iNaN, jNaN := math.IsNaN(mi), math.IsNaN(mj)
		switch {
		case iNaN && !jNaN:
			return false
		case !iNaN && jNaN:
			return true
		case !iNaN && !jNaN && mi != mj:
			return mi < mj
		}
		return rows[i].Length < rows[j].Length
	})
	return rows
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
