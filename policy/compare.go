package policy

import (
	"math"

	"github.com/montanaflynn/stats"
)

const compareTolerance = 1e-9

// Difference summarizes how one parameter of a reformed policy departs from a
// baseline policy over the horizon.
type Difference struct {
	Name          string  `json:"name"`
	FirstYear     int     `json:"first_year"`
	ChangedYears  int     `json:"changed_years"`
	MeanChange    float64 `json:"mean_change"`
	MaxAbsChange  float64 `json:"max_abs_change"`
	IndexingFlips bool    `json:"indexing_flips"`
}

// Compare lists, in name order, every parameter whose series or indexing flag differs
// between base and reformed. Both policies must share the horizon.
func Compare(base, reformed *Policy) ([]Difference, error) {
	if base.startYear != reformed.startYear || base.numYears != reformed.numYears {
		return nil, configErrorf("horizons differ: [%d,%d] vs [%d,%d]",
			base.startYear, base.EndYear(), reformed.startYear, reformed.EndYear())
	}

	var diffs []Difference

	for _, name := range base.names {
		bp := base.params[name]

		rp, ok := reformed.params[name]
		if !ok {
			return nil, configErrorf("parameter %s missing from reformed policy", name)
		}

		diff := Difference{
			Name:          name,
			IndexingFlips: bp.cpiInflated != rp.cpiInflated,
		}

		var changes []float64

		if bp.width() != rp.width() {
			return nil, configErrorf("parameter %s has width %d in base and %d in reformed policy",
				name, bp.width(), rp.width())
		}

		for idx := range bp.values {
			yearChanged := false

			for j := range bp.values[idx] {
				delta := rp.values[idx][j] - bp.values[idx][j]
				if math.Abs(delta) <= compareTolerance {
					continue
				}

				yearChanged = true

				changes = append(changes, delta)
			}

			if yearChanged {
				if diff.ChangedYears == 0 {
					diff.FirstYear = base.startYear + idx
				}

				diff.ChangedYears++
			}
		}

		if diff.ChangedYears == 0 && !diff.IndexingFlips {
			continue
		}

		if len(changes) > 0 {
			mean, err := stats.Mean(changes)
			if err != nil {
				return nil, err
			}

			abs := make([]float64, len(changes))
			for idx, c := range changes {
				abs[idx] = math.Abs(c)
			}

			maxAbs, err := stats.Max(abs)
			if err != nil {
				return nil, err
			}

			diff.MeanChange = mean
			diff.MaxAbsChange = maxAbs
		}

		diffs = append(diffs, diff)
	}

	return diffs, nil
}
