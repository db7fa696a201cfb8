package policy

import (
	"strconv"
)

// Rebase moves the first value year of every record to firstValueYear. Records whose
// data reaches that year lose their leading years; records whose last known year is
// earlier keep only their last value, grown by one year of default inflation when the
// record is indexed. The input records are not modified.
func Rebase(recs Records, firstValueYear int) (Records, error) {
	out := make(Records, len(recs))

	for name, rec := range recs {
		nr, err := rebaseRecord(name, rec, firstValueYear)
		if err != nil {
			return nil, err
		}

		out[name] = nr
	}

	return out, nil
}

func rebaseRecord(name string, rec *Record, firstValueYear int) (*Record, error) {
	startYear := rec.FirstYear()

	if firstValueYear < startYear {
		return nil, configErrorf("first_value_year=%d < start_year=%d for %s", firstValueYear, startYear, name)
	}

	rows, dim, err := RowsFromRaw(rec.Value)
	if err != nil {
		return nil, err
	}

	nr := rec.Clone()
	nr.StartYear = firstValueYear

	lastYearForData := startYear + len(rows) - 1

	if lastYearForData >= firstValueYear {
		chop := firstValueYear - startYear

		if len(nr.RowLabel) > chop {
			nr.RowLabel = nr.RowLabel[chop:]
		} else if len(nr.RowLabel) > 0 {
			nr.RowLabel = nil
		}

		nr.Value = nr.Value[chop:]

		return nr, nil
	}

	if len(nr.RowLabel) > 0 {
		nr.RowLabel = []string{strconv.Itoa(firstValueYear)}
	}

	last := rows[len(rows)-1].Clone()

	if rec.CPIInflated {
		rate, e := DefaultInflationRate(firstValueYear - 1)
		if e != nil {
			return nil, e
		}

		for idx := range last {
			last[idx] *= 1.0 + rate
		}
	}

	nr.Value = []any{rawFromValue(last, dim)}

	return nr, nil
}

func rawFromValue(v Value, dim int) any {
	if dim == 0 {
		return v[0]
	}

	raw := make([]any, len(v))
	for idx, f := range v {
		raw[idx] = f
	}

	return raw
}
