package policy

// ExpandArray fills a dense series of numYears values from the known leading values.
// Years past the known ones either hold the last known value or, when cpiInflated,
// grow from the previous year by that previous year's rate: rates[i-1] carries year
// i-1 into year i, with rates[0] belonging to the first year of the series.
func ExpandArray(known Series, cpiInflated bool, rates []float64, numYears int) (Series, error) {
	if numYears < 1 {
		return nil, configErrorf("num_years=%d < 1", numYears)
	}

	if len(known) == 0 {
		return nil, configErrorf("no known values to expand")
	}

	if len(known) > numYears {
		return nil, configErrorf("%d known values exceed num_years=%d", len(known), numYears)
	}

	width := len(known[0])
	if width == 0 {
		return nil, shapeErrorf("value 0 is empty")
	}

	for idx, v := range known {
		if len(v) != width {
			return nil, shapeErrorf("value %d has width %d, expected %d", idx, len(v), width)
		}
	}

	k := len(known)

	if cpiInflated && k < numYears && len(rates) < numYears-1 {
		return nil, configErrorf("%d inflation rates cannot extend %d values to %d years", len(rates), k, numYears)
	}

	values := make(Series, numYears)

	for idx := 0; idx < k; idx++ {
		values[idx] = known[idx].Clone()
	}

	for idx := k; idx < numYears; idx++ {
		prev := values[idx-1]

		if !cpiInflated {
			values[idx] = prev.Clone()

			continue
		}

		factor := 1.0 + rates[idx-1]

		next := make(Value, width)
		for j, v := range prev {
			next[j] = v * factor
		}

		values[idx] = next
	}

	return values, nil
}
